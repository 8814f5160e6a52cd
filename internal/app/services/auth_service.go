package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/validation"
)

// AuthService defines the interface for registration and session operations
type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(username, password string) (string, *models.User, error)
	Logout(token string)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo *repositories.UserRepository
	sessions *auth.SessionStore
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, sessions *auth.SessionStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Register validates a registration submission and creates the account.
// Every violated rule is collected so one response reports them all.
func (s *authServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	verr := apperrors.NewValidationError()

	if req.Username == "" {
		verr.Add("username", "Username is required")
	} else if s.userRepo.UsernameExists(req.Username) {
		verr.Add("username", "Username already exists")
	}

	if req.Email == "" {
		verr.Add("email", "Email is required")
	} else if !validation.IsValidEmail(req.Email) {
		verr.Add("email", "Email format is invalid")
	} else if s.userRepo.EmailExists(req.Email) {
		verr.Add("email", "Email already exists")
	}

	if req.Password == "" {
		verr.Add("password", "Password is required")
	} else if len(req.Password) < validation.PasswordMinLength {
		verr.Add("password", "Password must be at least 6 characters long")
	}

	if req.Password != req.ConfirmPassword {
		verr.Add("confirmPassword", "Passwords do not match")
	}

	if req.FullName == "" {
		verr.Add("fullName", "Full name is required")
	}

	if req.GraduationYear != nil && !validation.IsValidGraduationYear(*req.GraduationYear) {
		verr.Add("graduationYear", "Please enter a valid graduation year")
	}

	userType := models.UserTypeAlumni
	if req.UserType != "" {
		userType = models.UserType(req.UserType)
		// Admin accounts are seeded, never self-assigned
		if !userType.IsValid() || userType == models.UserTypeAdmin {
			verr.Add("userType", "User type must be alumni or student")
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashedPassword,
		FullName:       req.FullName,
		GraduationYear: req.GraduationYear,
		Department:     optionalString(req.Department),
		CurrentCompany: optionalString(req.CurrentCompany),
		Location:       optionalString(req.Location),
		UserType:       userType,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		// The pre-checks and the insert race only against other requests;
		// the store re-checks under its own lock.
		switch {
		case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
			return nil, apperrors.NewValidationError().Add("username", "Username already exists")
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			return nil, apperrors.NewValidationError().Add("email", "Email already exists")
		}
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("userID", user.ID).Msg("New user registered")
	return user, nil
}

// Login authenticates the user and issues a session token. Unknown username,
// wrong password and disabled account all surface the same error to the
// caller; the distinction is only logged.
func (s *authServiceImpl) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		s.logger.Warn().Str("username", username).Msg("Login attempt for unknown username")
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn().Str("username", username).Msg("Login attempt for deactivated account")
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Msg("User logged in")
	return token, user, nil
}

// Logout clears the session binding unconditionally
func (s *authServiceImpl) Logout(token string) {
	s.sessions.Revoke(token)
}

// optionalString maps an empty form value to a null field
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
