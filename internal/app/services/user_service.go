package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/validation"
)

// UserService defines the interface for profile and search operations
type UserService interface {
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	Search(currentUserID string, filter *dto.SearchFilter) (*dto.SearchResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// UpdateProfile updates the mutable profile fields of a user
func (s *userServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	verr := apperrors.NewValidationError()
	if req.FullName == "" {
		verr.Add("fullName", "Full name is required")
	}
	if req.GraduationYear != nil && !validation.IsValidGraduationYear(*req.GraduationYear) {
		verr.Add("graduationYear", "Please enter a valid graduation year")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	updated := &models.User{
		ID:             user.ID,
		FullName:       req.FullName,
		GraduationYear: req.GraduationYear,
		Department:     optionalString(req.Department),
		CurrentCompany: optionalString(req.CurrentCompany),
		Location:       optionalString(req.Location),
	}
	if err := s.userRepo.Update(updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("Profile updated")
	return s.userRepo.FindByID(userID)
}

// Search filters the alumni directory. The base population is every active,
// non-admin user except the requester, in store order. Filters compose with
// AND; the facet option lists are computed over the unfiltered base so the
// dropdowns are not narrowed by the current selection.
func (s *userServiceImpl) Search(currentUserID string, filter *dto.SearchFilter) (*dto.SearchResponse, error) {
	base := make([]*models.User, 0)
	for _, user := range s.userRepo.GetAll() {
		if user.ID == currentUserID || !user.IsActive || user.UserType == models.UserTypeAdmin {
			continue
		}
		base = append(base, user)
	}

	filtered := base

	if q := strings.TrimSpace(filter.Query); q != "" {
		query := strings.ToLower(q)
		filtered = filterUsers(filtered, func(u *models.User) bool {
			return strings.Contains(strings.ToLower(u.FullName), query) ||
				strings.Contains(strings.ToLower(u.Username), query)
		})
	}

	if d := strings.TrimSpace(filter.Department); d != "" {
		department := strings.ToLower(d)
		filtered = filterUsers(filtered, func(u *models.User) bool {
			return u.Department != nil && strings.Contains(strings.ToLower(*u.Department), department)
		})
	}

	if c := strings.TrimSpace(filter.Company); c != "" {
		company := strings.ToLower(c)
		filtered = filterUsers(filtered, func(u *models.User) bool {
			return u.CurrentCompany != nil && strings.Contains(strings.ToLower(*u.CurrentCompany), company)
		})
	}

	if y := strings.TrimSpace(filter.GraduationYear); y != "" {
		// A non-numeric year is ignored, not an error
		if year, err := strconv.Atoi(y); err == nil {
			filtered = filterUsers(filtered, func(u *models.User) bool {
				return u.GraduationYear != nil && *u.GraduationYear == year
			})
		}
	}

	departments := make([]string, 0)
	companies := make([]string, 0)
	seenDepartments := make(map[string]bool)
	seenCompanies := make(map[string]bool)
	for _, user := range base {
		if user.Department != nil && !seenDepartments[*user.Department] {
			seenDepartments[*user.Department] = true
			departments = append(departments, *user.Department)
		}
		if user.CurrentCompany != nil && !seenCompanies[*user.CurrentCompany] {
			seenCompanies[*user.CurrentCompany] = true
			companies = append(companies, *user.CurrentCompany)
		}
	}
	sort.Strings(departments)
	sort.Strings(companies)

	return &dto.SearchResponse{
		Users:       dto.NewUserResponseList(filtered),
		Departments: departments,
		Companies:   companies,
	}, nil
}

// filterUsers keeps the users matching the predicate, preserving order
func filterUsers(users []*models.User, keep func(*models.User) bool) []*models.User {
	result := make([]*models.User, 0, len(users))
	for _, user := range users {
		if keep(user) {
			result = append(result, user)
		}
	}
	return result
}
