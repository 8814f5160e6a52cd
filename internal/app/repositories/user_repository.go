package repositories

import (
	"sync"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// UserRepository owns the user collection. All check-then-write sequences
// run under one lock so the username/email uniqueness invariant holds even
// with concurrent requests. Reads hand out copies, never the stored
// records, so callers can build responses without holding the lock.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*models.User),
	}
}

// Create inserts a new user. Fails when the username or email is already
// taken; the check and the insert happen under the same lock.
func (r *UserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	stored := *user
	r.users[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

// cloneUser copies a record so mutations under the lock never touch
// anything a caller holds
func cloneUser(user *models.User) *models.User {
	clone := *user
	return &clone
}

// FindByID looks up a user by its primary key
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// FindByUsername scans for a user with the given username
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Username == username {
			return cloneUser(r.users[id]), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// FindByEmail scans for a user with the given email
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Email == email {
			return cloneUser(r.users[id]), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// UsernameExists reports whether a username is already taken
func (r *UserRepository) UsernameExists(username string) bool {
	_, err := r.FindByUsername(username)
	return err == nil
}

// EmailExists reports whether an email is already taken
func (r *UserRepository) EmailExists(email string) bool {
	_, err := r.FindByEmail(email)
	return err == nil
}

// GetAll returns every user in insertion order
func (r *UserRepository) GetAll() []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, cloneUser(r.users[id]))
	}
	return users
}

// Update overwrites the mutable profile fields of an existing user
func (r *UserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	existing.FullName = user.FullName
	existing.GraduationYear = user.GraduationYear
	existing.Department = user.Department
	existing.CurrentCompany = user.CurrentCompany
	existing.Location = user.Location
	return nil
}

// SetActive toggles the active flag. Admin accounts are protected; the
// attempt fails and leaves state unchanged.
func (r *UserRepository) SetActive(id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if user.UserType == models.UserTypeAdmin {
		return apperrors.ErrAdminProtected
	}

	user.IsActive = active
	return nil
}

// DisplayName resolves a user id to its full name, substituting the
// "Unknown" placeholder when the reference dangles.
func (r *UserRepository) DisplayName(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.users[id]; ok {
		return user.FullName
	}
	return models.UnknownUserName
}

// Count returns the number of users, optionally leaving out admins
func (r *UserRepository) Count(excludeAdmins bool) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !excludeAdmins {
		return len(r.users)
	}
	count := 0
	for _, user := range r.users {
		if user.UserType != models.UserTypeAdmin {
			count++
		}
	}
	return count
}
