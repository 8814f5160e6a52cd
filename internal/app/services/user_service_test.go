package services

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

// seedUser stores a ready-made account directly, bypassing registration
func seedUser(t *testing.T, repo *repositories.UserRepository, user *models.User) *models.User {
	t.Helper()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Email == "" {
		user.Email = user.Username + "@alumni.edu"
	}
	if user.FullName == "" {
		user.FullName = "Test " + user.Username
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeAlumni
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.Password = "hashed"
	user.IsActive = true
	require.NoError(t, repo.Create(user))
	return user
}

func TestSearchFiltersByGraduationYear(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())

	requester := seedUser(t, repo, &models.User{Username: "me"})
	seedUser(t, repo, &models.User{Username: "alice", GraduationYear: intPtr(2000)})
	bob := seedUser(t, repo, &models.User{Username: "bob", GraduationYear: intPtr(2001)})
	carol := seedUser(t, repo, &models.User{Username: "carol", GraduationYear: intPtr(2001)})
	seedUser(t, repo, &models.User{Username: "dave"})

	result, err := svc.Search(requester.ID, &dto.SearchFilter{GraduationYear: "2001"})
	require.NoError(t, err)
	require.Len(t, result.Users, 2)
	assert.Equal(t, bob.ID, result.Users[0].ID)
	assert.Equal(t, carol.ID, result.Users[1].ID)
}

func TestSearchIgnoresNonNumericYear(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())

	requester := seedUser(t, repo, &models.User{Username: "me"})
	seedUser(t, repo, &models.User{Username: "alice", GraduationYear: intPtr(2000)})
	seedUser(t, repo, &models.User{Username: "bob"})

	result, err := svc.Search(requester.ID, &dto.SearchFilter{GraduationYear: "not-a-year"})
	require.NoError(t, err)
	assert.Len(t, result.Users, 2)
}

func TestSearchExcludesRequesterAdminsAndInactive(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())

	requester := seedUser(t, repo, &models.User{Username: "me"})
	seedUser(t, repo, &models.User{Username: "admin", UserType: models.UserTypeAdmin})
	visible := seedUser(t, repo, &models.User{Username: "alice"})
	disabled := seedUser(t, repo, &models.User{Username: "bob"})
	require.NoError(t, repo.SetActive(disabled.ID, false))

	result, err := svc.Search(requester.ID, &dto.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, visible.ID, result.Users[0].ID)
}

func TestSearchFiltersCompose(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())

	requester := seedUser(t, repo, &models.User{Username: "me"})
	match := seedUser(t, repo, &models.User{
		Username:       "alice",
		FullName:       "Alice Smith",
		GraduationYear: intPtr(2001),
		Department:     strPtr("Computer Science"),
		CurrentCompany: strPtr("Acme Corp"),
	})
	seedUser(t, repo, &models.User{
		Username:       "bob",
		FullName:       "Bob Smith",
		GraduationYear: intPtr(2001),
		Department:     strPtr("Mathematics"),
		CurrentCompany: strPtr("Acme Corp"),
	})

	result, err := svc.Search(requester.ID, &dto.SearchFilter{
		Query:          "smith",
		Department:     "computer",
		Company:        "acme",
		GraduationYear: "2001",
	})
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, match.ID, result.Users[0].ID)
}

func TestSearchFacetsIgnoreFilters(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())

	requester := seedUser(t, repo, &models.User{Username: "me"})
	seedUser(t, repo, &models.User{Username: "alice", Department: strPtr("Physics"), CurrentCompany: strPtr("Initech")})
	seedUser(t, repo, &models.User{Username: "bob", Department: strPtr("Biology"), CurrentCompany: strPtr("Acme Corp")})
	seedUser(t, repo, &models.User{Username: "carol", Department: strPtr("Biology")})

	result, err := svc.Search(requester.ID, &dto.SearchFilter{Department: "physics"})
	require.NoError(t, err)
	require.Len(t, result.Users, 1)

	// Facet lists cover the whole base population, deduplicated and sorted
	assert.Equal(t, []string{"Biology", "Physics"}, result.Departments)
	assert.Equal(t, []string{"Acme Corp", "Initech"}, result.Companies)
}

func TestSearchAndUpdateProfileConcurrently(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())

	requester := seedUser(t, repo, &models.User{Username: "me"})
	target := seedUser(t, repo, &models.User{Username: "alice", FullName: "Alice Smith", Department: strPtr("Physics")})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, err := svc.UpdateProfile(target.ID, &dto.UpdateProfileRequest{
				FullName:   "Alice Smith",
				Department: "Physics",
			})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, err := svc.Search(requester.ID, &dto.SearchFilter{Query: "alice"})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()
}

func TestUpdateProfile(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, &models.User{Username: "alice"})

	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FullName:       "Alice Updated",
		GraduationYear: intPtr(2010),
		Department:     "Physics",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.FullName)
	require.NotNil(t, updated.GraduationYear)
	assert.Equal(t, 2010, *updated.GraduationYear)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Physics", *updated.Department)
	// Identity fields are not touched by a profile update
	assert.Equal(t, "alice", updated.Username)
}

func TestUpdateProfileReplacesOmittedFields(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, &models.User{
		Username:       "alice",
		GraduationYear: intPtr(2010),
		Department:     strPtr("Physics"),
	})

	// PUT semantics: the submission is the complete profile, so a request
	// without the optional fields clears them
	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{FullName: "Alice Smith"})
	require.NoError(t, err)
	assert.Nil(t, updated.GraduationYear)
	assert.Nil(t, updated.Department)
}

func TestUpdateProfileValidation(t *testing.T) {
	repo := repositories.NewUserRepository()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, &models.User{Username: "alice", FullName: "Alice Smith"})

	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{FullName: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FullName:       "Alice Smith",
		GraduationYear: intPtr(1800),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateProfile("missing", &dto.UpdateProfileRequest{FullName: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	stored, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", stored.FullName)
}
