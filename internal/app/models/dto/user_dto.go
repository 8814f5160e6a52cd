package dto

import (
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
)

// UserResponse represents public user information
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	GraduationYear *int      `json:"graduationYear,omitempty"`
	Department     *string   `json:"department,omitempty"`
	CurrentCompany *string   `json:"currentCompany,omitempty"`
	Location       *string   `json:"location,omitempty"`
	UserType       string    `json:"userType"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUserResponse maps a user record to its response form
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		GraduationYear: user.GraduationYear,
		Department:     user.Department,
		CurrentCompany: user.CurrentCompany,
		Location:       user.Location,
		UserType:       string(user.UserType),
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
	}
}

// NewUserResponseList maps a slice of user records
func NewUserResponseList(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FullName       string `json:"fullName"`
	GraduationYear *int   `json:"graduationYear,omitempty"`
	Department     string `json:"department,omitempty"`
	CurrentCompany string `json:"currentCompany,omitempty"`
	Location       string `json:"location,omitempty"`
}

// SearchFilter carries the search query parameters. GraduationYear stays a
// raw string: a non-numeric value is ignored rather than rejected.
type SearchFilter struct {
	Query          string `form:"q"`
	Department     string `form:"department"`
	Company        string `form:"company"`
	GraduationYear string `form:"graduation_year"`
}

// SearchResponse carries the filtered users plus the facet options offered
// as filter dropdowns. Facets are computed over the whole base population,
// not narrowed by the current selection.
type SearchResponse struct {
	Users       []*UserResponse `json:"users"`
	Departments []string        `json:"departments"`
	Companies   []string        `json:"companies"`
}
