package dto

// RegisterRequest represents a user registration submission. Fields are not
// bound as required here; the auth service validates the whole submission at
// once so every violated rule is reported together.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FullName        string `json:"fullName"`
	GraduationYear  *int   `json:"graduationYear,omitempty"`
	Department      string `json:"department,omitempty"`
	CurrentCompany  string `json:"currentCompany,omitempty"`
	Location        string `json:"location,omitempty"`
	UserType        string `json:"userType,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType" example:"Bearer"`
	User      *UserResponse `json:"user"`
}
