package models

import (
	"time"
)

// User defines an alumni portal account
type User struct {
	ID             string    `json:"id" example:"7d0e9f0a-3c43-4b8e-9d26-8a4f9e1c2b71"` // Unique identifier for the user
	Username       string    `json:"username" example:"jdoe"`                           // Unique login name
	Email          string    `json:"email" example:"jdoe@alumni.edu"`                   // User's email address (unique)
	Password       string    `json:"-"`                                                 // User's hashed password (excluded from JSON)
	FullName       string    `json:"fullName" example:"John Doe"`                       // Display name
	GraduationYear *int      `json:"graduationYear,omitempty" example:"2015"`           // Graduation year (nullable)
	Department     *string   `json:"department,omitempty" example:"Computer Science"`   // Department studied (nullable)
	CurrentCompany *string   `json:"currentCompany,omitempty" example:"Acme Corp"`      // Current employer (nullable)
	Location       *string   `json:"location,omitempty" example:"Berlin"`               // Current location (nullable)
	UserType       UserType  `json:"userType" example:"alumni"`                         // Account role, fixed at creation
	IsActive       bool      `json:"isActive" example:"true"`                           // Whether the account is active
	CreatedAt      time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`          // Timestamp when the account was created
}
