package models

import (
	"time"
)

// Job defines a job posting shared on the board
type Job struct {
	ID          string    `json:"id"`                    // Unique identifier for the posting
	Title       string    `json:"title"`                 // Position title
	Description string    `json:"description"`           // Role description
	Company     string    `json:"company"`               // Hiring company
	Location    string    `json:"location"`              // Job location
	PostedByID  string    `json:"postedById"`            // User who posted the job (weak reference)
	JobType     JobType   `json:"jobType"`               // Employment type, defaults to full-time
	SalaryRange *string   `json:"salaryRange,omitempty"` // Advertised salary range (nullable)
	IsActive    bool      `json:"isActive"`              // Whether the posting is visible
	CreatedAt   time.Time `json:"createdAt"`             // Timestamp when the posting was created
}
