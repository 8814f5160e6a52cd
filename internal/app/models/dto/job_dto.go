package dto

import (
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
)

// CreateJobRequest represents a new job posting submission
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	JobType     string `json:"jobType,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`
}

// JobResponse represents a job posting with its poster resolved to a name
type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	PostedBy    string    `json:"postedBy"`
	PostedByID  string    `json:"postedById"`
	JobType     string    `json:"jobType"`
	SalaryRange *string   `json:"salaryRange,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewJobResponse maps a job record to its response form. The poster name is
// resolved by the caller so a dangling reference shows as "Unknown".
func NewJobResponse(job *models.Job, postedBy string) *JobResponse {
	return &JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		Location:    job.Location,
		PostedBy:    postedBy,
		PostedByID:  job.PostedByID,
		JobType:     string(job.JobType),
		SalaryRange: job.SalaryRange,
		IsActive:    job.IsActive,
		CreatedAt:   job.CreatedAt,
	}
}
