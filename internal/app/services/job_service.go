package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// JobService defines the interface for job board operations
type JobService interface {
	Create(posterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	List() []*dto.JobResponse
	GetByID(id string) (*dto.JobResponse, error)
	ListByPoster(posterID string) []*dto.JobResponse
	SetActive(id string, active bool) error
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobRepo  *repositories.JobRepository
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo *repositories.JobRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) JobService {
	return &jobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create validates and stores a new job posting
func (s *jobServiceImpl) Create(posterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	verr := apperrors.NewValidationError()
	if req.Title == "" {
		verr.Add("title", "Title is required")
	}
	if req.Description == "" {
		verr.Add("description", "Description is required")
	}
	if req.Company == "" {
		verr.Add("company", "Company is required")
	}
	if req.Location == "" {
		verr.Add("location", "Location is required")
	}

	jobType := models.JobTypeFullTime
	if req.JobType != "" {
		jobType = models.JobType(req.JobType)
		if !jobType.IsValid() {
			verr.Add("jobType", "Unknown job type")
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	job := &models.Job{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		PostedByID:  posterID,
		JobType:     jobType,
		SalaryRange: optionalString(req.SalaryRange),
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	s.jobRepo.Create(job)

	s.logger.Info().Str("jobID", job.ID).Str("title", job.Title).Msg("New job posted")
	return s.toResponse(job), nil
}

// List returns every active posting, newest first
func (s *jobServiceImpl) List() []*dto.JobResponse {
	jobs := s.jobRepo.GetActive()
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return s.toResponseList(jobs)
}

// GetByID returns a single posting
func (s *jobServiceImpl) GetByID(id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(job), nil
}

// ListByPoster returns the active postings owned by one user, newest first
func (s *jobServiceImpl) ListByPoster(posterID string) []*dto.JobResponse {
	jobs := make([]*models.Job, 0)
	for _, job := range s.jobRepo.GetActive() {
		if job.PostedByID == posterID {
			jobs = append(jobs, job)
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return s.toResponseList(jobs)
}

// SetActive toggles a posting's visibility
func (s *jobServiceImpl) SetActive(id string, active bool) error {
	if err := s.jobRepo.SetActive(id, active); err != nil {
		return err
	}
	s.logger.Info().Str("jobID", id).Bool("active", active).Msg("Job status changed")
	return nil
}

func (s *jobServiceImpl) toResponse(job *models.Job) *dto.JobResponse {
	return dto.NewJobResponse(job, s.userRepo.DisplayName(job.PostedByID))
}

func (s *jobServiceImpl) toResponseList(jobs []*models.Job) []*dto.JobResponse {
	responses := make([]*dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, s.toResponse(job))
	}
	return responses
}
