package repositories

import (
	"sync"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// JobRepository owns the job posting collection. Reads hand out copies,
// never the stored records.
type JobRepository struct {
	mu    sync.RWMutex
	jobs  map[string]*models.Job
	order []string
}

// NewJobRepository creates an empty job repository
func NewJobRepository() *JobRepository {
	return &JobRepository{
		jobs: make(map[string]*models.Job),
	}
}

// Create inserts a new job posting
func (r *JobRepository) Create(job *models.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *job
	r.jobs[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
}

func cloneJob(job *models.Job) *models.Job {
	clone := *job
	return &clone
}

// FindByID looks up a job by its primary key
func (r *JobRepository) FindByID(id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return cloneJob(job), nil
}

// GetActive returns every active job in insertion order
func (r *JobRepository) GetActive() []*models.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]*models.Job, 0, len(r.order))
	for _, id := range r.order {
		if r.jobs[id].IsActive {
			jobs = append(jobs, cloneJob(r.jobs[id]))
		}
	}
	return jobs
}

// SetActive toggles the visibility of a posting
func (r *JobRepository) SetActive(id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return apperrors.ErrJobNotFound
	}

	job.IsActive = active
	return nil
}

// CountActive returns the number of active postings
func (r *JobRepository) CountActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, job := range r.jobs {
		if job.IsActive {
			count++
		}
	}
	return count
}
