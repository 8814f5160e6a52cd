package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func newTestJob(title string) *models.Job {
	return &models.Job{
		ID:         uuid.NewString(),
		Title:      title,
		PostedByID: "poster",
		JobType:    models.JobTypeFullTime,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
}

func TestJobRepositoryGetActiveKeepsInsertionOrder(t *testing.T) {
	repo := NewJobRepository()

	first := newTestJob("first")
	second := newTestJob("second")
	third := newTestJob("third")
	repo.Create(first)
	repo.Create(second)
	repo.Create(third)
	require.NoError(t, repo.SetActive(second.ID, false))

	active := repo.GetActive()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, third.ID, active[1].ID)
	assert.Equal(t, 2, repo.CountActive())
}

func TestJobRepositoryFindByID(t *testing.T) {
	repo := NewJobRepository()
	job := newTestJob("backend")
	repo.Create(job)

	stored, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "backend", stored.Title)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	assert.ErrorIs(t, repo.SetActive("missing", true), apperrors.ErrJobNotFound)
}

func TestJobRepositoryReadsReturnCopies(t *testing.T) {
	repo := NewJobRepository()
	job := newTestJob("backend")
	repo.Create(job)

	snapshot, err := repo.FindByID(job.ID)
	require.NoError(t, err)

	require.NoError(t, repo.SetActive(job.ID, false))
	assert.True(t, snapshot.IsActive)

	require.NoError(t, repo.SetActive(job.ID, true))
	active := repo.GetActive()
	require.Len(t, active, 1)
	active[0].Title = "scribbled"
	fresh, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "backend", fresh.Title)
}

func TestEventRepositoryGetActiveKeepsInsertionOrder(t *testing.T) {
	repo := NewEventRepository()

	first := &models.Event{ID: uuid.NewString(), Title: "first", Date: time.Now(), OrganizedByID: "o", IsActive: true, CreatedAt: time.Now()}
	second := &models.Event{ID: uuid.NewString(), Title: "second", Date: time.Now(), OrganizedByID: "o", IsActive: true, CreatedAt: time.Now()}
	repo.Create(first)
	repo.Create(second)
	require.NoError(t, repo.SetActive(first.ID, false))

	active := repo.GetActive()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
	assert.Equal(t, 1, repo.CountActive())

	_, err := repo.FindByID("missing")
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}
