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

func newTestMessage(senderID, receiverID string, createdAt time.Time) *models.Message {
	return &models.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Subject:    "subject",
		Content:    "content",
		CreatedAt:  createdAt,
	}
}

func TestMessageRepositoryGetByUserNewestFirst(t *testing.T) {
	repo := NewMessageRepository()
	base := time.Now()

	oldest := newTestMessage("u1", "u2", base.Add(-2*time.Hour))
	middle := newTestMessage("u2", "u1", base.Add(-1*time.Hour))
	newest := newTestMessage("u1", "u3", base)
	unrelated := newTestMessage("u4", "u5", base)

	repo.Create(oldest)
	repo.Create(newest)
	repo.Create(middle)
	repo.Create(unrelated)

	messages := repo.GetByUser("u1")
	require.Len(t, messages, 3)
	assert.Equal(t, newest.ID, messages[0].ID)
	assert.Equal(t, middle.ID, messages[1].ID)
	assert.Equal(t, oldest.ID, messages[2].ID)
}

func TestMessageRepositorySelfMessageAppearsOnce(t *testing.T) {
	repo := NewMessageRepository()
	selfAddressed := newTestMessage("u1", "u1", time.Now())
	repo.Create(selfAddressed)

	messages := repo.GetByUser("u1")
	assert.Len(t, messages, 1)
}

func TestMessageRepositoryMarkReadIsIdempotent(t *testing.T) {
	repo := NewMessageRepository()
	message := newTestMessage("u1", "u2", time.Now())
	repo.Create(message)

	require.NoError(t, repo.MarkRead(message.ID))
	stored, err := repo.FindByID(message.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)

	// Second mark is a no-op, not an error
	require.NoError(t, repo.MarkRead(message.ID))
	stored, err = repo.FindByID(message.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
}

func TestMessageRepositoryMarkReadUnknownMessage(t *testing.T) {
	repo := NewMessageRepository()
	assert.ErrorIs(t, repo.MarkRead("missing"), apperrors.ErrMessageNotFound)
}

func TestMessageRepositoryReadsReturnCopies(t *testing.T) {
	repo := NewMessageRepository()
	message := newTestMessage("u1", "u2", time.Now())
	repo.Create(message)

	snapshot, err := repo.FindByID(message.ID)
	require.NoError(t, err)

	require.NoError(t, repo.MarkRead(message.ID))
	assert.False(t, snapshot.IsRead)

	fresh, err := repo.FindByID(message.ID)
	require.NoError(t, err)
	assert.True(t, fresh.IsRead)

	inbox := repo.GetByUser("u2")
	require.Len(t, inbox, 1)
	inbox[0].Content = "scribbled"
	fresh, err = repo.FindByID(message.ID)
	require.NoError(t, err)
	assert.Equal(t, "content", fresh.Content)
}

func TestMessageRepositoryGetAllNewestFirst(t *testing.T) {
	repo := NewMessageRepository()
	base := time.Now()

	first := newTestMessage("u1", "u2", base.Add(-time.Hour))
	second := newTestMessage("u3", "u4", base)
	repo.Create(first)
	repo.Create(second)

	all := repo.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, 2, repo.Count())
}
