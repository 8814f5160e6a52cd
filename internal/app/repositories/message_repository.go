package repositories

import (
	"sort"
	"sync"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// MessageRepository owns the message collection. Reads hand out copies,
// never the stored records.
type MessageRepository struct {
	mu       sync.RWMutex
	messages map[string]*models.Message
	order    []string
}

// NewMessageRepository creates an empty message repository
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		messages: make(map[string]*models.Message),
	}
}

// Create inserts a new message. Receiver existence is not checked here;
// dangling references are tolerated and resolved at display time.
func (r *MessageRepository) Create(message *models.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *message
	r.messages[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
}

func cloneMessage(message *models.Message) *models.Message {
	clone := *message
	return &clone
}

// FindByID looks up a message by its primary key
func (r *MessageRepository) FindByID(id string) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	message, ok := r.messages[id]
	if !ok {
		return nil, apperrors.ErrMessageNotFound
	}
	return cloneMessage(message), nil
}

// GetByUser returns every message the user sent or received, newest first.
// A self-addressed message matches once, not twice.
func (r *MessageRepository) GetByUser(userID string) []*models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*models.Message, 0)
	for _, id := range r.order {
		m := r.messages[id]
		if m.SenderID == userID || m.ReceiverID == userID {
			messages = append(messages, cloneMessage(m))
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages
}

// MarkRead flips the read flag. Marking an already-read message is a no-op.
func (r *MessageRepository) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return apperrors.ErrMessageNotFound
	}

	message.IsRead = true
	return nil
}

// GetAll returns every message, newest first
func (r *MessageRepository) GetAll() []*models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*models.Message, 0, len(r.order))
	for _, id := range r.order {
		messages = append(messages, cloneMessage(r.messages[id]))
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages
}

// Count returns the total number of messages
func (r *MessageRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.messages)
}
