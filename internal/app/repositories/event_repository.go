package repositories

import (
	"sync"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// EventRepository owns the event collection. Reads hand out copies, never
// the stored records.
type EventRepository struct {
	mu     sync.RWMutex
	events map[string]*models.Event
	order  []string
}

// NewEventRepository creates an empty event repository
func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: make(map[string]*models.Event),
	}
}

// Create inserts a new event
func (r *EventRepository) Create(event *models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *event
	r.events[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
}

func cloneEvent(event *models.Event) *models.Event {
	clone := *event
	return &clone
}

// FindByID looks up an event by its primary key
func (r *EventRepository) FindByID(id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return cloneEvent(event), nil
}

// GetActive returns every active event in insertion order
func (r *EventRepository) GetActive() []*models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*models.Event, 0, len(r.order))
	for _, id := range r.order {
		if r.events[id].IsActive {
			events = append(events, cloneEvent(r.events[id]))
		}
	}
	return events
}

// SetActive toggles the visibility of an event
func (r *EventRepository) SetActive(id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}

	event.IsActive = active
	return nil
}

// CountActive returns the number of active events
func (r *EventRepository) CountActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, event := range r.events {
		if event.IsActive {
			count++
		}
	}
	return count
}
