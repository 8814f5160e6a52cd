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

// EventService defines the interface for event board operations
type EventService interface {
	Create(organizerID string, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	List() []*dto.EventResponse
	GetByID(id string) (*dto.EventResponse, error)
	ListByOrganizer(organizerID string) []*dto.EventResponse
	SetActive(id string, active bool) error
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
	userRepo  *repositories.UserRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Create validates and stores a new event. The date must use the fixed
// YYYY-MM-DD format.
func (s *eventServiceImpl) Create(organizerID string, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	verr := apperrors.NewValidationError()
	if req.Title == "" {
		verr.Add("title", "Title is required")
	}
	if req.Description == "" {
		verr.Add("description", "Description is required")
	}
	if req.Location == "" {
		verr.Add("location", "Location is required")
	}

	var date time.Time
	if req.Date == "" {
		verr.Add("date", "Date is required")
	} else {
		parsed, err := time.Parse(models.EventDateLayout, req.Date)
		if err != nil {
			verr.Add("date", "Invalid date format")
		} else {
			date = parsed
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	event := &models.Event{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Date:          date,
		Location:      req.Location,
		OrganizedByID: organizerID,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	s.eventRepo.Create(event)

	s.logger.Info().Str("eventID", event.ID).Str("title", event.Title).Msg("New event posted")
	return s.toResponse(event), nil
}

// List returns every active event, upcoming first; events on the same date
// keep their posting order.
func (s *eventServiceImpl) List() []*dto.EventResponse {
	events := s.eventRepo.GetActive()
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
	return s.toResponseList(events)
}

// GetByID returns a single event
func (s *eventServiceImpl) GetByID(id string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(event), nil
}

// ListByOrganizer returns the active events organized by one user
func (s *eventServiceImpl) ListByOrganizer(organizerID string) []*dto.EventResponse {
	events := make([]*models.Event, 0)
	for _, event := range s.eventRepo.GetActive() {
		if event.OrganizedByID == organizerID {
			events = append(events, event)
		}
	}
	return s.toResponseList(events)
}

// SetActive toggles an event's visibility
func (s *eventServiceImpl) SetActive(id string, active bool) error {
	if err := s.eventRepo.SetActive(id, active); err != nil {
		return err
	}
	s.logger.Info().Str("eventID", id).Bool("active", active).Msg("Event status changed")
	return nil
}

func (s *eventServiceImpl) toResponse(event *models.Event) *dto.EventResponse {
	return dto.NewEventResponse(event, s.userRepo.DisplayName(event.OrganizedByID))
}

func (s *eventServiceImpl) toResponseList(events []*models.Event) []*dto.EventResponse {
	responses := make([]*dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, s.toResponse(event))
	}
	return responses
}
