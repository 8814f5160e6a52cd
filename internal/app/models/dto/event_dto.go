package dto

import (
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
)

// CreateEventRequest represents a new event submission. Date uses the fixed
// YYYY-MM-DD format.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

// EventResponse represents an event with its organizer resolved to a name
type EventResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          string    `json:"date" example:"2025-06-15"`
	Location      string    `json:"location"`
	OrganizedBy   string    `json:"organizedBy"`
	OrganizedByID string    `json:"organizedById"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewEventResponse maps an event record to its response form
func NewEventResponse(event *models.Event, organizedBy string) *EventResponse {
	return &EventResponse{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		Date:          event.Date.Format(models.EventDateLayout),
		Location:      event.Location,
		OrganizedBy:   organizedBy,
		OrganizedByID: event.OrganizedByID,
		IsActive:      event.IsActive,
		CreatedAt:     event.CreatedAt,
	}
}
