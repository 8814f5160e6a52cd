package models

import (
	"time"
)

// EventDateLayout is the wire format for event dates (calendar date, no time component)
const EventDateLayout = "2006-01-02"

// Event defines an alumni gathering or networking event
type Event struct {
	ID            string    `json:"id"`            // Unique identifier for the event
	Title         string    `json:"title"`         // Event title
	Description   string    `json:"description"`   // Event description
	Date          time.Time `json:"date"`          // Calendar date the event takes place
	Location      string    `json:"location"`      // Venue
	OrganizedByID string    `json:"organizedById"` // User organizing the event (weak reference)
	IsActive      bool      `json:"isActive"`      // Whether the event is visible
	CreatedAt     time.Time `json:"createdAt"`     // Timestamp when the event was posted
}
