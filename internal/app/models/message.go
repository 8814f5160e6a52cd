package models

import (
	"time"
)

// Message defines a direct message between two users
type Message struct {
	ID         string    `json:"id"`         // Unique identifier for the message
	SenderID   string    `json:"senderId"`   // Sending user (weak reference)
	ReceiverID string    `json:"receiverId"` // Receiving user (weak reference)
	Subject    string    `json:"subject"`    // Message subject
	Content    string    `json:"content"`    // Message body
	IsRead     bool      `json:"isRead"`     // Set once, when the receiver first views the message
	CreatedAt  time.Time `json:"createdAt"`  // Timestamp when the message was sent
}
