package dto

import (
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
)

// SendMessageRequest represents a new direct message submission
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
}

// MessageResponse represents a message with both parties resolved to names
type MessageResponse struct {
	ID         string    `json:"id"`
	Sender     string    `json:"sender"`
	SenderID   string    `json:"senderId"`
	Receiver   string    `json:"receiver"`
	ReceiverID string    `json:"receiverId"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewMessageResponse maps a message record to its response form
func NewMessageResponse(message *models.Message, sender, receiver string) *MessageResponse {
	return &MessageResponse{
		ID:         message.ID,
		Sender:     sender,
		SenderID:   message.SenderID,
		Receiver:   receiver,
		ReceiverID: message.ReceiverID,
		Subject:    message.Subject,
		Content:    message.Content,
		IsRead:     message.IsRead,
		CreatedAt:  message.CreatedAt,
	}
}
