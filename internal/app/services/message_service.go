package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// MessageService defines the interface for direct messaging operations
type MessageService interface {
	Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	Inbox(userID string) []*dto.MessageResponse
	GetByID(messageID, requesterID string) (*dto.MessageResponse, error)
	ListAll() []*dto.MessageResponse
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageRepo *repositories.MessageRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo *repositories.MessageRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Send validates and stores a new message. The recipient must exist when
// sending; messaging yourself is allowed.
func (s *messageServiceImpl) Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if _, err := s.userRepo.FindByID(req.ReceiverID); err != nil {
		return nil, err
	}

	verr := apperrors.NewValidationError()
	if req.Subject == "" {
		verr.Add("subject", "Subject is required")
	}
	if req.Content == "" {
		verr.Add("content", "Message content is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	message := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Subject:    req.Subject,
		Content:    req.Content,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}
	s.messageRepo.Create(message)

	s.logger.Info().Str("messageID", message.ID).Str("senderID", senderID).Str("receiverID", req.ReceiverID).Msg("Message sent")
	return s.toResponse(message), nil
}

// Inbox returns every message the user sent or received, newest first
func (s *messageServiceImpl) Inbox(userID string) []*dto.MessageResponse {
	return s.toResponseList(s.messageRepo.GetByUser(userID))
}

// GetByID returns a single message. Only the sender or the receiver may
// read it; viewing as the receiver marks it read, and re-reading an
// already-read message is a no-op.
func (s *messageServiceImpl) GetByID(messageID, requesterID string) (*dto.MessageResponse, error) {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return nil, err
	}

	if message.SenderID != requesterID && message.ReceiverID != requesterID {
		return nil, apperrors.ErrPermissionDenied
	}

	if message.ReceiverID == requesterID && !message.IsRead {
		if err := s.messageRepo.MarkRead(messageID); err != nil {
			return nil, err
		}
		message.IsRead = true
	}

	return s.toResponse(message), nil
}

// ListAll returns every message in the system, newest first
func (s *messageServiceImpl) ListAll() []*dto.MessageResponse {
	return s.toResponseList(s.messageRepo.GetAll())
}

func (s *messageServiceImpl) toResponse(message *models.Message) *dto.MessageResponse {
	sender := s.userRepo.DisplayName(message.SenderID)
	receiver := s.userRepo.DisplayName(message.ReceiverID)
	return dto.NewMessageResponse(message, sender, receiver)
}

func (s *messageServiceImpl) toResponseList(messages []*models.Message) []*dto.MessageResponse {
	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, s.toResponse(message))
	}
	return responses
}
