package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func newMessageFixture(t *testing.T) (MessageService, *repositories.MessageRepository, *models.User, *models.User) {
	t.Helper()
	messageRepo := repositories.NewMessageRepository()
	userRepo := repositories.NewUserRepository()
	sender := seedUser(t, userRepo, &models.User{Username: "sender", FullName: "Sam Sender"})
	receiver := seedUser(t, userRepo, &models.User{Username: "receiver", FullName: "Rita Receiver"})
	return NewMessageService(messageRepo, userRepo, zerolog.Nop()), messageRepo, sender, receiver
}

func TestSendMessage(t *testing.T) {
	svc, _, sender, receiver := newMessageFixture(t)

	message, err := svc.Send(sender.ID, &dto.SendMessageRequest{
		ReceiverID: receiver.ID,
		Subject:    "Hello",
		Content:    "Long time no see",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam Sender", message.Sender)
	assert.Equal(t, "Rita Receiver", message.Receiver)
	assert.False(t, message.IsRead)
}

func TestSendMessageToUnknownReceiver(t *testing.T) {
	svc, messageRepo, sender, _ := newMessageFixture(t)

	_, err := svc.Send(sender.ID, &dto.SendMessageRequest{
		ReceiverID: "missing",
		Subject:    "Hello",
		Content:    "Anyone there?",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Equal(t, 0, messageRepo.Count())
}

func TestSendMessageValidation(t *testing.T) {
	svc, messageRepo, sender, receiver := newMessageFixture(t)

	_, err := svc.Send(sender.ID, &dto.SendMessageRequest{ReceiverID: receiver.ID})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, 0, messageRepo.Count())
}

func TestSendMessageToSelf(t *testing.T) {
	svc, _, sender, _ := newMessageFixture(t)

	message, err := svc.Send(sender.ID, &dto.SendMessageRequest{
		ReceiverID: sender.ID,
		Subject:    "Note to self",
		Content:    "Remember the reunion",
	})
	require.NoError(t, err)
	assert.Equal(t, message.Sender, message.Receiver)

	inbox := svc.Inbox(sender.ID)
	assert.Len(t, inbox, 1)
}

func TestGetMessageAccessControl(t *testing.T) {
	svc, _, sender, receiver := newMessageFixture(t)

	message, err := svc.Send(sender.ID, &dto.SendMessageRequest{
		ReceiverID: receiver.ID,
		Subject:    "Hello",
		Content:    "Private note",
	})
	require.NoError(t, err)

	_, err = svc.GetByID(message.ID, "third-party")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.GetByID("missing", sender.ID)
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestGetMessageMarksReadOnlyForReceiver(t *testing.T) {
	svc, messageRepo, sender, receiver := newMessageFixture(t)

	message, err := svc.Send(sender.ID, &dto.SendMessageRequest{
		ReceiverID: receiver.ID,
		Subject:    "Hello",
		Content:    "Private note",
	})
	require.NoError(t, err)

	// The sender re-reading their own message leaves it unread
	_, err = svc.GetByID(message.ID, sender.ID)
	require.NoError(t, err)
	stored, err := messageRepo.FindByID(message.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsRead)

	_, err = svc.GetByID(message.ID, receiver.ID)
	require.NoError(t, err)
	stored, err = messageRepo.FindByID(message.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
}

func TestMessageDanglingParticipantsShowUnknown(t *testing.T) {
	svc, messageRepo, _, receiver := newMessageFixture(t)

	orphan := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   "deleted-user",
		ReceiverID: receiver.ID,
		Subject:    "Ghost mail",
		Content:    "From nowhere",
		CreatedAt:  time.Now(),
	}
	messageRepo.Create(orphan)

	message, err := svc.GetByID(orphan.ID, receiver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownUserName, message.Sender)
	assert.Equal(t, "Rita Receiver", message.Receiver)
}
