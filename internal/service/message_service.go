package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

// MessageService handles message creation, lookup and owner-only deletion.
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new message service
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

type CreateMessageInput struct {
	UserID uint
	Text   string
}

// CreateMessage validates and persists a new message for the acting user.
func (s *MessageService) CreateMessage(ctx context.Context, in CreateMessageInput) (*models.Message, error) {
	if err := validation.ValidateMessageText(in.Text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	message := &models.Message{
		Text:   in.Text,
		UserID: in.UserID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessage fetches a message annotated with the viewer's liked flag.
func (s *MessageService) GetMessage(ctx context.Context, id, viewerID uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id, viewerID)
}

// DeleteMessage removes a message. Only the owner may delete it.
func (s *MessageService) DeleteMessage(ctx context.Context, actorID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}
	if message.UserID != actorID {
		return models.NewUnauthorizedError("You can't delete another user's messages")
	}
	return s.messageRepo.Delete(ctx, messageID)
}
