package service

import (
	"context"

	"healthhub/internal/models"
	"healthhub/internal/repository"
)

// MessageService handles direct messaging between platform users.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Send delivers a message from the sender to another user.
func (s *MessageService) Send(ctx context.Context, sender *models.User, receiverID uint, content string) (*models.Message, error) {
	if receiverID == sender.UserID {
		return nil, models.NewValidationError("Cannot send a message to yourself")
	}
	if content == "" {
		return nil, models.NewValidationError("Message content is required")
	}

	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		SenderID:   sender.UserID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return s.messageRepo.GetByID(ctx, msg.MessageID)
}

// Inbox returns every message the user sent or received, newest first.
func (s *MessageService) Inbox(ctx context.Context, user *models.User) ([]models.Message, error) {
	return s.messageRepo.ListForUser(ctx, user.UserID)
}

// Conversation returns the full exchange between the user and another user
// in chronological order.
func (s *MessageService) Conversation(ctx context.Context, user *models.User, otherID uint) ([]models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, otherID); err != nil {
		return nil, err
	}
	return s.messageRepo.Conversation(ctx, user.UserID, otherID)
}

// Get returns a message if the user is its sender or receiver.
func (s *MessageService) Get(ctx context.Context, user *models.User, messageID uint) (*models.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != user.UserID && msg.ReceiverID != user.UserID {
		return nil, models.NewForbiddenError("Not authorized to access this message")
	}
	return msg, nil
}

// MarkRead marks a message as read. Only the receiver may do this, and the
// flag cannot be cleared once set.
func (s *MessageService) MarkRead(ctx context.Context, user *models.User, messageID uint, isRead bool) (*models.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.ReceiverID != user.UserID {
		return nil, models.NewForbiddenError("Only the receiver can mark a message as read")
	}
	if !isRead {
		return nil, models.NewValidationError("Read flag cannot be cleared")
	}

	msg.IsRead = true
	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete removes a message; only its sender may do so.
func (s *MessageService) Delete(ctx context.Context, user *models.User, messageID uint) error {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != user.UserID {
		return models.NewForbiddenError("Only the sender can delete a message")
	}
	return s.messageRepo.Delete(ctx, messageID)
}
