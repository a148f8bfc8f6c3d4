package service

import (
	"context"
	"testing"

	"healthhub/internal/models"
)

type messageRepoStub struct {
	createFn       func(context.Context, *models.Message) error
	getByIDFn      func(context.Context, uint) (*models.Message, error)
	listForUserFn  func(context.Context, uint) ([]models.Message, error)
	conversationFn func(context.Context, uint, uint) ([]models.Message, error)
	updateFn       func(context.Context, *models.Message) error
	deleteFn       func(context.Context, uint) error
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id)
}
func (s *messageRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.Message, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *messageRepoStub) Conversation(ctx context.Context, userID, otherUserID uint) ([]models.Message, error) {
	return s.conversationFn(ctx, userID, otherUserID)
}
func (s *messageRepoStub) Update(ctx context.Context, message *models.Message) error {
	return s.updateFn(ctx, message)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:       func(context.Context, *models.Message) error { return nil },
		getByIDFn:      func(context.Context, uint) (*models.Message, error) { return &models.Message{}, nil },
		listForUserFn:  func(context.Context, uint) ([]models.Message, error) { return nil, nil },
		conversationFn: func(context.Context, uint, uint) ([]models.Message, error) { return nil, nil },
		updateFn:       func(context.Context, *models.Message) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
	}
}

func TestMessageServiceSendToSelf(t *testing.T) {
	svc := NewMessageService(noopMessageRepo(), noopUserRepo())
	sender := &models.User{UserID: 3}
	_, err := svc.Send(context.Background(), sender, 3, "hello")
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestMessageServiceSendUnknownReceiver(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", 7)
	}

	svc := NewMessageService(noopMessageRepo(), users)
	sender := &models.User{UserID: 3}
	_, err := svc.Send(context.Background(), sender, 7, "hello")
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestMessageServiceSendSetsParticipants(t *testing.T) {
	messages := noopMessageRepo()
	var created *models.Message
	messages.createFn = func(_ context.Context, m *models.Message) error {
		m.MessageID = 12
		created = m
		return nil
	}
	messages.getByIDFn = func(context.Context, uint) (*models.Message, error) { return created, nil }

	svc := NewMessageService(messages, noopUserRepo())
	sender := &models.User{UserID: 3}
	msg, err := svc.Send(context.Background(), sender, 7, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.SenderID != 3 || msg.ReceiverID != 7 {
		t.Fatalf("unexpected participants: %d/%d", msg.SenderID, msg.ReceiverID)
	}
	if msg.IsRead {
		t.Fatal("new message should be unread")
	}
}

func TestMessageServiceMarkReadNotReceiver(t *testing.T) {
	messages := noopMessageRepo()
	messages.getByIDFn = func(context.Context, uint) (*models.Message, error) {
		return &models.Message{MessageID: 12, SenderID: 3, ReceiverID: 7}, nil
	}

	svc := NewMessageService(messages, noopUserRepo())
	sender := &models.User{UserID: 3}
	_, err := svc.MarkRead(context.Background(), sender, 12, true)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestMessageServiceMarkReadCannotClear(t *testing.T) {
	messages := noopMessageRepo()
	messages.getByIDFn = func(context.Context, uint) (*models.Message, error) {
		return &models.Message{MessageID: 12, SenderID: 3, ReceiverID: 7, IsRead: true}, nil
	}

	svc := NewMessageService(messages, noopUserRepo())
	receiver := &models.User{UserID: 7}
	_, err := svc.MarkRead(context.Background(), receiver, 12, false)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestMessageServiceMarkRead(t *testing.T) {
	messages := noopMessageRepo()
	state := &models.Message{MessageID: 12, SenderID: 3, ReceiverID: 7}
	messages.getByIDFn = func(context.Context, uint) (*models.Message, error) { return state, nil }

	svc := NewMessageService(messages, noopUserRepo())
	receiver := &models.User{UserID: 7}
	msg, err := svc.MarkRead(context.Background(), receiver, 12, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !msg.IsRead {
		t.Fatal("expected message to be marked read")
	}
}

func TestMessageServiceDeleteNotSender(t *testing.T) {
	messages := noopMessageRepo()
	messages.getByIDFn = func(context.Context, uint) (*models.Message, error) {
		return &models.Message{MessageID: 12, SenderID: 3, ReceiverID: 7}, nil
	}

	svc := NewMessageService(messages, noopUserRepo())
	receiver := &models.User{UserID: 7}
	err := svc.Delete(context.Background(), receiver, 12)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestMessageServiceGetNonParticipant(t *testing.T) {
	messages := noopMessageRepo()
	messages.getByIDFn = func(context.Context, uint) (*models.Message, error) {
		return &models.Message{MessageID: 12, SenderID: 3, ReceiverID: 7}, nil
	}

	svc := NewMessageService(messages, noopUserRepo())
	outsider := &models.User{UserID: 99}
	_, err := svc.Get(context.Background(), outsider, 12)
	assertAppErrorCode(t, err, "FORBIDDEN")
}
