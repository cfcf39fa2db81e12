package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/internal/domain"
)

type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type MessageService struct {
	stores *StoreSelector
	events *EventDispatcher
	log    *zap.Logger
}

func NewMessageService(stores *StoreSelector, events *EventDispatcher, logger *zap.Logger) *MessageService {
	return &MessageService{stores: stores, events: events, log: logger}
}

func (s *MessageService) Create(ctx context.Context, in MessageInput) (*domain.Message, bool, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, false, domain.Errorf(domain.ErrInvalidInput, "All fields are required")
	}

	m := &domain.Message{Name: in.Name, Email: in.Email, Message: in.Message}

	store := s.stores.Select(ctx, "createMessage")
	if err := store.Messages().Create(ctx, m); err != nil {
		return nil, false, err
	}

	if !store.Demo() {
		s.events.Dispatch(domain.EventMessageReceived, domain.MessageReceivedEvent{
			EventID:   uuid.NewString(),
			MessageID: m.ID,
			Email:     m.Email,
			CreatedAt: m.CreatedAt,
		})
	}
	return m, store.Demo(), nil
}

// List is newest first. Demo mode has no messages.
func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	store := s.stores.Select(ctx, "listMessages")
	msgs, err := store.Messages().List(ctx)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}
