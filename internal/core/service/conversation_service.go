package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

// MessageDispatcher hands stored messages to the delivery pipeline.
// Implementations preserve creation order per conversation.
type MessageDispatcher interface {
	Enqueue(m domain.Message)
}

// ConversationService implements direct messaging between two identities.
type ConversationService struct {
	messages   ports.MessageRepository
	identities ports.IdentityRepository
	dispatcher MessageDispatcher
	broker     ports.MessageBroker
	logger     zerolog.Logger
}

func NewConversationService(
	messages ports.MessageRepository,
	identities ports.IdentityRepository,
	dispatcher MessageDispatcher,
	broker ports.MessageBroker,
	logger zerolog.Logger,
) *ConversationService {
	return &ConversationService{
		messages:   messages,
		identities: identities,
		dispatcher: dispatcher,
		broker:     broker,
		logger:     logger,
	}
}

// Send persists a message and enqueues it for live delivery. The store
// write is the source of truth; delivery is best-effort fan-out to current
// subscribers.
func (s *ConversationService) Send(ctx context.Context, senderID, receiverID, body string) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.ErrValidation
	}

	if _, err := s.identities.FindByID(ctx, receiverID); err != nil {
		return nil, err
	}

	message := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, message); err != nil {
		s.logger.Error().Err(err).Str("sender_id", senderID).Msg("failed to store message")
		return nil, err
	}

	s.dispatcher.Enqueue(*message)

	s.logger.Debug().
		Str("message_id", message.ID).
		Str("pair", domain.PairKey(senderID, receiverID)).
		Msg("message sent")

	return message, nil
}

// History returns the conversation between callerID and otherID ascending
// by creation time. The pair is unordered: History(A, B) == History(B, A).
func (s *ConversationService) History(ctx context.Context, callerID, otherID string, limit int) ([]*domain.Message, error) {
	if _, err := s.identities.FindByID(ctx, otherID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListConversation(ctx, callerID, otherID, limit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}

// Subscribe opens a live stream for the caller's conversation with otherID.
func (s *ConversationService) Subscribe(callerID, otherID string) (<-chan domain.Message, func()) {
	return s.broker.Subscribe(domain.PairKey(callerID, otherID))
}
