package ports

import (
	"context"

	"github.com/craftlink/community-api/internal/core/domain"
)

// ConversationService defines use-case operations for direct messaging.
// The platform is deliberately open: messaging is not gated behind an
// accepted request.
type ConversationService interface {
	// Send persists a message and hands it to the delivery pipeline.
	// Whitespace-only bodies fail with domain.ErrValidation.
	Send(ctx context.Context, senderID, receiverID, body string) (*domain.Message, error)
	// History returns the conversation between the caller and other,
	// ascending by creation time. Symmetric in argument order.
	History(ctx context.Context, callerID, otherID string, limit int) ([]*domain.Message, error)
	// Subscribe opens a live stream for the conversation between the caller
	// and other. Cancel must be called when the listener goes away.
	Subscribe(callerID, otherID string) (<-chan domain.Message, func())
}
