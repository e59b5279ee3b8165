package ports

import (
	"context"

	"github.com/craftlink/community-api/internal/core/domain"
)

// MessageRepository defines persistence operations for conversations.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	// ListConversation returns all messages between the unordered pair
	// {a, b}, ascending by creation time with insertion order breaking
	// ties. limit <= 0 means no limit; otherwise the newest limit messages
	// are returned, still in ascending order.
	ListConversation(ctx context.Context, a, b string, limit int) ([]*domain.Message, error)
}

// MessageBroker delivers newly stored messages to live subscribers without
// re-polling. Delivery order per pair matches creation order; subscribers
// that fall behind are skipped rather than blocked on.
type MessageBroker interface {
	Publish(m domain.Message)
	// Subscribe registers a listener for the pair key. The returned cancel
	// func must be called to release the subscription.
	Subscribe(pairKey string) (<-chan domain.Message, func())
}
