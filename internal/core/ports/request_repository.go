package ports

import (
	"context"
	"time"

	"github.com/craftlink/community-api/internal/core/domain"
)

// RequestRepository defines persistence operations for the request ledger.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.Request) error
	FindByID(ctx context.Context, id string) (*domain.Request, error)
	// ListForIdentity returns every request where id is sender or recipient,
	// descending by creation time.
	ListForIdentity(ctx context.Context, id string) ([]*domain.Request, error)
	// SetStatus conditionally moves the request out of pending. The update
	// applies only when the stored document still matches (id, recipientID,
	// pending), so exactly one of two concurrent responders wins. It returns
	// false when nothing matched; the caller diagnoses why.
	SetStatus(ctx context.Context, id, recipientID string, status domain.RequestStatus, at time.Time) (bool, error)
}
