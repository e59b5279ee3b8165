package ports

import (
	"context"
	"time"

	"github.com/craftlink/community-api/internal/core/domain"
)

// Decision is the recipient's answer to a pending request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// CreateRequestInput carries all data needed to open a new request.
// SenderID is always the authenticated caller, never client-supplied.
type CreateRequestInput struct {
	SenderID    string
	RecipientID string
	Kind        domain.RequestKind
	Message     string
}

// ProfileSummary is the display-ready slice of an identity joined into
// read-side views. It always reflects the directory's current state, not a
// snapshot taken at request-creation time.
type ProfileSummary struct {
	ID       string   `json:"id"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	Bio      string   `json:"bio,omitempty"`
}

// RequestView is a ledger row enriched for display: direction relative to
// the viewer plus the counterpart's current profile. Counterpart is nil
// when the referenced identity cannot be resolved.
type RequestView struct {
	ID          string               `json:"id"`
	Kind        domain.RequestKind   `json:"kind"`
	SenderID    string               `json:"sender_id"`
	RecipientID string               `json:"recipient_id"`
	Message     string               `json:"message"`
	Status      domain.RequestStatus `json:"status"`
	Direction   domain.Direction     `json:"direction"`
	Counterpart *ProfileSummary      `json:"counterpart,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// RequestService defines use-case operations on the request ledger.
type RequestService interface {
	Create(ctx context.Context, input CreateRequestInput) (*domain.Request, error)
	// Respond is the only mutation path for request status. Callers other
	// than the recipient fail with domain.ErrForbidden; non-pending requests
	// fail with domain.ErrInvalidTransition.
	Respond(ctx context.Context, requestID, callerID string, decision Decision) (*domain.Request, error)
	// ListForIdentity returns the caller's sent and received requests,
	// newest first, with counterpart profiles joined at read time.
	ListForIdentity(ctx context.Context, callerID string) ([]RequestView, error)
}
