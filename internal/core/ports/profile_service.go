package ports

import (
	"context"

	"github.com/craftlink/community-api/internal/core/domain"
)

// ProfileUpdate carries the editable subset of an identity. Nil pointers
// mean "leave unchanged"; role and email have no edit path.
type ProfileUpdate struct {
	FullName   *string
	Location   *string
	Skills     []string
	Materials  []string
	Bio        *string
	Experience *string
}

// ProfileService defines directory use-cases beyond authentication.
type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.Identity, error)
	// SearchBySkill fails with domain.ErrValidation on an empty query.
	SearchBySkill(ctx context.Context, query string) ([]*domain.Identity, error)
	// UpdateProfile merges the provided fields into the identity. Only the
	// owning identity may call: callerID != id fails with domain.ErrForbidden.
	UpdateProfile(ctx context.Context, callerID, id string, update ProfileUpdate) (*domain.Identity, error)
	// Points returns the externally awarded reputation for id (0 when none).
	Points(ctx context.Context, id string) (int64, error)
}
