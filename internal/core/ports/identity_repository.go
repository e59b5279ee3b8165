package ports

import (
	"context"

	"github.com/craftlink/community-api/internal/core/domain"
)

// IdentityRepository defines persistence operations for the identity
// directory.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	// SearchBySkill returns identities with at least one skill tag matching
	// query as a case-insensitive substring. No match is an empty slice,
	// not an error.
	SearchBySkill(ctx context.Context, query string) ([]*domain.Identity, error)
	Update(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
}

// PointsReader exposes the reputation points awarded to an identity by an
// external collaborator. The platform never writes points itself.
type PointsReader interface {
	Points(ctx context.Context, identityID string) (int64, error)
}
