package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

// ProfileService implements directory reads and the owner-only profile
// update path.
type ProfileService struct {
	repo   ports.IdentityRepository
	points ports.PointsReader
	logger zerolog.Logger
}

func NewProfileService(repo ports.IdentityRepository, points ports.PointsReader, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, points: points, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Identity, error) {
	return s.repo.FindByID(ctx, id)
}

// SearchBySkill matches the query case-insensitively against any skill tag.
// An empty query is rejected; a query with no matches returns an empty
// slice.
func (s *ProfileService) SearchBySkill(ctx context.Context, query string) ([]*domain.Identity, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrValidation
	}

	results, err := s.repo.SearchBySkill(ctx, query)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*domain.Identity{}
	}
	return results, nil
}

// UpdateProfile merges the provided fields into the caller's own identity.
// Role and email are immutable; there is no input path for them.
func (s *ProfileService) UpdateProfile(ctx context.Context, callerID, id string, update ports.ProfileUpdate) (*domain.Identity, error) {
	if callerID != id {
		return nil, domain.ErrForbidden
	}

	identity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		if strings.TrimSpace(*update.FullName) == "" {
			return nil, domain.ErrValidation
		}
		identity.FullName = strings.TrimSpace(*update.FullName)
	}
	if update.Location != nil {
		identity.Location = *update.Location
	}
	if update.Skills != nil {
		identity.Skills = update.Skills
	}
	if update.Materials != nil {
		identity.Materials = update.Materials
	}
	if update.Bio != nil {
		identity.Bio = *update.Bio
	}
	if update.Experience != nil {
		identity.Experience = *update.Experience
	}
	identity.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, identity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("identity_id", id).Msg("profile updated")
	return updated, nil
}

// Points reads the externally awarded reputation for id. A read failure is
// logged and reported as zero so the profile view degrades instead of
// erroring out.
func (s *ProfileService) Points(ctx context.Context, id string) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return 0, err
	}

	points, err := s.points.Points(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("identity_id", id).Msg("points lookup failed")
		return 0, nil
	}
	return points, nil
}
