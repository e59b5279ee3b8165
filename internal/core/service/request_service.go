package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

// RequestService owns the collaboration/mentorship request ledger. Status
// is the only mutable field and Respond is its only mutation path.
type RequestService struct {
	requests   ports.RequestRepository
	identities ports.IdentityRepository
	logger     zerolog.Logger
}

func NewRequestService(requests ports.RequestRepository, identities ports.IdentityRepository, logger zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, identities: identities, logger: logger}
}

// Create opens a new pending request. Multiple pending requests between the
// same pair are allowed; the ledger does not deduplicate.
func (s *RequestService) Create(ctx context.Context, input ports.CreateRequestInput) (*domain.Request, error) {
	if input.SenderID == input.RecipientID {
		return nil, domain.ErrSelfRequest
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, fmt.Errorf("%w: message must not be empty", domain.ErrValidation)
	}
	if !domain.ValidKind(input.Kind) {
		return nil, fmt.Errorf("%w: unknown request kind %q", domain.ErrValidation, input.Kind)
	}

	// Both endpoints must exist in the directory.
	sender, err := s.identities.FindByID(ctx, input.SenderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.identities.FindByID(ctx, input.RecipientID); err != nil {
		return nil, err
	}

	// Mentorship is asked for, not offered: only artisans open one.
	if input.Kind == domain.KindMentorship && sender.Role != domain.RoleArtisan {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	request := &domain.Request{
		ID:          uuid.NewString(),
		Kind:        input.Kind,
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		Message:     strings.TrimSpace(input.Message),
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		s.logger.Error().Err(err).Str("sender_id", input.SenderID).Msg("failed to create request")
		return nil, err
	}

	s.logger.Info().
		Str("request_id", request.ID).
		Str("kind", string(request.Kind)).
		Str("sender_id", request.SenderID).
		Str("recipient_id", request.RecipientID).
		Msg("request created")

	return request, nil
}

// Respond moves a pending request to accepted or rejected. The conditional
// store update guarantees that of two concurrent responses exactly one
// wins; the loser observes ErrInvalidTransition.
func (s *RequestService) Respond(ctx context.Context, requestID, callerID string, decision ports.Decision) (*domain.Request, error) {
	var status domain.RequestStatus
	switch decision {
	case ports.DecisionAccept:
		status = domain.StatusAccepted
	case ports.DecisionReject:
		status = domain.StatusRejected
	default:
		return nil, fmt.Errorf("%w: unknown decision %q", domain.ErrValidation, decision)
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.RecipientID != callerID {
		return nil, domain.ErrForbidden
	}
	if !request.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, request.Status, status)
	}

	now := time.Now().UTC()
	applied, err := s.requests.SetStatus(ctx, requestID, callerID, status, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		// The precondition held a moment ago, so a concurrent responder won
		// the race between our read and the conditional write.
		return nil, fmt.Errorf("%w: request is no longer pending", domain.ErrInvalidTransition)
	}

	request.Status = status
	request.UpdatedAt = now

	s.logger.Info().
		Str("request_id", requestID).
		Str("decision", string(decision)).
		Msg("request responded")

	return request, nil
}

// ListForIdentity is the read-side façade: ledger rows joined with the
// directory's current profiles, newest first. A counterpart that cannot be
// resolved leaves the view's profile empty rather than failing the list.
func (s *RequestService) ListForIdentity(ctx context.Context, callerID string) ([]ports.RequestView, error) {
	requests, err := s.requests.ListForIdentity(ctx, callerID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.RequestView, 0, len(requests))
	for _, r := range requests {
		direction := r.DirectionFor(callerID)
		counterpartID := r.SenderID
		if direction == domain.DirectionSent {
			counterpartID = r.RecipientID
		}

		view := ports.RequestView{
			ID:          r.ID,
			Kind:        r.Kind,
			SenderID:    r.SenderID,
			RecipientID: r.RecipientID,
			Message:     r.Message,
			Status:      r.Status,
			Direction:   direction,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}

		counterpart, err := s.identities.FindByID(ctx, counterpartID)
		if err == nil {
			view.Counterpart = toProfileSummary(counterpart)
		} else {
			s.logger.Warn().Err(err).Str("identity_id", counterpartID).Msg("counterpart lookup failed")
		}

		views = append(views, view)
	}
	return views, nil
}

func toProfileSummary(i *domain.Identity) *ports.ProfileSummary {
	return &ports.ProfileSummary{
		ID:       i.ID,
		FullName: i.FullName,
		Email:    i.Email,
		Role:     i.Role,
		Location: i.Location,
		Skills:   i.Skills,
		Bio:      i.Bio,
	}
}
