package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub ledger
// ---------------------------------------------------------------------------

type stubRequestRepo struct {
	byID      map[string]*domain.Request
	createErr error
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{byID: make(map[string]*domain.Request)}
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.Request) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *req
	r.byID[req.ID] = &clone
	return nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) ListForIdentity(_ context.Context, id string) ([]*domain.Request, error) {
	var matched []*domain.Request
	for _, req := range r.byID {
		if req.SenderID == id || req.RecipientID == id {
			clone := *req
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// SetStatus mirrors the conditional update of the real Mongo repo: the
// write applies only while the stored row is still (id, recipientID,
// pending).
func (r *stubRequestRepo) SetStatus(_ context.Context, id, recipientID string, status domain.RequestStatus, at time.Time) (bool, error) {
	req, ok := r.byID[id]
	if !ok || req.RecipientID != recipientID || req.Status != domain.StatusPending {
		return false, nil
	}
	req.Status = status
	req.UpdatedAt = at
	return true, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requestFixture(senderID, recipientID string, kind domain.RequestKind) ports.CreateRequestInput {
	return ports.CreateRequestInput{
		SenderID:    senderID,
		RecipientID: recipientID,
		Kind:        kind,
		Message:     "would love to work together",
	}
}

func newRequestFixtureService(t *testing.T) (*RequestService, *stubRequestRepo, *stubIdentityRepo) {
	t.Helper()
	requests := newStubRequestRepo()
	identities := newStubIdentityRepo()
	seedIdentity(identities, "sender_1", "Rosa", "ceramics")
	seedIdentity(identities, "recipient_1", "Miguel", "weaving")
	return NewRequestService(requests, identities, discardLogger), requests, identities
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestRequestService_Create_Success(t *testing.T) {
	svc, repo, _ := newRequestFixtureService(t)

	request, err := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.ID == "" {
		t.Error("request must be assigned an id")
	}
	if request.Status != domain.StatusPending {
		t.Errorf("new request must be pending, got %q", request.Status)
	}
	if _, ok := repo.byID[request.ID]; !ok {
		t.Error("request must be persisted")
	}
}

func TestRequestService_Create_SelfRequest(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	_, err := svc.Create(context.Background(), requestFixture("sender_1", "sender_1", domain.KindMentorship))
	if !errors.Is(err, domain.ErrSelfRequest) {
		t.Errorf("expected ErrSelfRequest, got %v", err)
	}
}

func TestRequestService_Create_EmptyMessage(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	in := requestFixture("sender_1", "recipient_1", domain.KindCollaboration)
	in.Message = "   "

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRequestService_Create_UnknownKind(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	in := requestFixture("sender_1", "recipient_1", "apprenticeship")

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRequestService_Create_MentorshipIsArtisanOnly(t *testing.T) {
	svc, _, identities := newRequestFixtureService(t)
	mentor := identities.byID["sender_1"]
	mentor.Role = domain.RoleMentor
	identities.seed(mentor)

	_, err := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindMentorship))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	// Collaboration stays open to every role.
	if _, err := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration)); err != nil {
		t.Errorf("collaboration from a mentor must succeed, got %v", err)
	}
}

func TestRequestService_Create_UnknownRecipient(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	_, err := svc.Create(context.Background(), requestFixture("sender_1", "ghost", domain.KindCollaboration))
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Errorf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestRequestService_Create_NoDeduplication(t *testing.T) {
	svc, repo, _ := newRequestFixtureService(t)

	in := requestFixture("sender_1", "recipient_1", domain.KindCollaboration)
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if len(repo.byID) != 2 {
		t.Errorf("a repeated ask must open a second pending request, got %d stored", len(repo.byID))
	}
}

// ---------------------------------------------------------------------------
// Respond tests
// ---------------------------------------------------------------------------

func TestRequestService_Respond_Accept(t *testing.T) {
	svc, repo, _ := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindMentorship))

	responded, err := svc.Respond(context.Background(), created.ID, "recipient_1", ports.DecisionAccept)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if responded.Status != domain.StatusAccepted {
		t.Errorf("expected accepted, got %q", responded.Status)
	}
	if repo.byID[created.ID].Status != domain.StatusAccepted {
		t.Error("acceptance must be persisted")
	}
}

func TestRequestService_Respond_Reject(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))

	responded, err := svc.Respond(context.Background(), created.ID, "recipient_1", ports.DecisionReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if responded.Status != domain.StatusRejected {
		t.Errorf("expected rejected, got %q", responded.Status)
	}
}

func TestRequestService_Respond_SenderCannotRespond(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))

	_, err := svc.Respond(context.Background(), created.ID, "sender_1", ports.DecisionAccept)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestRequestService_Respond_TerminalIsImmutable(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))

	if _, err := svc.Respond(context.Background(), created.ID, "recipient_1", ports.DecisionAccept); err != nil {
		t.Fatalf("first response failed: %v", err)
	}

	_, err := svc.Respond(context.Background(), created.ID, "recipient_1", ports.DecisionReject)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on second response, got %v", err)
	}
}

// Of two responses racing on one pending request, exactly one conditional
// write applies.
func TestRequestService_Respond_ConcurrentResponseLosesRace(t *testing.T) {
	svc, repo, _ := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))

	applied, err := repo.SetStatus(context.Background(), created.ID, "recipient_1", domain.StatusAccepted, time.Now())
	if err != nil || !applied {
		t.Fatalf("first conditional write must apply: applied=%v err=%v", applied, err)
	}
	applied, err = repo.SetStatus(context.Background(), created.ID, "recipient_1", domain.StatusRejected, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Error("second conditional write must not apply")
	}

	// The service maps the lost race to ErrInvalidTransition.
	_, err = svc.Respond(context.Background(), created.ID, "recipient_1", ports.DecisionReject)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestRequestService_Respond_UnknownDecision(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))

	_, err := svc.Respond(context.Background(), created.ID, "recipient_1", "maybe")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRequestService_Respond_NotFound(t *testing.T) {
	svc, _, _ := newRequestFixtureService(t)

	_, err := svc.Respond(context.Background(), "missing", "recipient_1", ports.DecisionAccept)
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListForIdentity tests
// ---------------------------------------------------------------------------

func TestRequestService_List_PartitionsByDirection(t *testing.T) {
	svc, _, identities := newRequestFixtureService(t)
	seedIdentity(identities, "third_1", "Ana", "leatherwork")

	sent, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))
	received, _ := svc.Create(context.Background(), requestFixture("third_1", "sender_1", domain.KindMentorship))

	views, err := svc.ListForIdentity(context.Background(), "sender_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	directions := map[string]domain.Direction{}
	for _, v := range views {
		directions[v.ID] = v.Direction
	}
	if directions[sent.ID] != domain.DirectionSent {
		t.Errorf("expected %q to be sent, got %q", sent.ID, directions[sent.ID])
	}
	if directions[received.ID] != domain.DirectionReceived {
		t.Errorf("expected %q to be received, got %q", received.ID, directions[received.ID])
	}
}

func TestRequestService_List_CounterpartReflectsCurrentProfile(t *testing.T) {
	svc, _, identities := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))

	// The recipient renames after the request was opened.
	renamed := identities.byID["recipient_1"]
	renamed.FullName = "Miguel Ángel"
	identities.seed(renamed)

	views, err := svc.ListForIdentity(context.Background(), "sender_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || views[0].ID != created.ID {
		t.Fatalf("expected the created request, got %d views", len(views))
	}
	if views[0].Counterpart == nil {
		t.Fatal("counterpart must be joined")
	}
	if views[0].Counterpart.FullName != "Miguel Ángel" {
		t.Errorf("counterpart must reflect the current profile, got %q", views[0].Counterpart.FullName)
	}
}

func TestRequestService_List_MissingCounterpartIsTolerated(t *testing.T) {
	svc, repo, _ := newRequestFixtureService(t)

	created, _ := svc.Create(context.Background(), requestFixture("sender_1", "recipient_1", domain.KindCollaboration))
	// Counterpart disappears from the directory after the fact.
	repo.byID[created.ID].RecipientID = "ghost"

	views, err := svc.ListForIdentity(context.Background(), "sender_1")
	if err != nil {
		t.Fatalf("a missing counterpart must not fail the list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0].Counterpart != nil {
		t.Error("unresolvable counterpart must be nil")
	}
}
