package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/craftlink/community-api/internal/core/domain"
)

type stubConversationService struct {
	sendFn    func(ctx context.Context, senderID, receiverID, body string) (*domain.Message, error)
	historyFn func(ctx context.Context, callerID, otherID string, limit int) ([]*domain.Message, error)
}

func (s *stubConversationService) Send(ctx context.Context, senderID, receiverID, body string) (*domain.Message, error) {
	return s.sendFn(ctx, senderID, receiverID, body)
}

func (s *stubConversationService) History(ctx context.Context, callerID, otherID string, limit int) ([]*domain.Message, error) {
	return s.historyFn(ctx, callerID, otherID, limit)
}

func (s *stubConversationService) Subscribe(callerID, otherID string) (<-chan domain.Message, func()) {
	ch := make(chan domain.Message)
	return ch, func() { close(ch) }
}

func TestChatHandler_Send_Success(t *testing.T) {
	e := newEchoWithValidator()
	stub := &stubConversationService{
		sendFn: func(_ context.Context, senderID, receiverID, body string) (*domain.Message, error) {
			if senderID != "alice" || receiverID != "bruno" {
				t.Fatalf("unexpected pair: %s -> %s", senderID, receiverID)
			}
			return &domain.Message{ID: "msg_1", SenderID: senderID, ReceiverID: receiverID, Body: body}, nil
		},
	}
	handler := NewChatHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/bruno", strings.NewReader(`{"body":"hola"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice")
	c.SetParamNames("user_id")
	c.SetParamValues("bruno")

	if err := handler.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestChatHandler_Send_MissingBody(t *testing.T) {
	e := newEchoWithValidator()
	stub := &stubConversationService{
		sendFn: func(context.Context, string, string, string) (*domain.Message, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewChatHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/bruno", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice")
	c.SetParamNames("user_id")
	c.SetParamValues("bruno")

	err := handler.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestChatHandler_History_PassesLimit(t *testing.T) {
	e := newEchoWithValidator()
	stub := &stubConversationService{
		historyFn: func(_ context.Context, callerID, otherID string, limit int) ([]*domain.Message, error) {
			if limit != 25 {
				t.Fatalf("expected limit 25, got %d", limit)
			}
			return []*domain.Message{{ID: "msg_1"}}, nil
		},
	}
	handler := NewChatHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/bruno?limit=25", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice")
	c.SetParamNames("user_id")
	c.SetParamValues("bruno")

	if err := handler.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []*domain.Message `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.Data))
	}
}

func TestChatHandler_History_IgnoresBadLimit(t *testing.T) {
	e := newEchoWithValidator()
	stub := &stubConversationService{
		historyFn: func(_ context.Context, _, _ string, limit int) ([]*domain.Message, error) {
			if limit != 0 {
				t.Fatalf("malformed limit must fall back to 0, got %d", limit)
			}
			return []*domain.Message{}, nil
		},
	}
	handler := NewChatHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/bruno?limit=lots", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice")
	c.SetParamNames("user_id")
	c.SetParamValues("bruno")

	if err := handler.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
