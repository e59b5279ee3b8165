package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/craftlink/community-api/internal/api/metrics"
	"github.com/craftlink/community-api/internal/api/middleware"
	"github.com/craftlink/community-api/internal/core/ports"
)

const writeTimeout = 10 * time.Second

// WSHandler streams new conversation messages to a connected client.
// The stream is push-only: the client sends over the REST endpoint and
// listens here.
type WSHandler struct {
	service   ports.ConversationService
	jwtSecret string
	log       zerolog.Logger

	// AcceptInsecure bypasses origin verification. Development only.
	AcceptInsecure bool
}

func NewWSHandler(service ports.ConversationService, jwtSecret string, log zerolog.Logger) *WSHandler {
	return &WSHandler{service: service, jwtSecret: jwtSecret, log: log}
}

// Stream handles GET /ws/chat?token=...&with=<identity_id>.
// Browsers cannot set an Authorization header on the websocket dial, so
// the token travels as a query parameter.
func (h *WSHandler) Stream(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, err := middleware.ParseClaims(token, h.jwtSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	callerID, _ := claims["sub"].(string)
	if callerID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	otherID := c.QueryParam("with")
	if otherID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing 'with' parameter")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: h.AcceptInsecure,
	})
	if err != nil {
		// Accept already wrote the error response.
		return nil
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	// Push-only stream, but reads must continue so close/ping/pong control
	// frames are processed.
	ctx := conn.CloseRead(c.Request().Context())

	stream, cancel := h.service.Subscribe(callerID, otherID)
	defer cancel()

	metrics.ChatStreamSessions.Inc()
	defer metrics.ChatStreamSessions.Dec()

	h.log.Debug().Str("caller_id", callerID).Str("with", otherID).Msg("chat stream opened")

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-stream:
			if !ok {
				return nil
			}
			writeCtx, cancelWrite := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, m)
			cancelWrite()
			if err != nil {
				return nil
			}
		}
	}
}
