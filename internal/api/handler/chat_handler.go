package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/craftlink/community-api/internal/api/metrics"
	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

// ChatHandler handles direct-message history and sending. The live stream
// lives in WSHandler.
type ChatHandler struct {
	service ports.ConversationService
}

func NewChatHandler(service ports.ConversationService) *ChatHandler {
	return &ChatHandler{service: service}
}

type sendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

type conversationResponse struct {
	Data []*domain.Message `json:"data"`
}

// History returns the conversation with another identity, oldest first.
//
// @Summary      Get conversation history
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true   "Other identity id"
// @Param        limit    query     int     false  "Return only the newest N messages"
// @Success      200      {object}  conversationResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/chat/{user_id} [get]
func (h *ChatHandler) History(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	messages, err := h.service.History(c.Request().Context(), callerID, c.Param("user_id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversationResponse{Data: messages})
}

// Send stores a message to another identity and fans it out to live
// subscribers.
//
// @Summary      Send a direct message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string              true  "Receiver identity id"
// @Param        body     body      sendMessageRequest  true  "Message body"
// @Success      201      {object}  domain.Message
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /v1/chat/{user_id} [post]
func (h *ChatHandler) Send(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	message, err := h.service.Send(c.Request().Context(), callerID, c.Param("user_id"), req.Body)
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, message)
}
