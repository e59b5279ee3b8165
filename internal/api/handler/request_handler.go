package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftlink/community-api/internal/api/metrics"
	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

// RequestHandler handles the collaboration/mentorship request ledger.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createRequestRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Kind        string `json:"kind"         validate:"required,oneof=collaboration mentorship"`
	Message     string `json:"message"      validate:"required"`
}

type respondRequestRequest struct {
	Response string `json:"response" validate:"required,oneof=accept reject"`
}

type listRequestsResponse struct {
	Data []ports.RequestView `json:"data"`
}

// Create opens a new request toward another identity.
//
// @Summary      Send a collaboration or mentorship request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Recipient, kind and message"
// @Success      201   {object}  domain.Request
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	request, err := h.service.Create(c.Request().Context(), ports.CreateRequestInput{
		SenderID:    callerID,
		RecipientID: req.RecipientID,
		Kind:        domain.RequestKind(req.Kind),
		Message:     req.Message,
	})
	if err != nil {
		return err
	}

	metrics.RequestsCreatedTotal.WithLabelValues(string(request.Kind)).Inc()
	return c.JSON(http.StatusCreated, request)
}

// Respond accepts or rejects a pending request.
//
// @Summary      Respond to a pending request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Request id"
// @Param        body  body      respondRequestRequest  true  "accept or reject"
// @Success      200   {object}  domain.Request
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/requests/{id}/response [post]
func (h *RequestHandler) Respond(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req respondRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	request, err := h.service.Respond(c.Request().Context(), c.Param("id"), callerID, ports.Decision(req.Response))
	if err != nil {
		return err
	}

	metrics.RequestResponsesTotal.WithLabelValues(req.Response).Inc()
	return c.JSON(http.StatusOK, request)
}

// List returns the caller's sent and received requests, newest first.
//
// @Summary      List own requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRequestsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListForIdentity(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listRequestsResponse{Data: views})
}
