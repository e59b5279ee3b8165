package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/craftlink/community-api/internal/core/ports"
)

type ForumHandler struct {
	service ports.ForumService
	log     zerolog.Logger
}

func NewForumHandler(service ports.ForumService, log zerolog.Logger) *ForumHandler {
	return &ForumHandler{service: service, log: log}
}

type createPostRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type feedResponse struct {
	Data []ports.PostView `json:"data"`
}

// CreatePost publishes a new entry to the community feed.
//
// @Summary      Publish a forum post
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  domain.ForumPost
// @Failure      422   {object}  errorResponse
// @Router       /v1/forum/posts [post]
func (h *ForumHandler) CreatePost(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), callerID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// ListPosts returns the newest feed entries with author profiles joined.
//
// @Summary      List recent forum posts
// @Tags         forum
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of posts"
// @Success      200    {object}  feedResponse
// @Router       /v1/forum/posts [get]
func (h *ForumHandler) ListPosts(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	posts, err := h.service.ListPosts(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedResponse{Data: posts})
}
