package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftlink/community-api/internal/core/ports"
)

// ProfileHandler handles directory reads and the owner's profile edits.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// updateProfileRequest carries the editable profile fields. Absent fields
// are left untouched; role and email are not editable.
type updateProfileRequest struct {
	FullName   *string  `json:"full_name"`
	Location   *string  `json:"location"`
	Skills     []string `json:"skills"`
	Materials  []string `json:"materials"`
	Bio        *string  `json:"bio"`
	Experience *string  `json:"experience"`
}

type pointsResponse struct {
	Points int64 `json:"points"`
}

// Me returns the caller's own profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	identity, err := h.profiles.Get(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// Update merges the provided fields into the caller's profile.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/me [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := h.profiles.UpdateProfile(c.Request().Context(), callerID, callerID, ports.ProfileUpdate{
		FullName:   req.FullName,
		Location:   req.Location,
		Skills:     req.Skills,
		Materials:  req.Materials,
		Bio:        req.Bio,
		Experience: req.Experience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// Get returns another identity's public profile.
//
// @Summary      Get a profile by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Identity id"
// @Success      200  {object}  domain.Identity
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	if _, _, err := ctxCaller(c); err != nil {
		return err
	}

	identity, err := h.profiles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// Search finds identities by skill tag.
//
// @Summary      Search identities by skill
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skill  query     string  true  "Skill to match (case-insensitive substring)"
// @Success      200    {array}   domain.Identity
// @Failure      422    {object}  errorResponse
// @Router       /v1/users/search [get]
func (h *ProfileHandler) Search(c echo.Context) error {
	if _, _, err := ctxCaller(c); err != nil {
		return err
	}

	results, err := h.profiles.SearchBySkill(c.Request().Context(), c.QueryParam("skill"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// Points returns the caller's externally awarded reputation.
//
// @Summary      Get own points
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pointsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me/points [get]
func (h *ProfileHandler) Points(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	points, err := h.profiles.Points(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pointsResponse{Points: points})
}
