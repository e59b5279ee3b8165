package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/craftlink/community-api/internal/api/metrics"
	"github.com/craftlink/community-api/internal/core/ports"
)

// maxAudioUpload bounds speech-to-text uploads to 15 MiB.
const maxAudioUpload = 15 << 20

// AIHandler exposes the creative-assistance tools backed by the external
// AI provider. The handlers are thin pass-throughs: no tool call reads or
// writes platform state.
type AIHandler struct {
	provider ports.AIProvider
	log      zerolog.Logger
}

func NewAIHandler(provider ports.AIProvider, log zerolog.Logger) *AIHandler {
	return &AIHandler{provider: provider, log: log}
}

func observeTool(tool string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.AIToolDuration.WithLabelValues(tool, outcome).Observe(time.Since(start).Seconds())
}

type generateImageRequest struct {
	Description string `json:"description" validate:"required"`
}

// GenerateImage godoc
// @Summary Generate a product image from a description
// @Tags ai
// @Accept json
// @Produce json
// @Param request body generateImageRequest true "image prompt"
// @Success 200 {object} ports.ImageResult
// @Failure 502 {object} echo.HTTPError
// @Security BearerAuth
// @Router /v1/ai/images [post]
func (h *AIHandler) GenerateImage(c echo.Context) error {
	var req generateImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start := time.Now()
	result, err := h.provider.GenerateImage(c.Request().Context(), req.Description)
	observeTool("image", start, err)
	if err != nil {
		h.log.Error().Err(err).Msg("image generation failed")
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// SpeechToText godoc
// @Summary Transcribe an uploaded audio file
// @Tags ai
// @Accept mpfd
// @Produce json
// @Param audio formData file true "audio file"
// @Success 200 {object} ports.TranscriptResult
// @Failure 502 {object} echo.HTTPError
// @Security BearerAuth
// @Router /v1/ai/transcriptions [post]
func (h *AIHandler) SpeechToText(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing 'audio' file")
	}
	if fileHeader.Size > maxAudioUpload {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "audio file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read 'audio' file")
	}
	defer file.Close()

	start := time.Now()
	result, err := h.provider.SpeechToText(c.Request().Context(), fileHeader.Filename, file)
	observeTool("speech_to_text", start, err)
	if err != nil {
		h.log.Error().Err(err).Msg("transcription failed")
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type textToSpeechRequest struct {
	Text string `json:"text" validate:"required"`
}

// TextToSpeech godoc
// @Summary Synthesize speech from text
// @Tags ai
// @Accept json
// @Produce json
// @Param request body textToSpeechRequest true "text to speak"
// @Success 200 {object} ports.SpeechResult
// @Failure 502 {object} echo.HTTPError
// @Security BearerAuth
// @Router /v1/ai/speech [post]
func (h *AIHandler) TextToSpeech(c echo.Context) error {
	var req textToSpeechRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start := time.Now()
	result, err := h.provider.TextToSpeech(c.Request().Context(), req.Text)
	observeTool("text_to_speech", start, err)
	if err != nil {
		h.log.Error().Err(err).Msg("speech synthesis failed")
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type generateIdeasRequest struct {
	Skills    []string `json:"skills" validate:"required,min=1"`
	Materials []string `json:"materials"`
}

// GenerateIdeas godoc
// @Summary Suggest product ideas from skills and materials
// @Tags ai
// @Accept json
// @Produce json
// @Param request body generateIdeasRequest true "skills and materials"
// @Success 200 {array} ports.Idea
// @Failure 502 {object} echo.HTTPError
// @Security BearerAuth
// @Router /v1/ai/ideas [post]
func (h *AIHandler) GenerateIdeas(c echo.Context) error {
	var req generateIdeasRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start := time.Now()
	ideas, err := h.provider.GenerateIdeas(c.Request().Context(), req.Skills, req.Materials)
	observeTool("ideas", start, err)
	if err != nil {
		h.log.Error().Err(err).Msg("idea generation failed")
		return err
	}
	return c.JSON(http.StatusOK, ideas)
}
