package ports

import (
	"context"
	"io"
)

// ImageResult is the provider's answer to an image-generation prompt.
type ImageResult struct {
	URL string `json:"url"`
}

// TranscriptResult is the provider's answer to a speech-to-text upload.
type TranscriptResult struct {
	Text string `json:"text"`
}

// SpeechResult carries synthesized audio as a base64 payload plus its MIME
// type, matching what the provider returns.
type SpeechResult struct {
	AudioBase64 string `json:"audio_base64"`
	ContentType string `json:"content_type"`
}

// Idea is one AI-generated product suggestion.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AIProvider is the opaque external AI service. Calls are stateless
// request/response round-trips; failures are surfaced to the caller and
// never touch ledger or conversation state.
type AIProvider interface {
	GenerateImage(ctx context.Context, description string) (*ImageResult, error)
	SpeechToText(ctx context.Context, filename string, audio io.Reader) (*TranscriptResult, error)
	TextToSpeech(ctx context.Context, text string) (*SpeechResult, error)
	GenerateIdeas(ctx context.Context, skills, materials []string) ([]Idea, error)
}
