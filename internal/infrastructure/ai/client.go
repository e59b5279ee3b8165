// Package ai is the HTTP client for the external AI tool provider. The
// provider is opaque: each tool is a stateless request/response call, and
// a failed call carries no consequence for ledger or conversation state.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/craftlink/community-api/internal/core/ports"
)

// ErrProviderUnavailable wraps any transport or upstream failure so the
// API layer can map all provider trouble to one gateway error.
var ErrProviderUnavailable = errors.New("ai provider unavailable")

// Client calls the AI provider over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a provider client. timeout bounds every call;
// zero means 30s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) GenerateImage(ctx context.Context, description string) (*ports.ImageResult, error) {
	var out ports.ImageResult
	if err := c.postJSON(ctx, "/v1/images", map[string]string{"description": description}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SpeechToText(ctx context.Context, filename string, audio io.Reader) (*ports.TranscriptResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("audio", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transcriptions", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out ports.TranscriptResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TextToSpeech(ctx context.Context, text string) (*ports.SpeechResult, error) {
	var out ports.SpeechResult
	if err := c.postJSON(ctx, "/v1/speech", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateIdeas(ctx context.Context, skills, materials []string) ([]ports.Idea, error) {
	payload := map[string][]string{"skills": skills, "materials": materials}
	var out struct {
		Ideas []ports.Idea `json:"ideas"`
	}
	if err := c.postJSON(ctx, "/v1/ideas", payload, &out); err != nil {
		return nil, err
	}
	return out.Ideas, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: upstream returned %s", ErrProviderUnavailable, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: bad response: %v", ErrProviderUnavailable, err)
	}
	return nil
}
