package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrServiceUnavailable signals that the generative language API could not be
// reached or returned a non-success status. This is the only failure the AI
// layer surfaces; malformed response bodies degrade to fallback values instead.
var ErrServiceUnavailable = errors.New("AI analysis service unavailable")

// Client generates free-form text from a prompt.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Google generative language API
// (models/<model>:generateContent).
type GeminiClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

type GeminiConfig struct {
	APIKey   string
	Model    string
	Endpoint string // e.g. https://generativelanguage.googleapis.com/v1
	Timeout  time.Duration
}

func NewGeminiClient(conf GeminiConfig) *GeminiClient {
	if conf.Model == "" {
		conf.Model = "gemini-pro"
	}
	if conf.Timeout == 0 {
		conf.Timeout = 60 * time.Second
	}
	return &GeminiClient{
		apiKey:   conf.APIKey,
		model:    conf.Model,
		endpoint: conf.Endpoint,
		httpClient: &http.Client{
			Timeout: conf.Timeout,
		},
	}
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends the prompt and returns the first candidate's text.
// An empty string with nil error means the service answered but produced no
// usable candidate.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrServiceUnavailable)
	}

	body := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 800,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// The transport succeeded; an unparseable body is "responded oddly",
		// not "service down".
		return "", nil
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrServiceUnavailable, parsed.Error.Message)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
