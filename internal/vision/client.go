package vision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

// Config for the Gemini client.
type Config struct {
	APIKey  string
	Model   string        // e.g. "gemini-1.5-flash"
	Timeout time.Duration // per-call timeout
}

// Generator is the transport boundary: it sends a prompt (and optionally raw
// document bytes) to the model and returns its free-text response. Tests stub
// this; Client is the real thing.
type Generator interface {
	Generate(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
}

type Client struct {
	cfg  Config
	genc *genai.Client
	log  *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	genc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{cfg: cfg, genc: genc, log: logger}, nil
}

// Generate sends the prompt plus optional inline document bytes and returns
// the model's text response.
func (c *Client) Generate(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	parts := []*genai.Part{{Text: prompt}}
	if len(data) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: data, MIMEType: mimeType},
		})
	}
	contents := []*genai.Content{{Parts: parts}}

	result, err := c.genc.Models.GenerateContent(ctx, c.cfg.Model, contents, nil)
	if err != nil {
		c.log.Error("vision.generate.error",
			"model", c.cfg.Model,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}
	c.log.Debug("vision.generate.ok",
		"model", c.cfg.Model,
		"response_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
