// Package gemini wraps the Gemini API for statement extraction,
// single-transaction categorization, and advisory prompts.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured. Flash is fast and good
// at document reading, which is the bulk of this workload.
const DefaultModel = "gemini-2.5-flash"

// Client is a thin wrapper around the Gen AI SDK. It is constructed once at
// startup and injected into every component that talks to the model.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New creates a Gemini client. The API key is required; model falls back to
// DefaultModel when empty.
func New(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		// API version v1 is what the docs use for current Gemini models.
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	logger.Debug("gemini client initialized", "model", model)

	return &Client{client: client, model: model, logger: logger}, nil
}

// Generate sends a text-only prompt and returns the model's response
// verbatim. The advisory tools are pure pass-throughs over this.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
