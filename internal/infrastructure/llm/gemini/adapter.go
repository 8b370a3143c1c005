// Package gemini implements the LLM port on Google Gemini through
// langchaingo's googleai client.
package gemini

import (
	"context"
	"fmt"

	"ops-assistant/internal/application/port/output"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var _ output.LLMPort = (*GeminiAdapter)(nil)

type GeminiAdapter struct {
	client *googleai.GoogleAI
	logger output.LoggerPort
}

type Config struct {
	APIKey string
	Model  string
	Logger output.LoggerPort
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey: apiKey,
		Model:  "gemini-2.5-flash",
	}
}

func NewGeminiAdapter(ctx context.Context, cfg Config) (*GeminiAdapter, error) {
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiAdapter{
		client: client,
		logger: cfg.Logger,
	}, nil
}

func (a *GeminiAdapter) Generate(ctx context.Context, req output.GenerateRequest) (string, error) {
	content := make([]llms.MessageContent, 0, 2)
	if req.SystemPrompt != "" {
		content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, req.SystemPrompt))
	}
	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt))

	opts := []llms.CallOption{
		llms.WithTemperature(float64(req.Temperature)),
	}
	if req.JSONOnly {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := a.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Content, nil
}
