// Package openrouter implements the LLM port on any OpenAI-compatible
// chat completion endpoint via go-openai.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ops-assistant/internal/application/port/output"

	"github.com/sashabaranov/go-openai"
)

var _ output.LLMPort = (*OpenRouterAdapter)(nil)

type OpenRouterAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://openrouter.ai/api/v1",
	}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.logger != nil {
		var bodyBytes []byte
		if req.Body != nil {
			bodyBytes, _ = io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		var requestData map[string]interface{}
		if len(bodyBytes) > 0 {
			json.Unmarshal(bodyBytes, &requestData)
		}

		t.logger.Debug("HTTP Request",
			"method", req.Method,
			"url", req.URL.String(),
			"body", requestData,
		)
	}

	resp, err := t.base.RoundTrip(req)

	if t.logger != nil && resp != nil {
		t.logger.Debug("HTTP Response",
			"status", resp.Status,
			"statusCode", resp.StatusCode,
		)
	}

	return resp, err
}

func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	if cfg.Logger != nil {
		transport := &loggingTransport{
			base:   http.DefaultTransport,
			logger: cfg.Logger,
		}
		config.HTTPClient = &http.Client{
			Transport: transport,
		}
	}

	return &OpenRouterAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

func (a *OpenRouterAdapter) Generate(ctx context.Context, req output.GenerateRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	completionReq := openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.JSONOnly {
		completionReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, completionReq)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
