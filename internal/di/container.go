// Package di constructs the process-wide object graph: one LLM client,
// one tool registry, one pipeline. Built once at startup, read-only for
// the process lifetime, torn down at shutdown.
package di

import (
	"context"
	"fmt"

	"ops-assistant/internal/adapter/tool"
	"ops-assistant/internal/application/port/input"
	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/application/service"
	"ops-assistant/internal/infrastructure/llm/gemini"
	"ops-assistant/internal/infrastructure/llm/openrouter"
	"ops-assistant/internal/infrastructure/logger"
	"ops-assistant/internal/usecase/executor"
	"ops-assistant/internal/usecase/pipeline"
	"ops-assistant/internal/usecase/planner"
	"ops-assistant/internal/usecase/verifier"
)

type Container struct {
	LLM        output.LLMPort
	Logger     output.LoggerPort
	Tools      output.ToolRegistry
	TaskRunner input.TaskRunner
}

type Config struct {
	// LLMProvider selects the model backend: "gemini" or "openrouter".
	LLMProvider string

	GeminiAPIKey     string
	GeminiModel      string
	OpenRouterAPIKey string
	OpenRouterModel  string

	WeatherAPIKey string
	NewsAPIKey    string
	GitHubToken   string

	LogLevel string
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llm, err := newLLM(ctx, cfg, log)
	if err != nil {
		log.Close()
		return nil, err
	}

	tools := service.NewToolRegistry()
	registerOpsTools(tools, cfg, log)

	structured := service.NewStructuredService(llm, log)
	p := planner.New(structured, tools, log)
	e := executor.New(tools, log)
	v := verifier.New(llm, structured, log)

	return &Container{
		LLM:        llm,
		Logger:     log,
		Tools:      tools,
		TaskRunner: pipeline.New(p, e, v, log),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func newLLM(ctx context.Context, cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.LLMProvider {
	case "", "gemini":
		geminiCfg := gemini.DefaultConfig(cfg.GeminiAPIKey)
		if cfg.GeminiModel != "" {
			geminiCfg.Model = cfg.GeminiModel
		}
		geminiCfg.Logger = log
		return gemini.NewGeminiAdapter(ctx, geminiCfg)
	case "openrouter":
		orCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
		orCfg.Logger = log
		return openrouter.NewOpenRouterAdapter(orCfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLMProvider)
	}
}

// registerOpsTools wires the REST adapters over one shared HTTP client.
func registerOpsTools(registry *service.ToolRegistryImpl, cfg Config, log output.LoggerPort) {
	client := tool.NewHTTPClient()
	registry.Register(tool.NewGitHubTool(tool.GitHubConfig{Token: cfg.GitHubToken, Client: client, Logger: log}))
	registry.Register(tool.NewNewsTool(tool.NewsConfig{APIKey: cfg.NewsAPIKey, Client: client, Logger: log}))
	registry.Register(tool.NewWeatherTool(tool.WeatherConfig{APIKey: cfg.WeatherAPIKey, Client: client, Logger: log}))
}
