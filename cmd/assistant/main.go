package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ops-assistant/internal/di"
	"ops-assistant/internal/infrastructure/env"
	"ops-assistant/internal/infrastructure/server"
)

func main() {
	envService := env.NewEnvService()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := envService.GetWithDefault("LLM_PROVIDER", "gemini")

	cfg := di.Config{
		LLMProvider:     provider,
		GeminiModel:     envService.Get("GEMINI_MODEL"),
		OpenRouterModel: envService.Get("OPENROUTER_MODEL_NAME"),
		WeatherAPIKey:   envService.Get("WEATHER_API_KEY"),
		NewsAPIKey:      envService.Get("NEWS_API_KEY"),
		GitHubToken:     envService.Get("GITHUB_TOKEN"),
		LogLevel:        envService.GetWithDefault("LOG_LEVEL", "info"),
	}
	switch provider {
	case "openrouter":
		cfg.OpenRouterAPIKey = envService.MustGet("OPENROUTER_API_KEY")
	default:
		cfg.GeminiAPIKey = envService.MustGet("GEMINI_API_KEY")
	}

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	srv := server.New(container.TaskRunner, container.Tools, container.LLM, container.Logger)

	addr := fmt.Sprintf(":%d", envService.GetInt("PORT", 8000))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		container.Logger.Info("Ops Assistant listening", "addr", addr, "provider", provider)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("Server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	container.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Shutdown failed", "error", err)
	}
}
