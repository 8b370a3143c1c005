// Package server exposes the task pipeline over HTTP.
package server

import (
	"net/http"

	"ops-assistant/internal/application/port/input"
	"ops-assistant/internal/application/port/output"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

type Server struct {
	runner input.TaskRunner
	tools  output.ToolRegistry
	llm    output.LLMPort
	logger output.LoggerPort
}

func New(runner input.TaskRunner, tools output.ToolRegistry, llm output.LLMPort, logger output.LoggerPort) *Server {
	return &Server{
		runner: runner,
		tools:  tools,
		llm:    llm,
		logger: logger,
	}
}

func (s *Server) Routes() http.Handler {
	requestLogger := httplog.NewLogger("ops-assistant", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(requestLogger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/tools", s.handleTools)
	r.Post("/task", s.handleTask)

	return r
}
