// Package planner acquires an execution plan for a task. The planning
// itself is the model's job; this use case assembles the prompt from
// the registered tool contracts and decodes the reply into a plan.
package planner

import (
	"context"
	"fmt"

	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/application/service"
	"ops-assistant/internal/domain/entity"
	"ops-assistant/internal/infrastructure/prompts"
)

type Planner struct {
	structured *service.StructuredService
	tools      output.ToolRegistry
	logger     output.LoggerPort
}

func New(structured *service.StructuredService, tools output.ToolRegistry, logger output.LoggerPort) *Planner {
	return &Planner{
		structured: structured,
		tools:      tools,
		logger:     logger,
	}
}

func (p *Planner) CreatePlan(ctx context.Context, task string) (*entity.ExecutionPlan, error) {
	systemPrompt, err := prompts.GeneratePlannerPrompt(prompts.PlannerPromptTemplate, p.tools.Definitions())
	if err != nil {
		return nil, fmt.Errorf("build planner prompt: %w", err)
	}

	plan, err := p.structured.Plan(ctx, task, systemPrompt)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Plan created",
		"task_summary", plan.TaskSummary,
		"steps", len(plan.Steps),
	)
	return plan, nil
}
