// Package pipeline chains planning, execution and verification for one
// task. Step-level failures stay inside the execution result; decode,
// validation and model failures abort the task and surface as errors.
package pipeline

import (
	"context"
	"fmt"

	"ops-assistant/internal/application/port/input"
	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/domain/entity"
	"ops-assistant/internal/usecase/executor"
	"ops-assistant/internal/usecase/planner"
	"ops-assistant/internal/usecase/verifier"
)

var _ input.TaskRunner = (*Pipeline)(nil)

type Pipeline struct {
	planner  *planner.Planner
	executor *executor.Executor
	verifier *verifier.Verifier
	logger   output.LoggerPort
}

func New(p *planner.Planner, e *executor.Executor, v *verifier.Verifier, logger output.LoggerPort) *Pipeline {
	return &Pipeline{
		planner:  p,
		executor: e,
		verifier: v,
		logger:   logger,
	}
}

func (pl *Pipeline) Run(ctx context.Context, task string) (*entity.TaskReport, error) {
	plan, err := pl.planner.CreatePlan(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	result := pl.executor.Run(ctx, plan)
	pl.logger.Info("Execution completed",
		"steps", len(result.StepResults),
		"success", result.Success,
	)

	response, err := pl.verifier.Run(ctx, result, task)
	if err != nil {
		return nil, fmt.Errorf("verification failed: %w", err)
	}

	return &entity.TaskReport{
		Response: response,
		Plan:     plan,
	}, nil
}
