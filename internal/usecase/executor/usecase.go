// Package executor runs an execution plan step by step: dependency
// gating, bounded retry per step, and aggregation of partial failure
// into an overall outcome.
package executor

import (
	"context"
	"fmt"

	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/domain/entity"
)

// maxRetries is the number of retries after the first attempt, so every
// step gets maxRetries+1 attempts. Retries are back-to-back, no backoff.
const maxRetries = 2

type Executor struct {
	tools  output.ToolRegistry
	logger output.LoggerPort
}

func New(tools output.ToolRegistry, logger output.LoggerPort) *Executor {
	return &Executor{
		tools:  tools,
		logger: logger,
	}
}

// Run executes every step in the plan's declared order. Step-level
// failures never abort the run: each declared step produces exactly one
// result, and the overall success flag is the AND across all of them.
func (e *Executor) Run(ctx context.Context, plan *entity.ExecutionPlan) *entity.ExecutionResult {
	result := entity.NewExecutionResult(plan)

	for _, step := range plan.Steps {
		if blocked := e.checkDependencies(result, step); blocked != nil {
			e.logger.Warn("Step skipped, dependency failed",
				"step", step.StepNumber,
				"tool", step.Tool.String(),
			)
			result.AddStepResult(*blocked)
			continue
		}

		result.AddStepResult(e.executeStep(ctx, step))
	}

	return result
}

// checkDependencies inspects the results already recorded in this run.
// Only a recorded *failed* dependency blocks a step; a dependency that
// has not executed yet (a forward or unknown reference) passes silently.
// That asymmetry is intentional and relied upon by plan producers.
func (e *Executor) checkDependencies(result *entity.ExecutionResult, step entity.Step) *entity.StepResult {
	for _, dep := range step.DependsOn {
		depResult := result.GetStepResult(dep)
		if depResult != nil && !depResult.Success {
			return &entity.StepResult{
				StepNumber: step.StepNumber,
				ToolName:   step.Tool,
				Success:    false,
				Error:      "Dependency step failed",
			}
		}
	}
	return nil
}

// executeStep resolves the tool and drives the bounded-attempt loop. A
// returned adapter error triggers a retry; an adapter-reported failure
// (Success=false without an error) passes through verbatim, unretried.
func (e *Executor) executeStep(ctx context.Context, step entity.Step) entity.StepResult {
	tool, ok := e.tools.Get(step.Tool)
	if !ok {
		return entity.StepResult{
			StepNumber: step.StepNumber,
			ToolName:   step.Tool,
			Success:    false,
			Error:      fmt.Sprintf("Tool '%s' not found", step.Tool),
		}
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		toolResult, err := tool.Execute(ctx, step.Parameters)
		if err != nil {
			lastErr = err
			e.logger.Warn("Tool attempt failed",
				"step", step.StepNumber,
				"tool", step.Tool.String(),
				"attempt", attempt+1,
				"error", err,
			)
			continue
		}

		return entity.StepResult{
			StepNumber: step.StepNumber,
			ToolName:   step.Tool,
			Success:    toolResult.Success,
			Data:       toolResult.Data,
			Error:      toolResult.Error,
		}
	}

	return entity.StepResult{
		StepNumber: step.StepNumber,
		ToolName:   step.Tool,
		Success:    false,
		Error:      fmt.Sprintf("Execution failed after %d attempts: %v", maxRetries+1, lastErr),
	}
}
