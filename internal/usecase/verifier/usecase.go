// Package verifier assesses an execution run with the model, derives
// the final status and composes the user-facing response.
package verifier

import (
	"context"
	"encoding/json"
	"fmt"

	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/application/service"
	"ops-assistant/internal/domain/entity"
	"ops-assistant/internal/infrastructure/prompts"
)

type Verifier struct {
	llm        output.LLMPort
	structured *service.StructuredService
	logger     output.LoggerPort
}

func New(llm output.LLMPort, structured *service.StructuredService, logger output.LoggerPort) *Verifier {
	return &Verifier{
		llm:        llm,
		structured: structured,
		logger:     logger,
	}
}

// Run verifies the execution result and builds the final response. A
// failed verification or summary call is fatal to the task: there is no
// valid assessment to continue with.
func (v *Verifier) Run(ctx context.Context, result *entity.ExecutionResult, task string) (*entity.FinalResponse, error) {
	verification, err := v.verify(ctx, result, task)
	if err != nil {
		return nil, err
	}

	v.logger.Info("Verification completed",
		"is_complete", verification.IsComplete,
		"quality_score", verification.QualityScore,
		"missing", len(verification.MissingData),
	)

	return v.composeResponse(ctx, result, task, verification)
}

func (v *Verifier) verify(ctx context.Context, result *entity.ExecutionResult, task string) (*entity.VerificationResult, error) {
	summary, err := json.MarshalIndent(result.Summary(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal execution summary: %w", err)
	}

	prompt := fmt.Sprintf(`Verify the following execution results:

Original Task: %s

Execution Results:
%s

Analyze completeness, identify missing data, and rate quality.`, task, summary)

	return v.structured.Verification(ctx, prompt, prompts.VerificationSystemPrompt)
}

func (v *Verifier) composeResponse(ctx context.Context, result *entity.ExecutionResult, task string, verification *entity.VerificationResult) (*entity.FinalResponse, error) {
	status := deriveStatus(result, verification)
	data, errs := collectOutcomes(result)

	summary, err := v.summarize(ctx, task, status, data, errs)
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	return &entity.FinalResponse{
		Task:    task,
		Status:  status,
		Summary: summary,
		Data:    data,
		Errors:  errs,
	}, nil
}

// deriveStatus: success needs both a fully successful run and a model
// verdict of complete; partial needs at least one successful step.
func deriveStatus(result *entity.ExecutionResult, verification *entity.VerificationResult) entity.TaskStatus {
	if result.Success && verification.IsComplete {
		return entity.StatusSuccess
	}
	for _, sr := range result.StepResults {
		if sr.Success {
			return entity.StatusPartial
		}
	}
	return entity.StatusFailed
}

// collectOutcomes keys each successful step's payload as
// step_<number>_<tool> and itemizes every failure.
func collectOutcomes(result *entity.ExecutionResult) (map[string]interface{}, []string) {
	data := map[string]interface{}{}
	errs := []string{}

	for _, sr := range result.StepResults {
		if sr.Success && sr.Data != nil {
			key := fmt.Sprintf("step_%d_%s", sr.StepNumber, sr.ToolName)
			data[key] = sr.Data
		} else if sr.Error != "" {
			errs = append(errs, fmt.Sprintf("Step %d: %s", sr.StepNumber, sr.Error))
		}
	}

	return data, errs
}

// summarize asks the model for a short natural-language wrap-up. The
// call is not retried; its failure propagates out of the pipeline.
func (v *Verifier) summarize(ctx context.Context, task string, status entity.TaskStatus, data map[string]interface{}, errs []string) (string, error) {
	dataJSON, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal collected data: %w", err)
	}

	prompt := fmt.Sprintf(`Summarize these results in 2-3 sentences:
Task: %s
Status: %s
Data collected: %s
Errors: %v`, task, status, dataJSON, errs)

	return v.llm.Generate(ctx, output.GenerateRequest{
		Prompt:       prompt,
		SystemPrompt: prompts.SummarySystemPrompt,
		Temperature:  0.0,
	})
}
