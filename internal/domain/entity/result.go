package entity

// StepResult records the outcome of a single step: executed, retried or
// skipped, every declared step produces exactly one.
type StepResult struct {
	StepNumber int         `json:"step_number"`
	ToolName   ToolName    `json:"tool"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Error      string      `json:"error,omitempty"`
}

// ExecutionResult accumulates step results for one plan run. Success
// starts true and only ever downgrades: once a step fails it never
// recovers to true.
type ExecutionResult struct {
	Plan        *ExecutionPlan `json:"-"`
	StepResults []StepResult   `json:"steps"`
	Success     bool           `json:"success"`
}

func NewExecutionResult(plan *ExecutionPlan) *ExecutionResult {
	return &ExecutionResult{
		Plan:        plan,
		StepResults: make([]StepResult, 0, len(plan.Steps)),
		Success:     true,
	}
}

// AddStepResult appends a result and downgrades the overall flag on
// failure. Results are append-only.
func (r *ExecutionResult) AddStepResult(result StepResult) {
	r.StepResults = append(r.StepResults, result)
	if !result.Success {
		r.Success = false
	}
}

// GetStepResult returns the recorded result for a step number, or nil
// when that step has not been processed yet in this run.
func (r *ExecutionResult) GetStepResult(stepNumber int) *StepResult {
	for i := range r.StepResults {
		if r.StepResults[i].StepNumber == stepNumber {
			return &r.StepResults[i]
		}
	}
	return nil
}

// Summary returns the shape sent to the verifier model.
func (r *ExecutionResult) Summary() map[string]interface{} {
	steps := make([]map[string]interface{}, 0, len(r.StepResults))
	for _, sr := range r.StepResults {
		steps = append(steps, map[string]interface{}{
			"step_number": sr.StepNumber,
			"tool":        sr.ToolName.String(),
			"success":     sr.Success,
			"data":        sr.Data,
			"error":       sr.Error,
		})
	}
	return map[string]interface{}{
		"task_summary": r.Plan.TaskSummary,
		"success":      r.Success,
		"steps":        steps,
	}
}
