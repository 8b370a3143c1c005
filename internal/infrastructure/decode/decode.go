// Package decode recovers typed objects from raw model output. Models
// nominally return JSON matching a requested schema but frequently wrap
// it in code fences, envelopes or misnamed keys; this package applies an
// ordered list of structural repairs and then validates field by field.
package decode

import (
	"encoding/json"
	"fmt"
	"strings"

	"ops-assistant/internal/domain/entity"
)

// Plan decodes raw model text into a validated ExecutionPlan.
func Plan(raw string) (*entity.ExecutionPlan, error) {
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	v = cleanKeys(v)
	for _, p := range planPasses {
		v = p(v)
	}
	return validatePlan(v)
}

// Verification decodes raw model text into a validated
// VerificationResult.
func Verification(raw string) (*entity.VerificationResult, error) {
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	v = cleanKeys(v)
	return validateVerification(v)
}

// parse strips code fences and parses the text into a generic value. A
// payload that parses to a string is tried once more: some providers
// double-encode the JSON body.
func parse(raw string) (interface{}, error) {
	text := stripFences(raw)

	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &DecodeError{Snippet: snippet(text), Err: err}
	}

	if s, ok := v.(string); ok {
		var inner interface{}
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			return inner, nil
		}
	}

	return v, nil
}

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func snippet(text string) string {
	if len(text) > snippetLen {
		return text[:snippetLen]
	}
	return text
}

func validatePlan(v interface{}) (*entity.ExecutionPlan, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, &ValidationError{Reason: "plan payload is not a JSON object", Value: v}
	}

	rawSteps, ok := m["steps"].([]interface{})
	if !ok {
		return nil, &ValidationError{Reason: "missing required field: steps", Value: m}
	}
	if len(rawSteps) == 0 {
		return nil, &ValidationError{Reason: "plan contains no steps", Value: m}
	}

	plan := &entity.ExecutionPlan{
		TaskSummary:    stringField(m, "task_summary"),
		ExpectedOutput: stringField(m, "expected_output"),
		Steps:          make([]entity.Step, 0, len(rawSteps)),
	}

	for i, rs := range rawSteps {
		sm, ok := rs.(map[string]interface{})
		if !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("step %d is not an object", i+1), Value: rs}
		}
		step, err := validateStep(sm, i)
		if err != nil {
			return nil, err
		}
		plan.Steps = append(plan.Steps, step)
	}

	return plan, nil
}

func validateStep(sm map[string]interface{}, idx int) (entity.Step, error) {
	number, ok := intField(sm, "step_number")
	if !ok {
		return entity.Step{}, &ValidationError{
			Reason: fmt.Sprintf("step %d: missing required field: step_number", idx+1),
			Value:  sm,
		}
	}

	tool := stringField(sm, "tool")
	if tool == "" {
		return entity.Step{}, &ValidationError{
			Reason: fmt.Sprintf("step %d: missing required field: tool", idx+1),
			Value:  sm,
		}
	}

	params, _ := sm["parameters"].(map[string]interface{})
	if params == nil {
		params = map[string]interface{}{}
	}

	var depends []int
	if rawDeps, ok := sm["depends_on"].([]interface{}); ok {
		for _, d := range rawDeps {
			n, ok := d.(float64)
			if !ok {
				return entity.Step{}, &ValidationError{
					Reason: fmt.Sprintf("step %d: depends_on contains a non-integer value", idx+1),
					Value:  sm,
				}
			}
			depends = append(depends, int(n))
		}
	}

	return entity.Step{
		StepNumber:  number,
		Tool:        entity.ToolName(tool),
		Parameters:  params,
		DependsOn:   depends,
		Description: stringField(sm, "description"),
	}, nil
}

func validateVerification(v interface{}) (*entity.VerificationResult, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, &ValidationError{Reason: "verification payload is not a JSON object", Value: v}
	}

	complete, ok := m["is_complete"].(bool)
	if !ok {
		return nil, &ValidationError{Reason: "missing required field: is_complete", Value: m}
	}

	score, ok := intField(m, "quality_score")
	if !ok {
		return nil, &ValidationError{Reason: "missing required field: quality_score", Value: m}
	}
	if score < 1 || score > 10 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("quality_score must be between 1 and 10, got %d", score),
			Value:  m,
		}
	}

	return &entity.VerificationResult{
		IsComplete:   complete,
		MissingData:  stringListField(m, "missing_data"),
		QualityScore: score,
		Suggestions:  stringListField(m, "suggestions"),
	}, nil
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]interface{}, key string) (int, bool) {
	n, ok := m[key].(float64)
	if !ok {
		return 0, false
	}
	return int(n), true
}

func stringListField(m map[string]interface{}, key string) []string {
	result := []string{}
	raw, ok := m[key].([]interface{})
	if !ok {
		return result
	}
	for _, item := range raw {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
