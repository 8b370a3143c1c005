package decode

import "strings"

// pass is one pure structural repair over a parsed JSON value. Passes
// reposition data the model placed in a recognized-but-wrong shape; they
// never invent semantic content.
type pass func(v interface{}) interface{}

// planPasses run in order on Plan-shaped targets. renamePlanKey appears
// twice: unwrapping a "response" envelope requires re-checking the inner
// object for a "plan" key.
var planPasses = []pass{
	wrapBareList,
	renamePlanKey,
	unwrapResponse,
	renamePlanKey,
	fillPlaceholders,
}

// cleanKeys strips whitespace and stray surrounding quotes from every
// map key, recursively. Some models emit keys like `"task_summary "`.
func cleanKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		cleaned := make(map[string]interface{}, len(val))
		for k, inner := range val {
			key := strings.TrimSpace(k)
			key = strings.Trim(key, `"'`)
			key = strings.TrimSpace(key)
			cleaned[key] = cleanKeys(inner)
		}
		return cleaned
	case []interface{}:
		cleaned := make([]interface{}, len(val))
		for i, inner := range val {
			cleaned[i] = cleanKeys(inner)
		}
		return cleaned
	default:
		return v
	}
}

// wrapBareList treats a top-level array as the step list and synthesizes
// the wrapping object with placeholder descriptive fields.
func wrapBareList(v interface{}) interface{} {
	list, ok := v.([]interface{})
	if !ok {
		return v
	}
	return map[string]interface{}{
		"task_summary":    "Task execution plan (auto-generated)",
		"steps":           list,
		"expected_output": "Final result of the steps",
	}
}

// renamePlanKey maps a "plan" key to "steps" when "steps" is absent.
func renamePlanKey(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	if _, hasSteps := m["steps"]; hasSteps {
		return m
	}
	if plan, hasPlan := m["plan"]; hasPlan {
		m["steps"] = plan
		delete(m, "plan")
	}
	return m
}

// unwrapResponse replaces the top-level object with a nested "response"
// object when "steps" is absent.
func unwrapResponse(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	if _, hasSteps := m["steps"]; hasSteps {
		return m
	}
	if inner, ok := m["response"].(map[string]interface{}); ok {
		return inner
	}
	return m
}

// fillPlaceholders supplies the optional descriptive fields so their
// absence alone never fails validation.
func fillPlaceholders(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	if _, ok := m["task_summary"]; !ok {
		m["task_summary"] = "Task execution plan"
	}
	if _, ok := m["expected_output"]; !ok {
		m["expected_output"] = "Execution results"
	}
	return m
}
