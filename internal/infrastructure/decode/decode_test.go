package decode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops-assistant/internal/domain/entity"
)

func TestPlan_WellFormed(t *testing.T) {
	raw := `{
  "task_summary": "Get SF weather",
  "steps": [
    {
      "step_number": 1,
      "tool": "weather",
      "parameters": {"city": "San Francisco"},
      "depends_on": [],
      "description": "Fetch current weather"
    }
  ],
  "expected_output": "Weather report"
}`

	plan, err := Plan(raw)
	require.NoError(t, err)

	assert.Equal(t, "Get SF weather", plan.TaskSummary)
	assert.Equal(t, "Weather report", plan.ExpectedOutput)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, 1, plan.Steps[0].StepNumber)
	assert.Equal(t, entity.ToolWeather, plan.Steps[0].Tool)
	assert.Equal(t, "San Francisco", plan.Steps[0].Parameters["city"])
}

func TestPlan_CodeFences(t *testing.T) {
	raw := "```json\n{\"steps\": [{\"step_number\": 1, \"tool\": \"news\"}]}\n```"

	plan, err := Plan(raw)
	require.NoError(t, err)

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, entity.ToolNews, plan.Steps[0].Tool)
	assert.Equal(t, "Task execution plan", plan.TaskSummary)
	assert.Equal(t, "Execution results", plan.ExpectedOutput)
}

func TestPlan_BareList(t *testing.T) {
	raw := `[{"step_number": 1, "tool": "weather", "parameters": {"city": "London"}}]`

	plan, err := Plan(raw)
	require.NoError(t, err)

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "Task execution plan (auto-generated)", plan.TaskSummary)
	assert.Equal(t, "Final result of the steps", plan.ExpectedOutput)
}

func TestPlan_PlanKeyRenamed(t *testing.T) {
	raw := `{"plan": [{"step_number": 1, "tool": "github", "parameters": {"action": "search", "query": "go"}}]}`

	plan, err := Plan(raw)
	require.NoError(t, err)

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, entity.ToolGitHub, plan.Steps[0].Tool)
}

func TestPlan_ResponseWrapperUnwrapped(t *testing.T) {
	raw := `{"response": {"steps": [{"step_number": 1, "tool": "news"}], "task_summary": "X"}}`

	plan, err := Plan(raw)
	require.NoError(t, err)

	assert.Equal(t, "X", plan.TaskSummary)
	require.Len(t, plan.Steps, 1)
}

func TestPlan_ResponseWrapperWithPlanKey(t *testing.T) {
	raw := `{"response": {"plan": [{"step_number": 1, "tool": "news"}]}}`

	plan, err := Plan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
}

func TestPlan_DirtyKeys(t *testing.T) {
	raw := `{"\"task_summary \"": "Summary", "steps": [{" step_number": 1, "'tool'": "weather"}]}`

	plan, err := Plan(raw)
	require.NoError(t, err)

	assert.Equal(t, "Summary", plan.TaskSummary)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, 1, plan.Steps[0].StepNumber)
	assert.Equal(t, entity.ToolWeather, plan.Steps[0].Tool)
}

func TestPlan_DoubleEncoded(t *testing.T) {
	raw := `"{\"steps\": [{\"step_number\": 1, \"tool\": \"weather\"}]}"`

	plan, err := Plan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
}

func TestPlan_NotJSON(t *testing.T) {
	longGarbage := "I cannot produce a plan for this task because " + strings.Repeat("reasons ", 30)

	_, err := Plan(longGarbage)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Len(t, decodeErr.Snippet, 100)
	assert.True(t, strings.HasPrefix(longGarbage, decodeErr.Snippet))
}

func TestPlan_MissingSteps(t *testing.T) {
	_, err := Plan(`{"task_summary": "no steps here"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Reason, "steps")
}

func TestPlan_EmptySteps(t *testing.T) {
	_, err := Plan(`{"steps": []}`)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Reason, "no steps")
}

func TestPlan_StepMissingTool(t *testing.T) {
	_, err := Plan(`{"steps": [{"step_number": 1}]}`)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Reason, "tool")
}

func TestVerification_WellFormed(t *testing.T) {
	raw := `{
  "is_complete": true,
  "missing_data": [],
  "quality_score": 8,
  "suggestions": ["add sources"]
}`

	v, err := Verification(raw)
	require.NoError(t, err)

	assert.True(t, v.IsComplete)
	assert.Equal(t, 8, v.QualityScore)
	assert.Empty(t, v.MissingData)
	assert.Equal(t, []string{"add sources"}, v.Suggestions)
}

func TestVerification_ListFieldsDefaultEmpty(t *testing.T) {
	v, err := Verification(`{"is_complete": false, "quality_score": 3}`)
	require.NoError(t, err)

	assert.NotNil(t, v.MissingData)
	assert.NotNil(t, v.Suggestions)
	assert.Empty(t, v.MissingData)
}

func TestVerification_QualityScoreBounds(t *testing.T) {
	for _, score := range []string{"0", "11", "-1"} {
		_, err := Verification(`{"is_complete": true, "quality_score": ` + score + `}`)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr), "score %s should fail validation", score)
		assert.Contains(t, validationErr.Reason, "quality_score")
	}
}

func TestVerification_MissingIsComplete(t *testing.T) {
	_, err := Verification(`{"quality_score": 5}`)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Reason, "is_complete")
}
