package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/application/service"
	"ops-assistant/internal/domain/entity"
	"ops-assistant/internal/infrastructure/decode"
	"ops-assistant/internal/infrastructure/logger"
)

type stubLLM struct {
	response string
	lastReq  output.GenerateRequest
}

func (s *stubLLM) Generate(ctx context.Context, req output.GenerateRequest) (string, error) {
	s.lastReq = req
	return s.response, nil
}

type stubTool struct{}

func (stubTool) Name() entity.ToolName { return entity.ToolWeather }
func (stubTool) Description() string   { return "Get current weather" }
func (stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (stubTool) Execute(ctx context.Context, params map[string]interface{}) (*entity.ToolResult, error) {
	return &entity.ToolResult{Success: true}, nil
}

func newPlanner(llm output.LLMPort) *Planner {
	log := logger.NewNop()
	registry := service.NewToolRegistry()
	registry.Register(stubTool{})
	return New(service.NewStructuredService(llm, log), registry, log)
}

func TestCreatePlan_DecodesModelOutput(t *testing.T) {
	llm := &stubLLM{response: `{
  "task_summary": "Weather in Oslo",
  "steps": [{"step_number": 1, "tool": "weather", "parameters": {"city": "Oslo"}}],
  "expected_output": "Current conditions"
}`}
	p := newPlanner(llm)

	plan, err := p.CreatePlan(context.Background(), "weather in Oslo?")
	require.NoError(t, err)

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, entity.ToolWeather, plan.Steps[0].Tool)
	assert.Equal(t, "Weather in Oslo", plan.TaskSummary)
}

func TestCreatePlan_PromptListsRegisteredTools(t *testing.T) {
	llm := &stubLLM{response: `{"steps": [{"step_number": 1, "tool": "weather"}]}`}
	p := newPlanner(llm)

	_, err := p.CreatePlan(context.Background(), "anything")
	require.NoError(t, err)

	assert.True(t, llm.lastReq.JSONOnly)
	assert.Equal(t, "anything", llm.lastReq.Prompt)
	assert.Contains(t, llm.lastReq.SystemPrompt, "weather")
	assert.Contains(t, llm.lastReq.SystemPrompt, "Get current weather")
	assert.Contains(t, llm.lastReq.SystemPrompt, `"type":"object"`)
}

func TestCreatePlan_UnparseableOutputIsFatal(t *testing.T) {
	llm := &stubLLM{response: "sorry, I can't help with that"}
	p := newPlanner(llm)

	_, err := p.CreatePlan(context.Background(), "task")
	require.Error(t, err)

	var decodeErr *decode.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}
