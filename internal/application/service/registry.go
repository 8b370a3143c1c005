package service

import (
	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

// ToolRegistryImpl maps tool names to adapters. It is populated once in
// the DI container before any task runs and is read-only afterwards, so
// it is safe to share across concurrent tasks without locking.
type ToolRegistryImpl struct {
	tools map[entity.ToolName]output.ToolPort
	order []entity.ToolName
}

func NewToolRegistry() *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools: make(map[entity.ToolName]output.ToolPort),
	}
}

func (r *ToolRegistryImpl) Register(tool output.ToolPort) {
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *ToolRegistryImpl) All() []output.ToolPort {
	result := make([]output.ToolPort, 0, len(r.tools))
	for _, name := range r.order {
		result = append(result, r.tools[name])
	}
	return result
}

// Definitions returns the tool contracts in registration order, for the
// planner prompt and the /tools endpoint.
func (r *ToolRegistryImpl) Definitions() []entity.ToolDefinition {
	result := make([]entity.ToolDefinition, 0, len(r.tools))
	for _, name := range r.order {
		tool := r.tools[name]
		result = append(result, entity.ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return result
}
