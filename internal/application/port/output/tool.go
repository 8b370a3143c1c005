package output

import (
	"context"

	"ops-assistant/internal/domain/entity"
)

// ToolPort is the capability contract the executor consumes: one named
// action over declared parameters. A returned error means the transport
// failed and the call may be retried; an adapter-level problem is
// reported inside the ToolResult instead.
type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, params map[string]interface{}) (*entity.ToolResult, error)
}

// ToolRegistry is built once at startup and read-only afterwards.
type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Definitions() []entity.ToolDefinition
}
