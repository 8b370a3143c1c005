package input

import (
	"context"

	"ops-assistant/internal/domain/entity"
)

// TaskRunner drives one task through planning, execution and
// verification. A decode or model failure during planning or
// verification is fatal to the whole task and surfaces as the error.
type TaskRunner interface {
	Run(ctx context.Context, task string) (*entity.TaskReport, error)
}
