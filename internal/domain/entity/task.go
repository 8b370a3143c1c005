package entity

// Task is one natural-language request moving through the pipeline.
type Task struct {
	ID          string
	Description string
}

// TaskReport pairs the user-facing response with the plan that produced
// it, for echoing back to the caller.
type TaskReport struct {
	Response *FinalResponse
	Plan     *ExecutionPlan
}
