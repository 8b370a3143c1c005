package entity

// Step is one declared tool invocation inside a plan. Steps are created
// once by the plan producer and never mutated during execution.
type Step struct {
	StepNumber  int                    `json:"step_number"`
	Tool        ToolName               `json:"tool"`
	Parameters  map[string]interface{} `json:"parameters"`
	DependsOn   []int                  `json:"depends_on"`
	Description string                 `json:"description"`
}

// ExecutionPlan is an ordered decomposition of a task into tool calls.
// The declared step order is authoritative: the executor walks it as
// given and does not reorder by the dependency graph.
type ExecutionPlan struct {
	TaskSummary    string `json:"task_summary"`
	Steps          []Step `json:"steps"`
	ExpectedOutput string `json:"expected_output"`
}
