package entity

type TaskStatus string

const (
	StatusSuccess TaskStatus = "success"
	StatusPartial TaskStatus = "partial"
	StatusFailed  TaskStatus = "failed"
)

// VerificationResult is the model's assessment of an execution run.
type VerificationResult struct {
	IsComplete   bool     `json:"is_complete"`
	MissingData  []string `json:"missing_data"`
	QualityScore int      `json:"quality_score"`
	Suggestions  []string `json:"suggestions"`
}

// FinalResponse is the user-facing outcome, derived deterministically
// from the execution result and the verification.
type FinalResponse struct {
	Task    string                 `json:"task"`
	Status  TaskStatus             `json:"status"`
	Summary string                 `json:"summary"`
	Data    map[string]interface{} `json:"data"`
	Errors  []string               `json:"errors"`
}
