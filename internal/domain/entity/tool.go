package entity

type ToolName string

const (
	ToolWeather ToolName = "weather"
	ToolNews    ToolName = "news"
	ToolGitHub  ToolName = "github"
)

func (t ToolName) String() string {
	return string(t)
}

// ToolResult is the standard outcome every adapter reports. Success,
// Data and Error pass through to the step result verbatim.
type ToolResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

type ToolDefinition struct {
	Name        ToolName
	Description string
	Parameters  map[string]interface{}
}
