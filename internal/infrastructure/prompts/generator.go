package prompts

import (
	"bytes"
	"encoding/json"
	"text/template"

	"ops-assistant/internal/domain/entity"
)

type ToolInfo struct {
	Name        string
	Description string
	Parameters  string
}

type PlannerPromptData struct {
	Tools []ToolInfo
}

// GeneratePlannerPrompt renders the planner system prompt with the
// registered tool contracts, so the model only plans over tools that
// actually exist.
func GeneratePlannerPrompt(baseTemplate string, definitions []entity.ToolDefinition) (string, error) {
	tools := make([]ToolInfo, 0, len(definitions))

	for _, def := range definitions {
		schema, err := json.Marshal(def.Parameters)
		if err != nil {
			return "", err
		}
		tools = append(tools, ToolInfo{
			Name:        def.Name.String(),
			Description: def.Description,
			Parameters:  string(schema),
		})
	}

	tmpl, err := template.New("planner").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, PlannerPromptData{Tools: tools}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
