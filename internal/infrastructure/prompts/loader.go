package prompts

import (
	_ "embed"
)

//go:embed planner.txt
var PlannerPromptTemplate string

//go:embed verification.txt
var VerificationSystemPrompt string

//go:embed summary.txt
var SummarySystemPrompt string
