package output

import "context"

// GenerateRequest is a single-turn generation call. JSONOnly asks the
// provider for a JSON-restricted response where supported; the decoder
// still treats the returned text as untrusted.
type GenerateRequest struct {
	Prompt       string
	SystemPrompt string
	JSONOnly     bool
	Temperature  float32
}

type LLMPort interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
