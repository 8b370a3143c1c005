package service

import (
	"context"
	"fmt"

	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/domain/entity"
	"ops-assistant/internal/infrastructure/decode"
)

// StructuredService turns a model call into a validated typed object.
// The model is asked for JSON, but the returned text goes through the
// decode package regardless, so malformed or wrapped output is repaired
// deterministically or rejected.
type StructuredService struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func NewStructuredService(llm output.LLMPort, logger output.LoggerPort) *StructuredService {
	return &StructuredService{llm: llm, logger: logger}
}

func (s *StructuredService) Plan(ctx context.Context, prompt, systemPrompt string) (*entity.ExecutionPlan, error) {
	raw, err := s.generate(ctx, prompt, systemPrompt)
	if err != nil {
		return nil, err
	}

	plan, err := decode.Plan(raw)
	if err != nil {
		s.logger.Error("Plan decoding failed", "error", err)
		return nil, err
	}
	return plan, nil
}

func (s *StructuredService) Verification(ctx context.Context, prompt, systemPrompt string) (*entity.VerificationResult, error) {
	raw, err := s.generate(ctx, prompt, systemPrompt)
	if err != nil {
		return nil, err
	}

	verification, err := decode.Verification(raw)
	if err != nil {
		s.logger.Error("Verification decoding failed", "error", err)
		return nil, err
	}
	return verification, nil
}

func (s *StructuredService) generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	raw, err := s.llm.Generate(ctx, output.GenerateRequest{
		Prompt:       prompt,
		SystemPrompt: systemPrompt,
		JSONOnly:     true,
		Temperature:  0.0,
	})
	if err != nil {
		return "", fmt.Errorf("structured generation failed: %w", err)
	}
	return raw, nil
}
