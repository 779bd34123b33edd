// Package bloggenerate serves POST /api/blog/generate: an SEO blog package
// generated from a keyword and tone.
package bloggenerate

import (
	"context"

	"creator-api/internal/common/completion"
	"creator-api/internal/common/logger"
	"creator-api/internal/common/metrics"
)

type Service struct {
	config    *Config
	completer completion.Completer
	logger    logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	return &Service{
		config:    config,
		completer: deps.Completer,
		logger:    deps.Logger,
	}
}

// Execute runs prompt, completion and output check for a validated input.
func (s *Service) Execute(ctx context.Context, input *Input) (Output, error) {
	result, err := s.completer.Complete(ctx, completion.Request{
		System: completion.SystemInstruction,
		User:   BuildPrompt(input),
	})
	if err != nil {
		return nil, err
	}

	violations, err := completion.Conform(result, outputSchema, s.config.StrictOutput)
	if len(violations) > 0 {
		metrics.CompletionSchemaViolations.WithLabelValues(Endpoint).Inc()
		s.logger.Warn("Completion output does not match schema", map[string]interface{}{
			"userId":     input.UserID,
			"violations": violations,
			"strict":     s.config.StrictOutput,
		})
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Blog package generated", map[string]interface{}{
		"userId":  input.UserID,
		"outcome": result.Outcome.String(),
		"keys":    len(result.Object),
	})

	return Output(result.Object), nil
}
