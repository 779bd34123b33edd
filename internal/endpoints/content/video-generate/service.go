// Package videogenerate serves POST /api/youtube/generate: titles, script,
// scene guides, description and tags for a short or long video.
package videogenerate

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

	s.logger.Info("Video package generated", map[string]interface{}{
		"userId":    input.UserID,
		"videoType": input.VideoType,
		"outcome":   result.Outcome.String(),
		"keys":      len(result.Object),
	})

	return Output(result.Object), nil
}
