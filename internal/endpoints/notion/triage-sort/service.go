// Package triagesort serves POST /api/notion/sort: free text is classified by
// the completion service and filed as a page in the user's mapped Notion database.
package triagesort

import (
	"context"

	"creator-api/internal/common/completion"
	"creator-api/internal/common/errors"
	"creator-api/internal/common/logger"
	"creator-api/internal/common/metrics"
	"creator-api/internal/common/notion"
)

type Service struct {
	config    *Config
	completer completion.Completer
	store     IntegrationStore
	workspace WorkspaceClient
	logger    logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	return &Service{
		config:    config,
		completer: deps.Completer,
		store:     deps.Store,
		workspace: deps.Workspace,
		logger:    deps.Logger,
	}
}

// Execute looks up the user's integration, classifies the text and creates the page.
// The integration is checked first so an unlinked user costs no completion call.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	integration, err := s.store.GetIntegration(ctx, input.UserID)
	if err != nil {
		return nil, errors.NewIntegrationLookupFailedError(err)
	}
	if !integration.Linked() {
		return nil, errors.NewIntegrationNotLinkedError(input.UserID)
	}

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

	category, _ := result.Object["category"].(string)
	databaseID, ok := integration.DatabaseFor(category)
	if !ok {
		return nil, errors.NewUnmappedCategoryError(category)
	}

	props, _ := result.Object["properties"].(map[string]interface{})
	page, err := s.workspace.CreatePage(ctx, integration.NotionToken, notion.CreatePageRequest{
		Parent:     notion.DatabaseParent(databaseID),
		Properties: BuildProperties(props),
	})
	if err != nil {
		return nil, errors.NewWorkspaceServiceError(err)
	}

	metrics.WorkspacePagesCreated.WithLabelValues(category).Inc()
	s.logger.Info("Triage page created", map[string]interface{}{
		"userId":   input.UserID,
		"category": category,
		"pageId":   page.ID,
	})

	return &Output{NotionPageURL: page.URL}, nil
}
