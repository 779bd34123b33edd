package triagesort

import (
	"context"

	"creator-api/internal/common/completion"
	"creator-api/internal/common/logger"
	"creator-api/internal/common/notion"
	"creator-api/internal/models"
)

// Categories a text can be classified into.
const (
	CategoryTodo     = "TODO"
	CategoryIdea     = "IDEA"
	CategoryMeeting  = "MEETING"
	CategoryContact  = "CONTACT"
	CategoryBookmark = "BOOKMARK"
)

var Categories = []string{CategoryTodo, CategoryIdea, CategoryMeeting, CategoryContact, CategoryBookmark}

type Input struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

type Output struct {
	NotionPageURL string `json:"notionPageUrl"`
}

// IntegrationStore looks up a user's workspace link. A nil record with a nil
// error means the user has none.
type IntegrationStore interface {
	GetIntegration(ctx context.Context, userID string) (*models.UserIntegration, error)
}

type WorkspaceClient interface {
	CreatePage(ctx context.Context, accessToken string, req notion.CreatePageRequest) (*notion.Page, error)
}

type ServiceDependencies struct {
	Completer completion.Completer
	Store     IntegrationStore
	Workspace WorkspaceClient
	Logger    logger.Logger
}
