package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"creator-api/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const integrationsTable = "user_integrations"

// IntegrationStore reads per-user workspace settings. Every call hits the
// database; mappings may change between requests.
type IntegrationStore struct {
	db *sql.DB
}

func NewIntegrationStore(db *sql.DB) *IntegrationStore {
	return &IntegrationStore{db: db}
}

// GetIntegration returns the user's integration record, or (nil, nil) when the
// user has none.
func (s *IntegrationStore) GetIntegration(ctx context.Context, userID string) (*models.UserIntegration, error) {
	query, args, err := sq.Select("notion_token", "notion_db_map").
		From(integrationsTable).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build integration query: %w", err)
	}

	var (
		token sql.NullString
		dbMap []byte
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token, &dbMap)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query integration: %w", err)
	}

	mapping, err := decodeDBMap(dbMap)
	if err != nil {
		return nil, fmt.Errorf("failed to decode notion_db_map for user %s: %w", userID, err)
	}

	return &models.UserIntegration{
		UserID:      userID,
		NotionToken: token.String,
		NotionDBMap: mapping,
	}, nil
}

// decodeDBMap reads the JSONB mapping, keeping only string-valued entries.
func decodeDBMap(raw []byte) (map[string]string, error) {
	mapping := map[string]string{}
	if len(raw) == 0 {
		return mapping, nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	for category, v := range decoded {
		if id, ok := v.(string); ok {
			mapping[category] = id
		}
	}
	return mapping, nil
}
