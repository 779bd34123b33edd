package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: creator-api
apis:
  openai:
    api_key: sk-test
database:
  postgres:
    host: localhost
    database: creator
    user: creator
endpoints:
  triage-sort:
    enabled: true
    strict_output: true
  video-generate:
    enabled: false
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "creator-api", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, DefaultOpenAIModel, cfg.APIs.OpenAI.Model)
	assert.Equal(t, DefaultNotionBaseURL, cfg.APIs.Notion.BaseURL)
	assert.Equal(t, DefaultNotionVersion, cfg.APIs.Notion.Version)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.True(t, GetEndpointConfig(cfg, "triage-sort").StrictOutput)
	assert.False(t, GetEndpointConfig(cfg, "video-generate").Enabled)
	assert.True(t, GetEndpointConfig(cfg, "blog-generate").Enabled, "unlisted endpoints default to enabled")
}

func TestLoadFromFile_EnvExpansionAndOverride(t *testing.T) {
	t.Setenv("TEST_OPENAI_KEY", "sk-from-env")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/creator?sslmode=require")

	path := writeConfig(t, `
apis:
  openai:
    api_key: ${TEST_OPENAI_KEY}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.APIs.OpenAI.APIKey)
	assert.Equal(t, "postgres://u:p@db:5432/creator?sslmode=require", cfg.Database.Postgres.GetDSN())
}

func TestLoadFromFile_UnsetPlaceholderIsEmpty(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	path := writeConfig(t, `
apis:
  openai:
    api_key: sk-test
database:
  postgres:
    url: ${CREATOR_TEST_UNSET_URL}
    host: db
    database: creator
    user: creator
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Database.Postgres.URL)
	assert.Contains(t, cfg.Database.Postgres.GetDSN(), "host=db")
}

func TestLoadFromFile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr string
	}{
		{
			name: "missing openai key",
			content: `
database:
  postgres:
    host: localhost
    database: creator
    user: creator
`,
			expectedErr: "apis.openai.api_key is required",
		},
		{
			name: "missing postgres host",
			content: `
apis:
  openai:
    api_key: sk-test
`,
			expectedErr: "database.postgres.host or database.postgres.url is required",
		},
		{
			name: "missing postgres user",
			content: `
apis:
  openai:
    api_key: sk-test
database:
  postgres:
    host: localhost
    database: creator
`,
			expectedErr: "database.postgres.user is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", "")
			t.Setenv("DATABASE_URL", "")
			t.Setenv("DB_USER", "")

			_, err := LoadFromFile(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestPostgresConfig_GetDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db",
		Port:     5432,
		User:     "creator",
		Password: "secret",
		Database: "creator",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=creator password=secret dbname=creator sslmode=disable", cfg.GetDSN())
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}
