package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL + "/"})
}

func TestClient_CreatePage(t *testing.T) {
	var captured map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pages", r.URL.Path)
		assert.Equal(t, "Bearer secret_abc", r.Header.Get("Authorization"))
		assert.Equal(t, DefaultVersion, r.Header.Get("Notion-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"page","id":"page-1","url":"https://www.notion.so/Buy-milk-page1"}`))
	})

	page, err := client.CreatePage(context.Background(), "secret_abc", CreatePageRequest{
		Parent: DatabaseParent("db123"),
		Properties: map[string]Property{
			"Title": TitleProperty("Buy milk"),
			"Due":   DateProperty("2024-01-01"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "page-1", page.ID)
	assert.Equal(t, "https://www.notion.so/Buy-milk-page1", page.URL)

	assert.Equal(t, map[string]interface{}{"type": "database_id", "database_id": "db123"}, captured["parent"])
	props := captured["properties"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{
		"title": []interface{}{map[string]interface{}{"text": map[string]interface{}{"content": "Buy milk"}}},
	}, props["Title"])
	assert.Equal(t, map[string]interface{}{"date": map[string]interface{}{"start": "2024-01-01"}}, props["Due"])
}

func TestClient_CreatePage_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`))
	})

	page, err := client.CreatePage(context.Background(), "bad", CreatePageRequest{Parent: DatabaseParent("db123")})
	require.Error(t, err)
	assert.Nil(t, page)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "unauthorized", apiErr.Code)
	assert.Equal(t, "API token is invalid.", apiErr.Message)
}

func TestClient_CreatePage_NonJSONError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	})

	_, err := client.CreatePage(context.Background(), "secret_abc", CreatePageRequest{Parent: DatabaseParent("db123")})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestPropertyEncoding_OmitsUnsetFields(t *testing.T) {
	encoded, err := json.Marshal(map[string]Property{
		"Assignee": PeopleProperty("user-1"),
		"Tags":     MultiSelectProperty("home", "errand"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Assignee": {"people": [{"id": "user-1"}]},
		"Tags": {"multi_select": [{"name": "home"}, {"name": "errand"}]}
	}`, string(encoded))
}
