package tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsExecute_HeadlinesRemapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "technology", r.URL.Query().Get("category"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       "ok",
			"totalResults": 1,
			"articles": []interface{}{
				map[string]interface{}{
					"title":       "Go 1.25 released",
					"source":      map[string]interface{}{"name": "The Go Blog"},
					"description": "Release notes",
					"url":         "https://go.dev/blog",
					"publishedAt": "2026-08-20T10:00:00Z",
				},
			},
		})
	}))
	defer srv.Close()

	tool := NewNewsTool(NewsConfig{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()})
	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"action":   "headlines",
		"category": "technology",
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	data := result.Data.(map[string]interface{})
	articles := data["articles"].([]map[string]interface{})
	require.Len(t, articles, 1)
	assert.Equal(t, "Go 1.25 released", articles[0]["title"])
	assert.Equal(t, "The Go Blog", articles[0]["source"])
}

func TestNewsExecute_SearchRequiresQuery(t *testing.T) {
	tool := NewNewsTool(NewsConfig{APIKey: "test-key"})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"action": "search"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Search query is required for search action", result.Error)
}

func TestNewsExecute_MissingAPIKey(t *testing.T) {
	tool := NewNewsTool(NewsConfig{})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"action": "headlines"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "NEWS_API_KEY environment variable is not set", result.Error)
}

func TestNewsExecute_APIErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"message": "Your API key is invalid or incorrect.",
		})
	}))
	defer srv.Close()

	tool := NewNewsTool(NewsConfig{APIKey: "bad-key", BaseURL: srv.URL, Client: srv.Client()})
	result, err := tool.Execute(context.Background(), map[string]interface{}{"action": "headlines"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Your API key is invalid or incorrect.", result.Error)
}
