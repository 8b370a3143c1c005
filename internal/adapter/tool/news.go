package tool

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/domain/entity"
)

var _ output.ToolPort = (*NewsTool)(nil)

// NewsTool fetches headlines and article search results from
// newsapi.org.
type NewsTool struct {
	client  *http.Client
	apiKey  string
	baseURL string
	logger  output.LoggerPort
}

type NewsConfig struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
	Logger  output.LoggerPort
}

func NewNewsTool(cfg NewsConfig) *NewsTool {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://newsapi.org/v2"
	}
	if cfg.Client == nil {
		cfg.Client = NewHTTPClient()
	}
	return &NewsTool{
		client:  cfg.Client,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		logger:  cfg.Logger,
	}
}

func (t *NewsTool) Name() entity.ToolName { return entity.ToolNews }

func (t *NewsTool) Description() string {
	return "Get latest news headlines by topic, category, or search query"
}

func (t *NewsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"action": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"headlines", "search"},
				"description": "Action: 'headlines' for top headlines, 'search' for searching articles",
			},
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query (required for search, optional for headlines)",
			},
			"category": map[string]interface{}{
				"type": "string",
				"enum": []string{
					"business", "entertainment", "general", "health",
					"science", "sports", "technology",
				},
				"description": "News category (for headlines action)",
			},
			"country": map[string]interface{}{
				"type":        "string",
				"description": "2-letter country code (e.g., 'us', 'gb', 'in')",
				"default":     "us",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of articles to return",
				"default":     5,
			},
		},
		"required": []string{"action"},
	}
}

func (t *NewsTool) Execute(ctx context.Context, params map[string]interface{}) (*entity.ToolResult, error) {
	action := stringParam(params, "action", "")

	if action == "" {
		return &entity.ToolResult{Success: false, Error: "Missing required parameter: action"}, nil
	}
	if t.apiKey == "" {
		return &entity.ToolResult{Success: false, Error: "NEWS_API_KEY environment variable is not set"}, nil
	}

	switch action {
	case "headlines":
		return t.headlines(ctx, params)
	case "search":
		return t.search(ctx, params)
	default:
		return &entity.ToolResult{Success: false, Error: fmt.Sprintf("Unknown action: %s", action)}, nil
	}
}

func (t *NewsTool) headlines(ctx context.Context, params map[string]interface{}) (*entity.ToolResult, error) {
	query := url.Values{}
	query.Set("apiKey", t.apiKey)
	query.Set("country", stringParam(params, "country", "us"))
	query.Set("pageSize", strconv.Itoa(intParam(params, "limit", 5)))
	if category := stringParam(params, "category", ""); category != "" {
		query.Set("category", category)
	}
	if q := stringParam(params, "query", ""); q != "" {
		query.Set("q", q)
	}

	return t.fetchArticles(ctx, t.baseURL+"/top-headlines", query)
}

func (t *NewsTool) search(ctx context.Context, params map[string]interface{}) (*entity.ToolResult, error) {
	q := stringParam(params, "query", "")
	if q == "" {
		return &entity.ToolResult{Success: false, Error: "Search query is required for search action"}, nil
	}

	query := url.Values{}
	query.Set("apiKey", t.apiKey)
	query.Set("q", q)
	query.Set("sortBy", "publishedAt")
	query.Set("pageSize", strconv.Itoa(intParam(params, "limit", 5)))
	query.Set("language", "en")

	return t.fetchArticles(ctx, t.baseURL+"/everything", query)
}

func (t *NewsTool) fetchArticles(ctx context.Context, endpoint string, query url.Values) (*entity.ToolResult, error) {
	data, status, err := getJSON(ctx, t.client, endpoint, query, nil)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK || data["status"] != "ok" {
		msg := "Unknown error"
		if m, ok := data["message"].(string); ok && m != "" {
			msg = m
		}
		return &entity.ToolResult{Success: false, Error: msg}, nil
	}

	rawArticles, _ := data["articles"].([]interface{})
	articles := make([]map[string]interface{}, 0, len(rawArticles))
	for _, raw := range rawArticles {
		article, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		source := "Unknown"
		if s, ok := article["source"].(map[string]interface{}); ok {
			if name, ok := s["name"].(string); ok {
				source = name
			}
		}
		articles = append(articles, map[string]interface{}{
			"title":        stringParam(article, "title", "No title"),
			"source":       source,
			"description":  stringParam(article, "description", "No description"),
			"url":          stringParam(article, "url", ""),
			"published_at": stringParam(article, "publishedAt", ""),
		})
	}

	return &entity.ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"total_results": data["totalResults"],
			"articles":      articles,
		},
	}, nil
}
