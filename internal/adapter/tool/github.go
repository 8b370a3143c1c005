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

var _ output.ToolPort = (*GitHubTool)(nil)

// GitHubTool searches repositories and fetches repository details from
// the GitHub REST API. A token is optional; unauthenticated requests
// just get lower rate limits.
type GitHubTool struct {
	client  *http.Client
	token   string
	baseURL string
	logger  output.LoggerPort
}

type GitHubConfig struct {
	Token   string
	BaseURL string
	Client  *http.Client
	Logger  output.LoggerPort
}

func NewGitHubTool(cfg GitHubConfig) *GitHubTool {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.github.com"
	}
	if cfg.Client == nil {
		cfg.Client = NewHTTPClient()
	}
	return &GitHubTool{
		client:  cfg.Client,
		token:   cfg.Token,
		baseURL: cfg.BaseURL,
		logger:  cfg.Logger,
	}
}

func (t *GitHubTool) Name() entity.ToolName { return entity.ToolGitHub }

func (t *GitHubTool) Description() string {
	return "Search GitHub repositories, get repository information including stars, description, and language"
}

func (t *GitHubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"action": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"search", "get_repo"},
				"description": "Action to perform: 'search' for searching repos, 'get_repo' for getting specific repo info",
			},
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query (for search action) or 'owner/repo' (for get_repo action)",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results to return (default: 5)",
				"default":     5,
			},
		},
		"required": []string{"action", "query"},
	}
}

func (t *GitHubTool) Execute(ctx context.Context, params map[string]interface{}) (*entity.ToolResult, error) {
	action := stringParam(params, "action", "")
	query := stringParam(params, "query", "")

	if action == "" || query == "" {
		return &entity.ToolResult{Success: false, Error: "Missing required parameters: action and query"}, nil
	}

	switch action {
	case "search":
		return t.searchRepos(ctx, query, intParam(params, "limit", 5))
	case "get_repo":
		return t.getRepo(ctx, query)
	default:
		return &entity.ToolResult{Success: false, Error: fmt.Sprintf("Unknown action: %s", action)}, nil
	}
}

func (t *GitHubTool) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/vnd.github.v3+json")
	if t.token != "" {
		h.Set("Authorization", "token "+t.token)
	}
	return h
}

func (t *GitHubTool) searchRepos(ctx context.Context, q string, limit int) (*entity.ToolResult, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("sort", "stars")
	query.Set("order", "desc")
	query.Set("per_page", strconv.Itoa(limit))

	data, status, err := getJSON(ctx, t.client, t.baseURL+"/search/repositories", query, t.headers())
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return &entity.ToolResult{Success: false, Error: fmt.Sprintf("GitHub API HTTP error: %d", status)}, nil
	}

	rawItems, _ := data["items"].([]interface{})
	if len(rawItems) > limit {
		rawItems = rawItems[:limit]
	}
	repos := make([]map[string]interface{}, 0, len(rawItems))
	for _, raw := range rawItems {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		repos = append(repos, map[string]interface{}{
			"name":        item["full_name"],
			"description": stringParam(item, "description", "No description"),
			"stars":       item["stargazers_count"],
			"language":    stringParam(item, "language", "Unknown"),
			"url":         item["html_url"],
		})
	}

	return &entity.ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"total_count":  data["total_count"],
			"repositories": repos,
		},
	}, nil
}

func (t *GitHubTool) getRepo(ctx context.Context, repoPath string) (*entity.ToolResult, error) {
	data, status, err := getJSON(ctx, t.client, t.baseURL+"/repos/"+repoPath, url.Values{}, t.headers())
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return &entity.ToolResult{Success: false, Error: fmt.Sprintf("Repository '%s' not found", repoPath)}, nil
	}
	if status != http.StatusOK {
		return &entity.ToolResult{Success: false, Error: fmt.Sprintf("GitHub API HTTP error: %d", status)}, nil
	}

	return &entity.ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"name":        data["full_name"],
			"description": stringParam(data, "description", "No description"),
			"stars":       data["stargazers_count"],
			"forks":       data["forks_count"],
			"language":    stringParam(data, "language", "Unknown"),
			"open_issues": data["open_issues_count"],
			"created_at":  data["created_at"],
			"updated_at":  data["updated_at"],
			"url":         data["html_url"],
			"topics":      data["topics"],
		},
	}, nil
}
