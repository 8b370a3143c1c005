// Package tool contains the REST tool adapters the executor invokes.
// Each adapter is one HTTP GET plus field remapping. A returned error
// means the transport failed and the executor may retry; API-level and
// parameter problems are reported inside the ToolResult instead.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const requestTimeout = 30 * time.Second

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// stringParam reads an optional string parameter with a fallback.
// Plan parameters arrive as generic JSON values.
func stringParam(params map[string]interface{}, key, fallback string) string {
	if s, ok := params[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// intParam tolerates both JSON numbers and integer-valued floats.
func intParam(params map[string]interface{}, key string, fallback int) int {
	switch n := params[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return fallback
	}
}

// getJSON performs one GET and decodes the body. The decoded payload
// and status code come back even for non-2xx responses so adapters can
// map API errors to reported failures.
func getJSON(ctx context.Context, client *http.Client, rawURL string, query url.Values, headers http.Header) (map[string]interface{}, int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, 0, fmt.Errorf("parse url: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	for k, vals := range headers {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response body: %w", err)
	}

	var data map[string]interface{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, resp.StatusCode, fmt.Errorf("decode response body: %w", err)
		}
	}

	return data, resp.StatusCode, nil
}
