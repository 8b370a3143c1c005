package tool

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ops-assistant/internal/application/port/output"
	"ops-assistant/internal/domain/entity"
)

var _ output.ToolPort = (*WeatherTool)(nil)

// WeatherTool fetches current conditions from weatherapi.com.
type WeatherTool struct {
	client  *http.Client
	apiKey  string
	baseURL string
	logger  output.LoggerPort
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
	Logger  output.LoggerPort
}

func NewWeatherTool(cfg WeatherConfig) *WeatherTool {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://api.weatherapi.com/v1"
	}
	if cfg.Client == nil {
		cfg.Client = NewHTTPClient()
	}
	return &WeatherTool{
		client:  cfg.Client,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		logger:  cfg.Logger,
	}
}

func (t *WeatherTool) Name() entity.ToolName { return entity.ToolWeather }

func (t *WeatherTool) Description() string {
	return "Get current weather information for a city including temperature, humidity, and conditions"
}

func (t *WeatherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": "City name to get weather for (e.g., 'London', 'New York')",
			},
			"units": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"metric", "imperial"},
				"description": "Temperature units: 'metric' (Celsius) or 'imperial' (Fahrenheit)",
				"default":     "metric",
			},
		},
		"required": []string{"city"},
	}
}

func (t *WeatherTool) Execute(ctx context.Context, params map[string]interface{}) (*entity.ToolResult, error) {
	city := stringParam(params, "city", "")
	units := stringParam(params, "units", "metric")

	if city == "" {
		return &entity.ToolResult{Success: false, Error: "Missing required parameter: city"}, nil
	}
	if t.apiKey == "" {
		return &entity.ToolResult{Success: false, Error: "WEATHER_API_KEY environment variable is not set"}, nil
	}

	query := url.Values{}
	query.Set("key", t.apiKey)
	query.Set("q", city)
	query.Set("aqi", "no")

	data, status, err := getJSON(ctx, t.client, t.baseURL+"/current.json", query, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusBadRequest:
		msg := fmt.Sprintf("City '%s' not found", city)
		if apiErr, ok := data["error"].(map[string]interface{}); ok {
			if m, ok := apiErr["message"].(string); ok && m != "" {
				msg = m
			}
		}
		return &entity.ToolResult{Success: false, Error: msg}, nil
	case status == http.StatusUnauthorized:
		return &entity.ToolResult{Success: false, Error: "Invalid API key. Please check your WEATHER_API_KEY"}, nil
	case status != http.StatusOK:
		return &entity.ToolResult{Success: false, Error: fmt.Sprintf("Weather API HTTP error: %d", status)}, nil
	}

	location, _ := data["location"].(map[string]interface{})
	current, _ := data["current"].(map[string]interface{})
	if location == nil || current == nil {
		return &entity.ToolResult{Success: false, Error: "Weather API returned an unexpected payload"}, nil
	}

	tempUnit, speedUnit := "°C", "km/h"
	temp, feels, wind := current["temp_c"], current["feelslike_c"], current["wind_kph"]
	visibility := fmt.Sprintf("%v km", current["vis_km"])
	if units == "imperial" {
		tempUnit, speedUnit = "°F", "mph"
		temp, feels, wind = current["temp_f"], current["feelslike_f"], current["wind_mph"]
		visibility = fmt.Sprintf("%v miles", current["vis_miles"])
	}

	conditions := ""
	if cond, ok := current["condition"].(map[string]interface{}); ok {
		conditions, _ = cond["text"].(string)
	}

	return &entity.ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"city":        location["name"],
			"country":     location["country"],
			"temperature": fmt.Sprintf("%v%s", temp, tempUnit),
			"feels_like":  fmt.Sprintf("%v%s", feels, tempUnit),
			"humidity":    fmt.Sprintf("%v%%", current["humidity"]),
			"conditions":  conditions,
			"wind_speed":  fmt.Sprintf("%v %s", wind, speedUnit),
			"visibility":  visibility,
		},
	}, nil
}
