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

func weatherPayload() map[string]interface{} {
	return map[string]interface{}{
		"location": map[string]interface{}{
			"name":    "Oslo",
			"country": "Norway",
		},
		"current": map[string]interface{}{
			"temp_c":      12.5,
			"temp_f":      54.5,
			"feelslike_c": 11.0,
			"feelslike_f": 51.8,
			"humidity":    80,
			"wind_kph":    15.0,
			"wind_mph":    9.3,
			"vis_km":      10.0,
			"vis_miles":   6.0,
			"condition":   map[string]interface{}{"text": "Partly cloudy"},
		},
	}
}

func weatherServer(t *testing.T, status int, payload map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWeatherExecute_MetricRemapping(t *testing.T) {
	srv := weatherServer(t, http.StatusOK, weatherPayload())
	tool := NewWeatherTool(WeatherConfig{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"city": "Oslo"})
	require.NoError(t, err)
	require.True(t, result.Success)

	data := result.Data.(map[string]interface{})
	assert.Equal(t, "Oslo", data["city"])
	assert.Equal(t, "Norway", data["country"])
	assert.Equal(t, "12.5°C", data["temperature"])
	assert.Equal(t, "11°C", data["feels_like"])
	assert.Equal(t, "80%", data["humidity"])
	assert.Equal(t, "Partly cloudy", data["conditions"])
	assert.Equal(t, "15 km/h", data["wind_speed"])
	assert.Equal(t, "10 km", data["visibility"])
}

func TestWeatherExecute_ImperialUnits(t *testing.T) {
	srv := weatherServer(t, http.StatusOK, weatherPayload())
	tool := NewWeatherTool(WeatherConfig{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()})

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"city":  "Oslo",
		"units": "imperial",
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	data := result.Data.(map[string]interface{})
	assert.Equal(t, "54.5°F", data["temperature"])
	assert.Equal(t, "9.3 mph", data["wind_speed"])
	assert.Equal(t, "6 miles", data["visibility"])
}

func TestWeatherExecute_MissingCity(t *testing.T) {
	tool := NewWeatherTool(WeatherConfig{APIKey: "test-key"})

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Missing required parameter: city", result.Error)
}

func TestWeatherExecute_MissingAPIKey(t *testing.T) {
	tool := NewWeatherTool(WeatherConfig{})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"city": "Oslo"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "WEATHER_API_KEY environment variable is not set", result.Error)
}

func TestWeatherExecute_CityNotFound(t *testing.T) {
	srv := weatherServer(t, http.StatusBadRequest, map[string]interface{}{
		"error": map[string]interface{}{"message": "No matching location found."},
	})
	tool := NewWeatherTool(WeatherConfig{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"city": "Atlantis"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "No matching location found.", result.Error)
}

func TestWeatherExecute_InvalidKey(t *testing.T) {
	srv := weatherServer(t, http.StatusUnauthorized, map[string]interface{}{})
	tool := NewWeatherTool(WeatherConfig{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"city": "Oslo"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid API key. Please check your WEATHER_API_KEY", result.Error)
}

func TestWeatherExecute_TransportErrorIsReturned(t *testing.T) {
	srv := weatherServer(t, http.StatusOK, weatherPayload())
	srv.Close()
	tool := NewWeatherTool(WeatherConfig{APIKey: "test-key", BaseURL: srv.URL})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"city": "Oslo"})
	require.Error(t, err)
	assert.Nil(t, result)
}
