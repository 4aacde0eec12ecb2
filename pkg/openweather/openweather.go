package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// newOpenWeatherImpl creates a new OpenWeather implementation
func newOpenWeatherImpl(cfg Config) *openWeatherImpl {
	return &openWeatherImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// Current fetches current conditions for a coordinate
func (w *openWeatherImpl) Current(ctx context.Context, lat, lon float64) (*Observation, error) {
	var resp weatherResponse
	if err := w.get(ctx, "/weather", lat, lon, &resp); err != nil {
		return nil, err
	}
	obs := toObservation(resp)
	return &obs, nil
}

// Forecast fetches the 3-hour step forecast for a coordinate
func (w *openWeatherImpl) Forecast(ctx context.Context, lat, lon float64) (*ForecastResult, error) {
	var resp forecastResponse
	if err := w.get(ctx, "/forecast", lat, lon, &resp); err != nil {
		return nil, err
	}

	steps := make([]Observation, len(resp.List))
	for i, entry := range resp.List {
		steps[i] = toObservation(entry)
	}
	return &ForecastResult{Steps: steps}, nil
}

func (w *openWeatherImpl) get(ctx context.Context, path string, lat, lon float64, out interface{}) error {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", w.apiKey)
	q.Set("units", "metric")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		w.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("openweather: failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("openweather: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("openweather: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openweather: failed to decode response: %w", err)
	}
	return nil
}

func toObservation(resp weatherResponse) Observation {
	obs := Observation{
		TempC:       resp.Main.Temp,
		HumidityPct: resp.Main.Humidity,
	}
	if len(resp.Weather) > 0 {
		obs.Condition = resp.Weather[0].Main
		obs.Description = resp.Weather[0].Description
	}
	return obs
}

func containsRain(s string) bool {
	return strings.Contains(strings.ToLower(s), "rain")
}
