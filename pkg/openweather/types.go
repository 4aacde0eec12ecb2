package openweather

import (
	"fmt"
	"net/http"
)

// Config holds OpenWeather client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openweather: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// openWeatherImpl is the internal implementation of IOpenWeather
type openWeatherImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Observation is a single weather reading, current or forecast step.
type Observation struct {
	TempC       float64
	HumidityPct float64
	Condition   string
	Description string
}

// ForecastResult holds the forecast steps in chronological order.
type ForecastResult struct {
	Steps []Observation
}

// Summary aggregates a forecast window for prompt building.
type Summary struct {
	AvgTempC       float64
	AvgHumidityPct float64
	RainExpected   bool
}

// Summarize averages temperature and humidity over the window covering
// hours of forecast, and flags rain anywhere in the first
// RainLookaheadSteps entries.
func (f *ForecastResult) Summarize(hours int) Summary {
	steps := hours / ForecastStepHours
	if steps <= 0 {
		steps = 1
	}
	if steps > len(f.Steps) {
		steps = len(f.Steps)
	}

	var s Summary
	if steps == 0 {
		return s
	}

	for _, o := range f.Steps[:steps] {
		s.AvgTempC += o.TempC
		s.AvgHumidityPct += o.HumidityPct
	}
	s.AvgTempC /= float64(steps)
	s.AvgHumidityPct /= float64(steps)
	s.RainExpected = f.RainExpected()
	return s
}

// RainExpected reports whether any of the first RainLookaheadSteps
// forecast entries carry a rain condition.
func (f *ForecastResult) RainExpected() bool {
	n := RainLookaheadSteps
	if n > len(f.Steps) {
		n = len(f.Steps)
	}
	for _, o := range f.Steps[:n] {
		if containsRain(o.Condition) || containsRain(o.Description) {
			return true
		}
	}
	return false
}

// Wire types for the OpenWeather API
type weatherResponse struct {
	Weather []weatherCondition `json:"weather"`
	Main    weatherMain        `json:"main"`
}

type forecastResponse struct {
	List []weatherResponse `json:"list"`
}

type weatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type weatherMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}
