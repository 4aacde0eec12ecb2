package openweather

import "context"

// IOpenWeather defines the interface for the OpenWeather API client.
// Implementations are safe for concurrent use.
type IOpenWeather interface {
	// Current fetches current conditions for a coordinate
	Current(ctx context.Context, lat, lon float64) (*Observation, error)

	// Forecast fetches the 3-hour step forecast for a coordinate
	Forecast(ctx context.Context, lat, lon float64) (*ForecastResult, error)
}

// New creates a new OpenWeather client with the given configuration
func New(cfg Config) (IOpenWeather, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenWeatherImpl(cfg), nil
}
