package openweather

import "time"

const (
	// DefaultBaseURL is the default OpenWeather API endpoint
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// ForecastStepHours is the interval between forecast entries
	ForecastStepHours = 3

	// RainLookaheadSteps is how many forecast entries the rain check scans
	RainLookaheadSteps = 5
)
