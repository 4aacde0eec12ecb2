package geocode

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound indicates the place could not be resolved to coordinates
var ErrNotFound = errors.New("geocode: place not found")

// Config holds geocoding client configuration
type Config struct {
	// UserAgent identifies the application; Nominatim rejects anonymous clients
	UserAgent  string
	BaseURL    string
	CacheSize  int
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		return fmt.Errorf("geocode: UserAgent is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Location is a resolved coordinate pair.
type Location struct {
	Lat float64
	Lon float64
}

// Wire type for the Nominatim search API
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}
