package geocode

import "time"

const (
	// DefaultBaseURL is the public Nominatim instance
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// DefaultCacheSize bounds the resolved-place cache
	DefaultCacheSize = 512

	// DefaultCacheTTL expires cached coordinates
	DefaultCacheTTL = 24 * time.Hour

	// requestsPerSecond honors the Nominatim usage policy
	requestsPerSecond = 1
)
