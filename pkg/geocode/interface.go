package geocode

import "context"

// IGeocode defines the interface for forward geocoding.
// Implementations are safe for concurrent use.
type IGeocode interface {
	// Lookup resolves a district and state to coordinates
	Lookup(ctx context.Context, district, state string) (*Location, error)
}

// New creates a new geocoding client with the given configuration
func New(cfg Config) (IGeocode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeocodeImpl(cfg)
}
