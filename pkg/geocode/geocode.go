package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// geocodeImpl is the internal implementation of IGeocode
type geocodeImpl struct {
	userAgent  string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *expirable.LRU[string, Location]
}

func newGeocodeImpl(cfg Config) (*geocodeImpl, error) {
	return &geocodeImpl{
		userAgent:  cfg.UserAgent,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		cache:      expirable.NewLRU[string, Location](cfg.CacheSize, nil, cfg.CacheTTL),
	}, nil
}

// Lookup resolves a district and state to coordinates. Results are cached,
// and upstream calls are throttled to one per second.
func (g *geocodeImpl) Lookup(ctx context.Context, district, state string) (*Location, error) {
	key := cacheKey(district, state)
	if loc, ok := g.cache.Get(key); ok {
		return &loc, nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocode: rate limit wait: %w", err)
	}

	loc, err := g.search(ctx, district, state)
	if err != nil {
		return nil, err
	}

	g.cache.Add(key, *loc)
	return loc, nil
}

func (g *geocodeImpl) search(ctx context.Context, district, state string) (*Location, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s, %s, India", district, state))
	q.Set("format", "json")
	q.Set("limit", "1")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("geocode: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geocode: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s, %s", ErrNotFound, district, state)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}

	return &Location{Lat: lat, Lon: lon}, nil
}

func cacheKey(district, state string) string {
	return strings.ToLower(strings.TrimSpace(district)) + "|" + strings.ToLower(strings.TrimSpace(state))
}
