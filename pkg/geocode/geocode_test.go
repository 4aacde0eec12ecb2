package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "Nashik, Maharashtra, India" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`[{"lat":"19.9975","lon":"73.7898"}]`))
	}))
	defer srv.Close()

	client, err := New(Config{
		UserAgent: "test-agent",
		BaseURL:   srv.URL,
		CacheSize: 8,
		CacheTTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	loc, err := client.Lookup(context.Background(), "Nashik", "Maharashtra")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if loc.Lat != 19.9975 || loc.Lon != 73.7898 {
		t.Errorf("Lookup() = %+v", loc)
	}

	// Second lookup must come from cache without another upstream call.
	if _, err := client.Lookup(context.Background(), "nashik", "MAHARASHTRA"); err != nil {
		t.Fatalf("cached Lookup() error = %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("upstream calls = %d, want 1", n)
	}
}

func TestLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, _ := New(Config{UserAgent: "test-agent", BaseURL: srv.URL})
	_, err := client.Lookup(context.Background(), "Nowhere", "Nostate")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Lookup() error = %v, want ErrNotFound", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() should fail without UserAgent")
	}

	cfg = Config{UserAgent: "x"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.CacheSize != DefaultCacheSize || cfg.CacheTTL != DefaultCacheTTL {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
