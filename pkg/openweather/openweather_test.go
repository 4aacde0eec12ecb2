package openweather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestForecastResult_Summarize(t *testing.T) {
	f := &ForecastResult{Steps: []Observation{
		{TempC: 30, HumidityPct: 60, Condition: "Clear"},
		{TempC: 32, HumidityPct: 70, Condition: "Clouds"},
		{TempC: 28, HumidityPct: 80, Condition: "Clear"},
		{TempC: 26, HumidityPct: 90, Condition: "Rain"},
	}}

	t.Run("averages over window", func(t *testing.T) {
		s := f.Summarize(6) // two steps
		if s.AvgTempC != 31 {
			t.Errorf("AvgTempC = %v, want 31", s.AvgTempC)
		}
		if s.AvgHumidityPct != 65 {
			t.Errorf("AvgHumidityPct = %v, want 65", s.AvgHumidityPct)
		}
	})

	t.Run("rain inside lookahead flags", func(t *testing.T) {
		if !f.Summarize(6).RainExpected {
			t.Error("RainExpected = false, rain at step 4 within lookahead")
		}
	})

	t.Run("window clamps to available steps", func(t *testing.T) {
		s := f.Summarize(48)
		if s.AvgTempC != 29 {
			t.Errorf("AvgTempC = %v, want 29", s.AvgTempC)
		}
	})

	t.Run("empty forecast", func(t *testing.T) {
		empty := &ForecastResult{}
		s := empty.Summarize(12)
		if s.AvgTempC != 0 || s.RainExpected {
			t.Errorf("Summarize() = %+v, want zero", s)
		}
	})
}

func TestForecastResult_RainExpected(t *testing.T) {
	t.Run("rain beyond lookahead ignored", func(t *testing.T) {
		f := &ForecastResult{Steps: []Observation{
			{Condition: "Clear"}, {Condition: "Clear"}, {Condition: "Clear"},
			{Condition: "Clear"}, {Condition: "Clear"}, {Condition: "Rain"},
		}}
		if f.RainExpected() {
			t.Error("RainExpected = true for rain at step 6")
		}
	})

	t.Run("matches description too", func(t *testing.T) {
		f := &ForecastResult{Steps: []Observation{
			{Condition: "Drizzle", Description: "light rain"},
		}}
		if !f.RainExpected() {
			t.Error("RainExpected = false for description with rain")
		}
	})
}

func TestClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("appid"); got != "key" {
			t.Errorf("appid = %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("units = %q", got)
		}

		switch r.URL.Path {
		case "/weather":
			json.NewEncoder(w).Encode(weatherResponse{
				Weather: []weatherCondition{{Main: "Clouds", Description: "scattered clouds"}},
				Main:    weatherMain{Temp: 29.5, Humidity: 74},
			})
		case "/forecast":
			json.NewEncoder(w).Encode(forecastResponse{
				List: []weatherResponse{
					{Weather: []weatherCondition{{Main: "Rain"}}, Main: weatherMain{Temp: 27, Humidity: 85}},
					{Weather: []weatherCondition{{Main: "Clear"}}, Main: weatherMain{Temp: 31, Humidity: 55}},
				},
			})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("current", func(t *testing.T) {
		obs, err := client.Current(context.Background(), 19.07, 72.87)
		if err != nil {
			t.Fatalf("Current() error = %v", err)
		}
		if obs.TempC != 29.5 || obs.Condition != "Clouds" {
			t.Errorf("Current() = %+v", obs)
		}
	})

	t.Run("forecast", func(t *testing.T) {
		f, err := client.Forecast(context.Background(), 19.07, 72.87)
		if err != nil {
			t.Fatalf("Forecast() error = %v", err)
		}
		if len(f.Steps) != 2 {
			t.Fatalf("steps = %d, want 2", len(f.Steps))
		}
		if !f.RainExpected() {
			t.Error("RainExpected = false, rain at step 1")
		}
	})
}
