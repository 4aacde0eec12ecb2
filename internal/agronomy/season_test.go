package agronomy_test

import (
	"testing"
	"time"

	"krishimitra-backend/internal/agronomy"
	"krishimitra-backend/internal/model"
)

func TestSeasonFor(t *testing.T) {
	expected := map[time.Month]model.Season{
		time.January:   model.SeasonRabi,
		time.February:  model.SeasonRabi,
		time.March:     model.SeasonRabi,
		time.April:     model.SeasonZaid,
		time.May:       model.SeasonZaid,
		time.June:      model.SeasonKharif,
		time.July:      model.SeasonKharif,
		time.August:    model.SeasonKharif,
		time.September: model.SeasonKharif,
		time.October:   model.SeasonKharif,
		time.November:  model.SeasonRabi,
		time.December:  model.SeasonRabi,
	}

	// Every month must map to exactly one of the three seasons.
	for month := time.January; month <= time.December; month++ {
		date := time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC)
		got := agronomy.SeasonFor(date)

		if got != expected[month] {
			t.Errorf("month %s: expected %s, got %s", month, expected[month], got)
		}
		switch got {
		case model.SeasonKharif, model.SeasonRabi, model.SeasonZaid:
		default:
			t.Errorf("month %s: unknown season %q", month, got)
		}
	}
}
