package agronomy

import (
	"time"

	"krishimitra-backend/internal/model"
)

// SeasonFor maps a calendar date to the agricultural sowing season.
// Total over all twelve months:
//
//	Jun-Oct → kharif, Nov-Mar → rabi, Apr-May → zaid.
func SeasonFor(date time.Time) model.Season {
	switch date.Month() {
	case time.June, time.July, time.August, time.September, time.October:
		return model.SeasonKharif
	case time.November, time.December, time.January, time.February, time.March:
		return model.SeasonRabi
	default: // April, May
		return model.SeasonZaid
	}
}
