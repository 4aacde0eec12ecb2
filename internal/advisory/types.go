package advisory

import (
	"krishimitra-backend/internal/agronomy"
	"krishimitra-backend/internal/intent"
)

// QueryInput is the input for an advisory query.
// AadhaarNo identifies the farmer; ChosenSurveyNo selects a soil record
// when the farmer holds more than one plot.
type QueryInput struct {
	AadhaarNo      string
	Query          string
	ChosenSurveyNo string
}

// CropRecommendation is a single ranked crop suggestion.
type CropRecommendation struct {
	Crop     string  `json:"crop"`
	Season   string  `json:"season"`
	CropType string  `json:"crop_type"`
	Distance float64 `json:"distance"`
}

// WeatherSummary is the forecast context attached to an answer.
type WeatherSummary struct {
	AvgTempC       float64 `json:"avg_temp_c"`
	AvgHumidityPct float64 `json:"avg_humidity_pct"`
	RainExpected   bool    `json:"rain_expected"`
}

// QueryOutput is the result of an advisory query. When NeedsSelection is
// set the farmer must pick one of SurveyOptions and retry; when NeedsCrop
// is set the farmer must name the crop and retry. Every other field
// describes a completed answer.
type QueryOutput struct {
	Intent          intent.Intent
	Answer          string
	NeedsSelection  bool
	SurveyOptions   []string
	NeedsCrop       bool
	Season          string
	MatchedCrop     string
	Recommendations []CropRecommendation
	Findings        []agronomy.Finding
	Weather         *WeatherSummary
	Degraded        bool
}
