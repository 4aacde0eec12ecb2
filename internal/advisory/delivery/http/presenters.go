package http

import (
	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/agronomy"
)

// --- Request DTOs ---

type queryReq struct {
	AadhaarNo      string `json:"aadhaar_no" binding:"required,min=4,max=16"`
	Query          string `json:"query"      binding:"required,min=1,max=2000"`
	ChosenSurveyNo string `json:"survey_no"  binding:"omitempty,max=32"`
}

func (r queryReq) validate() error { return nil }

func (r queryReq) toInput() advisory.QueryInput {
	return advisory.QueryInput{
		AadhaarNo:      r.AadhaarNo,
		Query:          r.Query,
		ChosenSurveyNo: r.ChosenSurveyNo,
	}
}

// --- Response DTOs ---

type queryResp struct {
	Intent          string                        `json:"intent"`
	Answer          string                        `json:"answer"`
	NeedsSelection  bool                          `json:"needs_selection,omitempty"`
	SurveyOptions   []string                      `json:"survey_options,omitempty"`
	NeedsCrop       bool                          `json:"needs_crop,omitempty"`
	Season          string                        `json:"season,omitempty"`
	MatchedCrop     string                        `json:"matched_crop,omitempty"`
	Recommendations []advisory.CropRecommendation `json:"recommendations,omitempty"`
	Findings        []agronomy.Finding            `json:"findings,omitempty"`
	Weather         *advisory.WeatherSummary      `json:"weather,omitempty"`
	Degraded        bool                          `json:"degraded,omitempty"`
}

func (h *handler) newQueryResp(out advisory.QueryOutput) queryResp {
	return queryResp{
		Intent:          string(out.Intent),
		Answer:          out.Answer,
		NeedsSelection:  out.NeedsSelection,
		SurveyOptions:   out.SurveyOptions,
		NeedsCrop:       out.NeedsCrop,
		Season:          out.Season,
		MatchedCrop:     out.MatchedCrop,
		Recommendations: out.Recommendations,
		Findings:        out.Findings,
		Weather:         out.Weather,
		Degraded:        out.Degraded,
	}
}
