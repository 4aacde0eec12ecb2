package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/advisory/repository"
	"krishimitra-backend/internal/model"
	"krishimitra-backend/pkg/llmprovider"
)

// loadFarmer fetches the profile and maps repository not-found to the
// domain error.
func (uc *implUseCase) loadFarmer(ctx context.Context, aadhaarNo string) (model.FarmerProfile, error) {
	profile, err := uc.repo.GetFarmer(ctx, aadhaarNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.FarmerProfile{}, advisory.ErrFarmerNotFound
		}
		return model.FarmerProfile{}, fmt.Errorf("failed to fetch farmer: %w", err)
	}
	return profile, nil
}

// selectSoilRecord picks one soil record for the query. With multiple
// plots and no explicit choice the caller must ask the farmer, so the
// survey options are returned instead of a record.
func (uc *implUseCase) selectSoilRecord(ctx context.Context, aadhaarNo, chosenSurveyNo string) (model.SoilRecord, []string, error) {
	records, err := uc.repo.ListSoilRecords(ctx, aadhaarNo)
	if err != nil {
		return model.SoilRecord{}, nil, fmt.Errorf("failed to fetch soil records: %w", err)
	}
	if len(records) == 0 {
		return model.SoilRecord{}, nil, advisory.ErrNoSoilRecords
	}

	if chosenSurveyNo != "" {
		for _, rec := range records {
			if rec.SurveyNo == chosenSurveyNo {
				return rec, nil, nil
			}
		}
		return model.SoilRecord{}, nil, advisory.ErrUnknownSurvey
	}

	if len(records) == 1 {
		return records[0], nil, nil
	}

	options := make([]string, len(records))
	for i, rec := range records {
		options[i] = rec.SurveyNo
	}
	return model.SoilRecord{}, options, nil
}

// weatherContext builds the forecast summary for a farmer's location.
// Weather is enrichment, never a hard dependency: any failure is logged
// and the flows continue without it.
func (uc *implUseCase) weatherContext(ctx context.Context, profile model.FarmerProfile) *advisory.WeatherSummary {
	if uc.weather == nil {
		return nil
	}

	lat, lon, ok := uc.coordinates(ctx, profile)
	if !ok {
		return nil
	}

	forecast, err := uc.weather.Forecast(ctx, lat, lon)
	if err != nil {
		uc.l.Warnf(ctx, "weatherContext: forecast failed for %s: %v", profile.District, err)
		return nil
	}

	s := forecast.Summarize(uc.forecastHours)
	return &advisory.WeatherSummary{
		AvgTempC:       s.AvgTempC,
		AvgHumidityPct: s.AvgHumidityPct,
		RainExpected:   s.RainExpected,
	}
}

func (uc *implUseCase) coordinates(ctx context.Context, profile model.FarmerProfile) (float64, float64, bool) {
	if profile.HasCoordinates() {
		return *profile.Lat, *profile.Lon, true
	}
	if uc.geocoder == nil || profile.District == "" {
		return 0, 0, false
	}

	loc, err := uc.geocoder.Lookup(ctx, profile.District, profile.State)
	if err != nil {
		uc.l.Warnf(ctx, "coordinates: geocode failed for %s, %s: %v", profile.District, profile.State, err)
		return 0, 0, false
	}
	return loc.Lat, loc.Lon, true
}

// refine asks the LLM to rewrite a drafted advisory. On any provider
// failure the deterministic draft is returned as-is with degraded set.
func (uc *implUseCase) refine(ctx context.Context, question, draft string) (string, bool) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: PromptRefineSystem}},
		},
		Messages: []llmprovider.Message{
			{
				Role: "user",
				Parts: []llmprovider.Part{{
					Text: fmt.Sprintf("Farmer's question: %s\n\nDraft advisory:\n%s", question, draft),
				}},
			},
		},
		Temperature: RefineTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "refine: LLM unavailable, returning draft: %v", err)
		return draft, true
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		uc.l.Warnf(ctx, "refine: empty LLM response, returning draft")
		return draft, true
	}
	return answer, false
}

func weatherLine(w *advisory.WeatherSummary) string {
	if w == nil {
		return ""
	}
	line := fmt.Sprintf("Forecast: around %.0f°C with %.0f%% humidity.", w.AvgTempC, w.AvgHumidityPct)
	if w.RainExpected {
		line += " Rain is expected in the next few days."
	}
	return line
}
