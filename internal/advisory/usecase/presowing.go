package usecase

import (
	"context"
	"fmt"
	"strings"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/agronomy"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/internal/model"
)

// preSowing recommends crops for a plot the farmer has not planted yet.
// The soil report is encoded with the current season and matched against
// the crop index by nearest neighbor.
func (uc *implUseCase) preSowing(ctx context.Context, sc model.Scope, input advisory.QueryInput) (advisory.QueryOutput, error) {
	profile, err := uc.loadFarmer(ctx, input.AadhaarNo)
	if err != nil {
		return advisory.QueryOutput{}, err
	}

	rec, options, err := uc.selectSoilRecord(ctx, input.AadhaarNo, input.ChosenSurveyNo)
	if err != nil {
		return advisory.QueryOutput{}, err
	}
	if len(options) > 0 {
		return advisory.QueryOutput{
			Intent:         intent.IntentPreSowing,
			NeedsSelection: true,
			SurveyOptions:  options,
			Answer:         fmt.Sprintf("You have %d plots on record. Which survey number should I use?", len(options)),
		}, nil
	}

	season := agronomy.SeasonFor(uc.now())

	vec, err := uc.index.Encoder.Encode(rec, model.QueryContext{Season: season})
	if err != nil {
		return advisory.QueryOutput{}, fmt.Errorf("failed to encode soil record: %w", err)
	}

	hits, err := uc.index.Index.Search(vec, uc.topK)
	if err != nil {
		return advisory.QueryOutput{}, fmt.Errorf("failed to search crop index: %w", err)
	}

	recommendations := make([]advisory.CropRecommendation, 0, len(hits))
	seen := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		entry := uc.index.Catalog.Lookup(h.RowIndex)
		if _, ok := seen[entry.Name]; ok {
			continue
		}
		seen[entry.Name] = struct{}{}
		recommendations = append(recommendations, advisory.CropRecommendation{
			Crop:     entry.Name,
			Season:   string(entry.Season),
			CropType: entry.CropType,
			Distance: h.Distance,
		})
	}

	weather := uc.weatherContext(ctx, profile)

	draft := uc.buildPreSowingDraft(profile, rec, season, recommendations, weather)
	answer, degraded := uc.refine(ctx, input.Query, draft)

	uc.l.Infof(ctx, "preSowing: aadhaar=%s season=%s crops=%d degraded=%v",
		sc.AadhaarNo, season, len(recommendations), degraded)

	return advisory.QueryOutput{
		Intent:          intent.IntentPreSowing,
		Answer:          answer,
		Season:          string(season),
		Recommendations: recommendations,
		Weather:         weather,
		Degraded:        degraded,
	}, nil
}

func (uc *implUseCase) buildPreSowingDraft(
	profile model.FarmerProfile,
	rec model.SoilRecord,
	season model.Season,
	recommendations []advisory.CropRecommendation,
	weather *advisory.WeatherSummary,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "It is the %s season.", season)
	if profile.District != "" {
		fmt.Fprintf(&b, " Your plot is in %s.", profile.District)
	}
	if rec.SurveyNo != "" {
		fmt.Fprintf(&b, " Soil report used: survey no %s.", rec.SurveyNo)
	}
	b.WriteString("\n")

	if len(recommendations) == 0 {
		b.WriteString("No crop in the catalog fits this soil profile closely.")
		return b.String()
	}

	names := make([]string, len(recommendations))
	for i, r := range recommendations {
		names[i] = r.Crop
	}
	fmt.Fprintf(&b, "Best suited crops for your soil, most suitable first: %s.", strings.Join(names, ", "))

	if line := weatherLine(weather); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	return b.String()
}
