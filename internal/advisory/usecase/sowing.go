package usecase

import (
	"context"
	"fmt"
	"strings"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/agronomy"
	"krishimitra-backend/internal/cropindex"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/internal/model"
)

// sowing answers how to grow a crop the farmer has already chosen: the
// typed crop name is fuzzy-matched against the catalog and the soil
// report is checked for deficiencies.
func (uc *implUseCase) sowing(ctx context.Context, sc model.Scope, input advisory.QueryInput, cropName string) (advisory.QueryOutput, error) {
	if strings.TrimSpace(cropName) == "" {
		// Classifier saw a sowing question but no crop; ask instead of guessing.
		uc.l.Infof(ctx, "sowing: no crop extracted, asking for crop name")
		return advisory.QueryOutput{
			Intent:    intent.IntentSowing,
			NeedsCrop: true,
			Answer:    "Please specify the crop name you want to sow.",
		}, nil
	}

	matched, score, ok := cropindex.MatchCrop(cropName, uc.index.Catalog.Names())
	if !ok {
		uc.l.Infof(ctx, "sowing: no catalog match for %q (best score %d)", cropName, score)
		return advisory.QueryOutput{}, fmt.Errorf("%w: %q", advisory.ErrCropNotFound, cropName)
	}

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
			Intent:         intent.IntentSowing,
			MatchedCrop:    matched,
			NeedsSelection: true,
			SurveyOptions:  options,
			Answer:         fmt.Sprintf("You have %d plots on record. Which survey number should I use?", len(options)),
		}, nil
	}

	season := agronomy.SeasonFor(uc.now())
	weather := uc.weatherContext(ctx, profile)

	rainExpected := weather != nil && weather.RainExpected
	findings := agronomy.EvaluateDeficiencies(rec, rainExpected)

	draft := uc.buildSowingDraft(matched, rec, season, findings, weather)
	answer, degraded := uc.refine(ctx, input.Query, draft)

	uc.l.Infof(ctx, "sowing: aadhaar=%s crop=%s score=%d findings=%d degraded=%v",
		sc.AadhaarNo, matched, score, len(findings), degraded)

	return advisory.QueryOutput{
		Intent:      intent.IntentSowing,
		Answer:      answer,
		Season:      string(season),
		MatchedCrop: matched,
		Findings:    findings,
		Weather:     weather,
		Degraded:    degraded,
	}, nil
}

func (uc *implUseCase) buildSowingDraft(
	crop string,
	rec model.SoilRecord,
	season model.Season,
	findings []agronomy.Finding,
	weather *advisory.WeatherSummary,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Crop: %s. Season: %s.", crop, season)
	if entry, ok := uc.index.Catalog.EntryFor(crop, season); ok {
		if entry.Season != "" && entry.Season != season {
			fmt.Fprintf(&b, " Note: %s is usually a %s crop.", crop, entry.Season)
		}
	}
	if rec.SurveyNo != "" {
		fmt.Fprintf(&b, " Soil report used: survey no %s.", rec.SurveyNo)
	}
	b.WriteString("\n")

	b.WriteString("Soil report findings:")
	for _, f := range findings {
		b.WriteString("\n- ")
		b.WriteString(f.Message)
	}

	if line := weatherLine(weather); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	return b.String()
}
