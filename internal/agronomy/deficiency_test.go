package agronomy_test

import (
	"strings"
	"testing"

	"krishimitra-backend/internal/agronomy"
	"krishimitra-backend/internal/model"
)

func f(v float64) *float64 { return &v }

func findByNutrient(findings []agronomy.Finding, n agronomy.Nutrient) (agronomy.Finding, bool) {
	for _, fd := range findings {
		if fd.Nutrient == n {
			return fd, true
		}
	}
	return agronomy.Finding{}, false
}

func TestEvaluateDeficiencies(t *testing.T) {
	t.Run("Nitrogen Boundary", func(t *testing.T) {
		low := agronomy.EvaluateDeficiencies(model.SoilRecord{Nitrogen: f(279)}, false)
		if low[0].Status != agronomy.StatusLow {
			t.Errorf("N=279: expected low, got %s", low[0].Status)
		}

		sufficient := agronomy.EvaluateDeficiencies(model.SoilRecord{Nitrogen: f(280)}, false)
		if sufficient[0].Status != agronomy.StatusSufficient {
			t.Errorf("N=280: expected sufficient, got %s", sufficient[0].Status)
		}
	})

	t.Run("Rain Delay Advisory", func(t *testing.T) {
		withRain := agronomy.EvaluateDeficiencies(model.SoilRecord{Nitrogen: f(150)}, true)
		if !strings.Contains(withRain[0].Message, "Delay urea") {
			t.Errorf("expected delay advisory in %q", withRain[0].Message)
		}

		noRain := agronomy.EvaluateDeficiencies(model.SoilRecord{Nitrogen: f(150)}, false)
		if strings.Contains(noRain[0].Message, "Delay urea") {
			t.Errorf("unexpected delay advisory in %q", noRain[0].Message)
		}

		// Advisory applies only to the low bucket.
		sufficientRain := agronomy.EvaluateDeficiencies(model.SoilRecord{Nitrogen: f(300)}, true)
		if strings.Contains(sufficientRain[0].Message, "Delay urea") {
			t.Errorf("sufficient nitrogen must not carry the advisory: %q", sufficientRain[0].Message)
		}
	})

	t.Run("Phosphorus And Potassium Thresholds", func(t *testing.T) {
		findings := agronomy.EvaluateDeficiencies(model.SoilRecord{
			Phosphorus: f(9.9),
			Potassium:  f(110),
		}, false)

		p, ok := findByNutrient(findings, agronomy.NutrientPhosphorus)
		if !ok || p.Status != agronomy.StatusLow {
			t.Errorf("P=9.9: expected low, got %+v", p)
		}
		k, ok := findByNutrient(findings, agronomy.NutrientPotassium)
		if !ok || k.Status != agronomy.StatusSufficient {
			t.Errorf("K=110: expected sufficient, got %+v", k)
		}
	})

	t.Run("PH Bands", func(t *testing.T) {
		cases := []struct {
			ph   float64
			want agronomy.Status
		}{
			{5.9, agronomy.StatusAcidic},
			{6.0, agronomy.StatusBalanced},
			{8.0, agronomy.StatusBalanced},
			{8.1, agronomy.StatusAlkaline},
		}
		for _, tc := range cases {
			findings := agronomy.EvaluateDeficiencies(model.SoilRecord{PH: f(tc.ph)}, false)
			if len(findings) != 1 || findings[0].Status != tc.want {
				t.Errorf("pH=%.1f: expected %s, got %+v", tc.ph, tc.want, findings)
			}
		}
	})

	t.Run("Missing Readings Skipped", func(t *testing.T) {
		findings := agronomy.EvaluateDeficiencies(model.SoilRecord{Nitrogen: f(300)}, false)
		if len(findings) != 1 {
			t.Errorf("expected 1 finding for single reading, got %d", len(findings))
		}
	})

	t.Run("All Missing Fallback", func(t *testing.T) {
		findings := agronomy.EvaluateDeficiencies(model.SoilRecord{}, false)
		if len(findings) != 1 {
			t.Fatalf("expected exactly one fallback finding, got %d", len(findings))
		}
		if findings[0].Status != agronomy.StatusBalanced {
			t.Errorf("expected balanced fallback, got %s", findings[0].Status)
		}
		if findings[0].Message != "Soil nutrients appear balanced." {
			t.Errorf("unexpected fallback message: %q", findings[0].Message)
		}
	})

	t.Run("Full Record Order", func(t *testing.T) {
		findings := agronomy.EvaluateDeficiencies(model.SoilRecord{
			Nitrogen:   f(100),
			Phosphorus: f(20),
			Potassium:  f(50),
			PH:         f(7.0),
		}, false)
		if len(findings) != 4 {
			t.Fatalf("expected 4 findings, got %d", len(findings))
		}
		order := []agronomy.Nutrient{
			agronomy.NutrientNitrogen,
			agronomy.NutrientPhosphorus,
			agronomy.NutrientPotassium,
			agronomy.NutrientPH,
		}
		for i, n := range order {
			if findings[i].Nutrient != n {
				t.Errorf("position %d: expected %s, got %s", i, n, findings[i].Nutrient)
			}
		}
	})
}
