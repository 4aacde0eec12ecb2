package agronomy

import (
	"fmt"

	"krishimitra-backend/internal/model"
)

// Nutrient thresholds (kg/ha) and pH band. A reading exactly at the
// nutrient threshold is sufficient; pH 6.0 and 8.0 are balanced.
const (
	NitrogenLowKgHa   = 280.0
	PhosphorusLowKgHa = 10.0
	PotassiumLowKgHa  = 110.0

	PHAcidicBelow    = 6.0
	PHAlkalineAbove  = 8.0
)

// RainDelayAdvisory is appended to a low-nitrogen finding when rain is
// expected in the near-term forecast window (urea is rain-sensitive).
const RainDelayAdvisory = " Delay urea application if rain is expected soon."

// EvaluateDeficiencies classifies the N/P/K/pH readings of a soil record
// against fixed thresholds. Missing readings are skipped, not errors. When
// every reading is missing, a single fallback "balanced" finding is emitted,
// which conflates absent data with a positive result.
func EvaluateDeficiencies(rec model.SoilRecord, rainExpected bool) []Finding {
	findings := make([]Finding, 0, 4)

	if rec.Nitrogen != nil {
		findings = append(findings, nitrogenFinding(*rec.Nitrogen, rainExpected))
	}
	if rec.Phosphorus != nil {
		findings = append(findings, phosphorusFinding(*rec.Phosphorus))
	}
	if rec.Potassium != nil {
		findings = append(findings, potassiumFinding(*rec.Potassium))
	}
	if rec.PH != nil {
		findings = append(findings, phFinding(*rec.PH))
	}

	if len(findings) == 0 {
		findings = append(findings, Finding{
			Nutrient: NutrientNitrogen,
			Status:   StatusBalanced,
			Message:  "Soil nutrients appear balanced.",
		})
	}

	return findings
}

func nitrogenFinding(n float64, rainExpected bool) Finding {
	if n < NitrogenLowKgHa {
		msg := fmt.Sprintf("Nitrogen low (%.1f kg/ha). Apply Urea or Compost.", n)
		if rainExpected {
			msg += RainDelayAdvisory
		}
		return Finding{Nutrient: NutrientNitrogen, Status: StatusLow, Message: msg}
	}
	return Finding{
		Nutrient: NutrientNitrogen,
		Status:   StatusSufficient,
		Message:  fmt.Sprintf("Nitrogen sufficient (%.1f kg/ha).", n),
	}
}

func phosphorusFinding(p float64) Finding {
	if p < PhosphorusLowKgHa {
		return Finding{
			Nutrient: NutrientPhosphorus,
			Status:   StatusLow,
			Message:  fmt.Sprintf("Phosphorus low (%.1f kg/ha). Apply DAP/SSP.", p),
		}
	}
	return Finding{
		Nutrient: NutrientPhosphorus,
		Status:   StatusSufficient,
		Message:  fmt.Sprintf("Phosphorus sufficient (%.1f kg/ha).", p),
	}
}

func potassiumFinding(k float64) Finding {
	if k < PotassiumLowKgHa {
		return Finding{
			Nutrient: NutrientPotassium,
			Status:   StatusLow,
			Message:  fmt.Sprintf("Potassium low (%.1f kg/ha). Apply MOP or crop residues.", k),
		}
	}
	return Finding{
		Nutrient: NutrientPotassium,
		Status:   StatusSufficient,
		Message:  fmt.Sprintf("Potassium sufficient (%.1f kg/ha).", k),
	}
}

func phFinding(ph float64) Finding {
	switch {
	case ph < PHAcidicBelow:
		return Finding{
			Nutrient: NutrientPH,
			Status:   StatusAcidic,
			Message:  fmt.Sprintf("Acidic soil (pH %.1f). Apply lime.", ph),
		}
	case ph > PHAlkalineAbove:
		return Finding{
			Nutrient: NutrientPH,
			Status:   StatusAlkaline,
			Message:  fmt.Sprintf("Alkaline soil (pH %.1f). Apply gypsum or manure.", ph),
		}
	default:
		return Finding{
			Nutrient: NutrientPH,
			Status:   StatusBalanced,
			Message:  fmt.Sprintf("Soil pH balanced (%.1f).", ph),
		}
	}
}
