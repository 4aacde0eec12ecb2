package agronomy

// Nutrient identifies which soil reading a finding is about.
type Nutrient string

const (
	NutrientNitrogen   Nutrient = "N"
	NutrientPhosphorus Nutrient = "P"
	NutrientPotassium  Nutrient = "K"
	NutrientPH         Nutrient = "pH"
)

// Status is the qualitative classification of a reading.
type Status string

const (
	StatusLow        Status = "low"
	StatusSufficient Status = "sufficient"
	StatusAcidic     Status = "acidic"
	StatusAlkaline   Status = "alkaline"
	StatusBalanced   Status = "balanced"
	StatusError      Status = "error"
)

// Finding is one diagnostic statement about a soil reading. Messages are
// fixed templates driven by the value and threshold bucket; no free text
// is generated at this layer.
type Finding struct {
	Nutrient Nutrient `json:"nutrient"`
	Status   Status   `json:"status"`
	Message  string   `json:"message"`
}
