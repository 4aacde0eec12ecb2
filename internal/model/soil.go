package model

// SoilRecord is one soil-health-card (SHC) record from the `shc_norm`
// collection. Numeric readings are pointers: nil means the reading was
// absent in the source record, which downstream rules must tolerate.
// Immutable once fetched.
type SoilRecord struct {
	SurveyNo string

	PH         *float64
	Nitrogen   *float64 // kg/ha
	Phosphorus *float64 // kg/ha
	Potassium  *float64 // kg/ha

	SoilType string
}

// Season is one of the three Indian agricultural sowing seasons.
type Season string

const (
	SeasonKharif Season = "kharif"
	SeasonRabi   Season = "rabi"
	SeasonZaid   Season = "zaid"
)

// QueryContext holds the per-request context merged with a SoilRecord
// before feature encoding.
type QueryContext struct {
	Season          Season
	CropTypeHint    string
	WaterSourceHint string
}
