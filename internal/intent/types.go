package intent

// Intent represents the farmer's intention
type Intent string

const (
	IntentPreSowing Intent = "pre_sowing"
	IntentSowing    Intent = "sowing"
	IntentScheme    Intent = "scheme"
	IntentGeneral   Intent = "general"
)

// valid reports whether the label is one of the routable intents.
func (i Intent) valid() bool {
	switch i {
	case IntentPreSowing, IntentSowing, IntentScheme, IntentGeneral:
		return true
	}
	return false
}

// ClassifierOutput is the structured response from the intent classifier
type ClassifierOutput struct {
	Intent    Intent `json:"intent"`
	CropName  string `json:"crop_name"` // Only populated for sowing intent
	Reasoning string `json:"reasoning"`
}
