package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Classifier prompt
const (
	PromptClassifierSystem = `You are an intent classifier for a farmer assistance service.
Analyze the farmer's message and determine the intent.

Message: "%s"

Possible intents:
1. pre_sowing: The farmer has not decided what to grow and wants a crop recommendation
2. sowing: The farmer has chosen a crop and asks how to grow it, fertilize it, or treat its soil
3. scheme: The farmer asks about government schemes, subsidies, insurance, or loans
4. general: Greetings, thanks, or anything else

Return JSON with this format:
{
  "intent": "pre_sowing|sowing|scheme|general",
  "crop_name": "crop mentioned by the farmer, empty if none",
  "reasoning": "one short sentence"
}`
)

// Classifier configuration
const (
	ClassifierTemperature    = 0.1
	ClassifierFallbackIntent = IntentGeneral
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to general"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to general"
	ErrMsgUnknownIntent   = "Unknown intent label, falling back to general"
)

// Fallback reasons
const (
	ReasonParsingError  = "Fallback due to parsing error"
	ReasonEmptyResponse = "Fallback due to empty response"
	ReasonUnknownIntent = "Fallback due to unknown intent label"
)
