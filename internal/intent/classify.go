package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"krishimitra-backend/pkg/llmprovider"
)

// Classify determines farmer intent from the message
// Convention: Method accepts context.Context as first parameter
func (c *SemanticClassifier) Classify(ctx context.Context, message string) (ClassifierOutput, error) {
	prompt := fmt.Sprintf(PromptClassifierSystem, message)

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: prompt}},
			},
		},
		Temperature: ClassifierTemperature,
	})
	if err != nil {
		return ClassifierOutput{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	responseText := stripCodeFences(resp.Text())
	if responseText == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return ClassifierOutput{
			Intent:    ClassifierFallbackIntent,
			Reasoning: ReasonEmptyResponse,
		}, nil
	}

	var output ClassifierOutput
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return ClassifierOutput{
			Intent:    ClassifierFallbackIntent,
			Reasoning: ReasonParsingError,
		}, nil
	}

	// Any label outside the routable set is coerced, never surfaced.
	if !output.Intent.valid() {
		c.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownIntent, output.Intent)
		output.Intent = ClassifierFallbackIntent
		output.Reasoning = ReasonUnknownIntent
	}

	c.l.Infof(ctx, "%s: Classified as %s", LogPrefixClassify, output.Intent)
	return output, nil
}

// stripCodeFences removes markdown code blocks if present (```json ... ```)
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
