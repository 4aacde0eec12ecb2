package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/internal/model"
	"krishimitra-backend/pkg/llmprovider"
)

// scheme answers government scheme questions through the LLM. The farmer
// profile, when it resolves, is attached so the model can decide
// eligibility; an outage degrades to the fixed cannot-fetch answer.
func (uc *implUseCase) scheme(ctx context.Context, input advisory.QueryInput) (advisory.QueryOutput, error) {
	question := input.Query
	if profile, err := uc.loadFarmer(ctx, input.AadhaarNo); err == nil {
		if doc := schemeProfileJSON(profile); doc != "" {
			question = fmt.Sprintf("%s\n\nfarmer_profile:\n%s", input.Query, doc)
		}
	} else {
		uc.l.Infof(ctx, "scheme: answering without profile context: %v", err)
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: PromptSchemeSystem}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: question}}},
		},
		Temperature: SchemeTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "scheme: LLM unavailable, using fallback answer: %v", err)
		return advisory.QueryOutput{
			Intent:   intent.IntentScheme,
			Answer:   SchemeFallbackAnswer,
			Degraded: true,
		}, nil
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return advisory.QueryOutput{
			Intent:   intent.IntentScheme,
			Answer:   SchemeFallbackAnswer,
			Degraded: true,
		}, nil
	}

	return advisory.QueryOutput{
		Intent: intent.IntentScheme,
		Answer: answer,
	}, nil
}

// schemeProfileJSON renders the eligibility-relevant profile fields. The
// aadhaar number is deliberately left out of anything sent to a provider.
func schemeProfileJSON(p model.FarmerProfile) string {
	doc := map[string]string{}
	if p.Name != "" {
		doc["name"] = p.Name
	}
	if p.District != "" {
		doc["district"] = p.District
	}
	if p.State != "" {
		doc["state"] = p.State
	}
	if len(doc) == 0 {
		return ""
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return string(raw)
}
