package usecase

import (
	"context"
	"strings"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/pkg/llmprovider"
)

// general handles greetings and anything outside the structured flows.
func (uc *implUseCase) general(ctx context.Context, input advisory.QueryInput) (advisory.QueryOutput, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: PromptGeneralSystem}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: input.Query}}},
		},
		Temperature: GeneralTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "general: LLM unavailable, using fallback answer: %v", err)
		return advisory.QueryOutput{
			Intent:   intent.IntentGeneral,
			Answer:   GeneralFallbackAnswer,
			Degraded: true,
		}, nil
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		answer = GeneralFallbackAnswer
	}

	return advisory.QueryOutput{
		Intent: intent.IntentGeneral,
		Answer: answer,
	}, nil
}
