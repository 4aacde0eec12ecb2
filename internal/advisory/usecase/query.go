package usecase

import (
	"context"
	"fmt"
	"strings"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/internal/model"
)

// Query classifies the farmer's message and routes it to the matching flow.
func (uc *implUseCase) Query(ctx context.Context, sc model.Scope, input advisory.QueryInput) (advisory.QueryOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return advisory.QueryOutput{}, advisory.ErrEmptyQuery
	}
	if strings.TrimSpace(input.AadhaarNo) == "" {
		return advisory.QueryOutput{}, advisory.ErrEmptyAadhaar
	}

	uc.l.Infof(ctx, "Query: aadhaar=%s query=%q", sc.AadhaarNo, input.Query)

	classification, err := uc.classifier.Classify(ctx, input.Query)
	if err != nil {
		// Classification degrades to the general flow rather than failing
		// the whole query.
		uc.l.Warnf(ctx, "Query: classification failed, treating as general: %v", err)
		classification = intent.ClassifierOutput{Intent: intent.IntentGeneral}
	}

	switch classification.Intent {
	case intent.IntentPreSowing:
		return uc.preSowing(ctx, sc, input)
	case intent.IntentSowing:
		return uc.sowing(ctx, sc, input, classification.CropName)
	case intent.IntentScheme:
		return uc.scheme(ctx, input)
	case intent.IntentGeneral:
		return uc.general(ctx, input)
	default:
		return advisory.QueryOutput{}, fmt.Errorf("unhandled intent %q", classification.Intent)
	}
}
