package advisory

import (
	"context"

	"krishimitra-backend/internal/model"
)

// UseCase defines the business logic interface for the advisory domain.
type UseCase interface {
	// Query classifies a farmer's message and answers it from soil data,
	// the crop index, and weather context.
	Query(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)
}
