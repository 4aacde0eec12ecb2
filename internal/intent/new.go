package intent

import (
	"context"

	"krishimitra-backend/pkg/llmprovider"
	"krishimitra-backend/pkg/log"
)

// Classifier is the interface for intent classification
type Classifier interface {
	Classify(ctx context.Context, message string) (ClassifierOutput, error)
}

// SemanticClassifier classifies farmer intent using an LLM
type SemanticClassifier struct {
	llm llmprovider.Generator
	l   log.Logger
}

// Ensure SemanticClassifier implements Classifier interface
var _ Classifier = (*SemanticClassifier)(nil)

// New creates a new SemanticClassifier
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm llmprovider.Generator, l log.Logger) *SemanticClassifier {
	return &SemanticClassifier{
		llm: llm,
		l:   l,
	}
}
