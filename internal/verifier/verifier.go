// Package verifier consults an optional remote model to corroborate or
// override the rule-based intent and priority. Verification is advisory: a
// Verifier never returns an error, it degrades to the heuristic values.
package verifier

import (
	"context"

	"call-intelligence-go/internal/types"
)

// Input is the heuristic outcome offered for verification.
type Input struct {
	Transcript string
	Intent     types.IntentClassification
	Priority   string
	Sentiment  types.SentimentClassification
}

type Verifier interface {
	Name() string
	Verify(ctx context.Context, in Input) types.VerificationResult
}

// Fallback passes the heuristic values through with the given reasoning.
func Fallback(in Input, reasoning ...string) types.VerificationResult {
	if reasoning == nil {
		reasoning = []string{}
	}
	return types.VerificationResult{
		VerifiedIntent:   in.Intent.Label,
		VerifiedPriority: in.Priority,
		Reasoning:        reasoning,
	}
}
