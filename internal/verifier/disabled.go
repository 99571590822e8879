package verifier

import (
	"context"

	"call-intelligence-go/internal/metrics"
	"call-intelligence-go/internal/types"
)

const DefaultName = "AI verifier"

// Disabled is used when no verifier endpoint is configured.
type Disabled struct {
	Label string
}

func (d Disabled) Name() string {
	if d.Label == "" {
		return DefaultName
	}
	return d.Label
}

func (d Disabled) Verify(_ context.Context, in Input) types.VerificationResult {
	metrics.VerifierOutcomes.WithLabelValues(metrics.OutcomeDisabled).Inc()
	return Fallback(in, d.Name()+" not configured. Using rule-based analysis.")
}
