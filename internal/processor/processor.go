// Package processor turns a transcript into a call record: identifiers,
// heuristic classification, actions, optional verification, assembly.
package processor

import (
	"context"
	"time"

	"call-intelligence-go/internal/actionable"
	"call-intelligence-go/internal/classifier"
	"call-intelligence-go/internal/extractor"
	"call-intelligence-go/internal/logger"
	"call-intelligence-go/internal/metrics"
	"call-intelligence-go/internal/types"
	"call-intelligence-go/internal/verifier"
)

type Analyzer struct {
	Extractor     extractor.Extractor
	Verifier      verifier.Verifier
	VerifyTimeout time.Duration
}

func NewAnalyzer(ext extractor.Extractor, v verifier.Verifier, verifyTimeout time.Duration) *Analyzer {
	if v == nil {
		v = verifier.Disabled{}
	}
	return &Analyzer{Extractor: ext, Verifier: v, VerifyTimeout: verifyTimeout}
}

// Analyze never fails; verifier problems are folded into the record.
func (a *Analyzer) Analyze(ctx context.Context, callID, transcript string) types.CallRecord {
	log := logger.Component("processor").WithCall(callID)
	start := time.Now()

	ids := a.Extractor.Extract(transcript)
	intent, sentiment := classifier.Classify(transcript)
	actions := actionable.ExtractActions(transcript)
	priority := classifier.Priority(intent, sentiment)

	verification := a.verify(ctx, verifier.Input{
		Transcript: transcript,
		Intent:     intent,
		Priority:   priority,
		Sentiment:  sentiment,
	})

	rec := Assemble(callID, transcript, ids, intent, sentiment, actions, verification)

	elapsed := time.Since(start)
	metrics.AnalysisDuration.Observe(elapsed.Seconds())
	log.WithFields(map[string]interface{}{
		"intent":         rec.Intent.Label,
		"sentiment":      rec.Sentiment.Label,
		"priority":       rec.Priority,
		"final_intent":   rec.FinalDecision.Intent,
		"final_priority": rec.FinalDecision.Priority,
		"duration_ms":    elapsed.Milliseconds(),
	}).Info("analysis complete")
	return rec
}

func (a *Analyzer) verify(ctx context.Context, in verifier.Input) types.VerificationResult {
	if a.VerifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.VerifyTimeout)
		defer cancel()
	}
	return a.Verifier.Verify(ctx, in)
}
