package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"call-intelligence-go/internal/types"
)

// Verifier outcome label values.
const (
	OutcomeDisabled = "disabled"
	OutcomeVerified = "verified"
	OutcomeFallback = "fallback"
)

// intentOther labels intents outside types.Intents.
const intentOther = "other"

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callintel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	CallsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "callintel_calls_submitted_total",
			Help: "Audio uploads accepted for analysis",
		},
	)

	CallsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callintel_calls_completed_total",
			Help: "Call records stored, by final intent",
		},
		[]string{"intent"},
	)

	TranscriptionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "callintel_transcription_failures_total",
			Help: "Transcriptions that failed or timed out",
		},
	)

	VerifierOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callintel_verifier_outcomes_total",
			Help: "Verifier results by outcome",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "callintel_analysis_duration_seconds",
			Help:    "Time spent in the analysis stage including verification",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// IntentLabel maps an intent onto a bounded label set for CallsCompleted.
func IntentLabel(intent string) string {
	for _, known := range types.Intents {
		if intent == known {
			return intent
		}
	}
	return intentOther
}
