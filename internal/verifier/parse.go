package verifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"call-intelligence-go/internal/types"
)

var fenceMarkers = []string{"```json", "```JSON", "```"}

// stripFences removes markdown code fences that models wrap around JSON.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, f := range fenceMarkers {
		s = strings.ReplaceAll(s, f, "")
	}
	return strings.TrimSpace(s)
}

type rawVerification struct {
	VerifiedIntent   *string  `json:"verified_intent"`
	VerifiedPriority *string  `json:"verified_priority"`
	Reasoning        []string `json:"reasoning"`
}

// parseVerification decodes a model reply into a VerificationResult. Both
// verified fields must be present and must name a known intent and priority.
func parseVerification(content string) (types.VerificationResult, error) {
	var raw rawVerification
	if err := json.Unmarshal([]byte(stripFences(content)), &raw); err != nil {
		return types.VerificationResult{}, fmt.Errorf("invalid json: %w", err)
	}
	if raw.VerifiedIntent == nil || strings.TrimSpace(*raw.VerifiedIntent) == "" {
		return types.VerificationResult{}, errors.New("missing verified_intent")
	}
	intent, ok := normalizeIntent(*raw.VerifiedIntent)
	if !ok {
		return types.VerificationResult{}, fmt.Errorf("unknown verified_intent %q", *raw.VerifiedIntent)
	}
	if raw.VerifiedPriority == nil {
		return types.VerificationResult{}, errors.New("missing verified_priority")
	}
	priority, ok := normalizePriority(*raw.VerifiedPriority)
	if !ok {
		return types.VerificationResult{}, fmt.Errorf("unknown verified_priority %q", *raw.VerifiedPriority)
	}
	reasoning := raw.Reasoning
	if reasoning == nil {
		reasoning = []string{}
	}
	return types.VerificationResult{
		VerifiedIntent:   intent,
		VerifiedPriority: priority,
		Reasoning:        reasoning,
	}, nil
}

func normalizeIntent(label string) (string, bool) {
	label = strings.TrimSpace(label)
	for _, known := range types.Intents {
		if strings.EqualFold(label, known) {
			return known, true
		}
	}
	return "", false
}

func normalizePriority(p string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "high":
		return types.PriorityHigh, true
	case "medium":
		return types.PriorityMedium, true
	case "low":
		return types.PriorityLow, true
	}
	return "", false
}
