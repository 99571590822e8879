package processor

import (
	"fmt"

	"call-intelligence-go/internal/types"
)

// BuildSummary renders exactly five lines: identity, intent, sentiment,
// priority, risk.
func BuildSummary(ids types.CustomerIdentifiers, intent types.IntentClassification, sentiment types.SentimentClassification, priority, risk string) []string {
	identity := "Customer did not share their name."
	if ids.Name != "" {
		identity = fmt.Sprintf("Customer identified as %s.", ids.Name)
	}

	escalation := "Risk: Low. No escalation needed."
	if risk == types.RiskHigh {
		escalation = "Risk: High. Escalate to a senior agent."
	}

	return []string{
		identity,
		fmt.Sprintf("Intent: %s (%s confidence).", intent.Label, intent.Confidence),
		fmt.Sprintf("Sentiment: %s (score %.1f).", sentiment.Label, sentiment.Score),
		fmt.Sprintf("Priority: %s.", priority),
		escalation,
	}
}
