package processor

import (
	"call-intelligence-go/internal/classifier"
	"call-intelligence-go/internal/types"
)

// Assemble merges the stage outputs into the terminal record. It is pure:
// identical inputs give an identical record, and input slices are copied.
func Assemble(callID, transcript string, ids types.CustomerIdentifiers, intent types.IntentClassification, sentiment types.SentimentClassification, actions []string, verification types.VerificationResult) types.CallRecord {
	priority := classifier.Priority(intent, sentiment)
	risk := classifier.Risk(sentiment)

	verification.Reasoning = cloneStrings(verification.Reasoning)

	return types.CallRecord{
		Status:          types.StatusCompleted,
		CallID:          callID,
		Transcript:      transcript,
		CustomerDetails: ids,
		Intent:          intent,
		Sentiment:       sentiment,
		Priority:        priority,
		RiskLevel:       risk,
		Summary:         BuildSummary(ids, intent, sentiment, priority, risk),
		ActionItems:     cloneStrings(actions),
		RuleBased: types.RuleBased{
			Intent:    intent,
			Sentiment: sentiment,
			Priority:  priority,
		},
		AIVerification: verification,
		FinalDecision: types.FinalDecision{
			Intent:   firstNonEmpty(verification.VerifiedIntent, intent.Label),
			Priority: firstNonEmpty(verification.VerifiedPriority, priority),
		},
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
