// Package classifier assigns intent and sentiment to a transcript from
// keyword presence. It has no external dependencies and never fails.
package classifier

import (
	"strings"

	"call-intelligence-go/internal/types"
)

// Classify runs both intent and sentiment classification.
func Classify(transcript string) (types.IntentClassification, types.SentimentClassification) {
	lower := strings.ToLower(transcript)
	return classifyIntent(lower), classifySentiment(lower)
}

// Intent returns the first matching intent group, or General Inquiry at Low confidence.
func Intent(transcript string) types.IntentClassification {
	return classifyIntent(strings.ToLower(transcript))
}

// Sentiment checks negative keywords before positive ones.
func Sentiment(transcript string) types.SentimentClassification {
	return classifySentiment(strings.ToLower(transcript))
}

func classifyIntent(lower string) types.IntentClassification {
	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			return types.IntentClassification{Label: rule.label, Confidence: types.ConfidenceHigh}
		}
	}
	return types.IntentClassification{Label: types.IntentGeneralInquiry, Confidence: types.ConfidenceLow}
}

func classifySentiment(lower string) types.SentimentClassification {
	switch {
	case containsAny(lower, negativeKeywords):
		return types.SentimentClassification{Label: types.SentimentNegative, Score: negativeScore}
	case containsAny(lower, positiveKeywords):
		return types.SentimentClassification{Label: types.SentimentPositive, Score: positiveScore}
	default:
		return types.SentimentClassification{Label: types.SentimentNeutral, Score: neutralScore}
	}
}

// Priority is High for negative sentiment or a complaint, Medium otherwise.
func Priority(intent types.IntentClassification, sentiment types.SentimentClassification) string {
	if sentiment.Label == types.SentimentNegative || intent.Label == types.IntentCustomerComplaint {
		return types.PriorityHigh
	}
	return types.PriorityMedium
}

// Risk is High exactly when sentiment is negative.
func Risk(sentiment types.SentimentClassification) string {
	if sentiment.Label == types.SentimentNegative {
		return types.RiskHigh
	}
	return types.RiskLow
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
