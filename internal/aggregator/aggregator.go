package aggregator

import "call-intelligence-go/internal/types"

type Insight struct {
	TotalCalls        int            `json:"total_calls"`
	IntentCounts      map[string]int `json:"intent_counts"`
	HighPriority      int            `json:"high_priority_calls"`
	HighRisk          int            `json:"high_risk_calls"`
	VerifierOverrides int            `json:"verifier_overrides"`
	ComplaintRate     float64        `json:"complaint_rate"`
	HighRiskRate      float64        `json:"high_risk_rate"`
}

// Aggregate counts intents by final decision; priority and risk come from the
// rule-based fields of each record.
func Aggregate(records []types.CallRecord) Insight {
	ins := Insight{IntentCounts: map[string]int{}}
	for _, r := range records {
		ins.TotalCalls++
		ins.IntentCounts[r.FinalDecision.Intent]++
		if r.Priority == types.PriorityHigh {
			ins.HighPriority++
		}
		if r.RiskLevel == types.RiskHigh {
			ins.HighRisk++
		}
		if r.VerifierOverrode() {
			ins.VerifierOverrides++
		}
	}
	if ins.TotalCalls > 0 {
		total := float64(ins.TotalCalls)
		ins.ComplaintRate = float64(ins.IntentCounts[types.IntentCustomerComplaint]) / total
		ins.HighRiskRate = float64(ins.HighRisk) / total
	}
	return ins
}
