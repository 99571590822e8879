package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"call-intelligence-go/internal/types"
)

func record(intent, priority, risk, finalIntent, finalPriority string) types.CallRecord {
	return types.CallRecord{
		Priority:      priority,
		RiskLevel:     risk,
		RuleBased:     types.RuleBased{Intent: types.IntentClassification{Label: intent}, Priority: priority},
		FinalDecision: types.FinalDecision{Intent: finalIntent, Priority: finalPriority},
	}
}

func TestAggregate(t *testing.T) {
	ins := Aggregate([]types.CallRecord{
		record(types.IntentCustomerComplaint, types.PriorityHigh, types.RiskHigh, types.IntentCustomerComplaint, types.PriorityHigh),
		record(types.IntentLoanInquiry, types.PriorityMedium, types.RiskLow, types.IntentLoanInquiry, types.PriorityMedium),
		record(types.IntentGeneralInquiry, types.PriorityMedium, types.RiskLow, types.IntentCustomerComplaint, types.PriorityHigh),
		record(types.IntentDepositRequest, types.PriorityHigh, types.RiskHigh, types.IntentDepositRequest, types.PriorityHigh),
	})

	assert.Equal(t, 4, ins.TotalCalls)
	assert.Equal(t, 2, ins.IntentCounts[types.IntentCustomerComplaint])
	assert.Equal(t, 2, ins.HighPriority)
	assert.Equal(t, 2, ins.HighRisk)
	assert.Equal(t, 1, ins.VerifierOverrides)
	assert.InDelta(t, 0.5, ins.ComplaintRate, 1e-9)
	assert.InDelta(t, 0.5, ins.HighRiskRate, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	ins := Aggregate(nil)
	assert.Zero(t, ins.TotalCalls)
	assert.Zero(t, ins.ComplaintRate)
	assert.NotNil(t, ins.IntentCounts)
}
