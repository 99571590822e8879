package actionable

import (
	"fmt"

	"call-intelligence-go/internal/aggregator"
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

const (
	complaintThreshold = 0.30
	highRiskThreshold  = 0.40
)

func Generate(ins aggregator.Insight) ActionCard {
	if ins.TotalCalls == 0 {
		return ActionCard{
			Insight: "No calls analyzed yet",
			Action:  "Upload call recordings to start collecting insights",
			Impact:  "None",
		}
	}
	if ins.ComplaintRate > complaintThreshold {
		return ActionCard{
			Insight: fmt.Sprintf("Complaints make up %.0f%% of analyzed calls", ins.ComplaintRate*100),
			Action:  "Staff the escalation desk and review the top complaint transcripts daily",
			Impact:  "Faster complaint resolution and lower churn",
		}
	}
	if ins.HighRiskRate > highRiskThreshold {
		return ActionCard{
			Insight: fmt.Sprintf("%.0f%% of calls carry negative sentiment", ins.HighRiskRate*100),
			Action:  "Route negative-sentiment calls to senior agents for same-day callback",
			Impact:  "Reduce escalations from dissatisfied customers",
		}
	}
	return ActionCard{
		Insight: "No strong complaint or risk pattern detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}
