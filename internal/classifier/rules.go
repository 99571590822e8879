package classifier

import "call-intelligence-go/internal/types"

// RulesetVersion identifies the keyword tables and their precedence.
// v2 checks complaints before withdrawals, loans and deposits.
const RulesetVersion = "v2"

type intentRule struct {
	label    string
	keywords []string
}

// intentRules is evaluated top to bottom; the first group with a hit wins.
var intentRules = []intentRule{
	{
		label: types.IntentCustomerComplaint,
		keywords: []string{
			"complaint", "complain", "unacceptable", "problem", "issue",
			"not working", "wrong", "poor service", "dispute", "overcharged",
		},
	},
	{
		label:    types.IntentWithdrawalRequest,
		keywords: []string{"withdraw", "withdrawal", "cash out", "take out money"},
	},
	{
		label:    types.IntentLoanInquiry,
		keywords: []string{"loan", "borrow", "mortgage", "interest rate", "payoff"},
	},
	{
		label:    types.IntentDepositRequest,
		keywords: []string{"deposit", "add money", "add funds", "cheque"},
	},
}

var negativeKeywords = []string{
	"angry", "frustrated", "upset", "annoyed", "unhappy", "disappointed",
	"terrible", "horrible", "worst", "hate", "furious",
}

var positiveKeywords = []string{
	"thank", "great", "happy", "excellent", "appreciate", "satisfied",
	"helpful", "wonderful",
}

const (
	negativeScore = -0.7
	positiveScore = 0.6
	neutralScore  = 0.0
)
