package types

// Intent labels, in no particular order. Precedence lives in the classifier.
const (
	IntentLoanInquiry       = "Loan Inquiry"
	IntentWithdrawalRequest = "Withdrawal Request"
	IntentDepositRequest    = "Deposit Request"
	IntentCustomerComplaint = "Customer Complaint"
	IntentGeneralInquiry    = "General Inquiry"
)

// Intents is the closed set of intent labels.
var Intents = []string{
	IntentLoanInquiry,
	IntentWithdrawalRequest,
	IntentDepositRequest,
	IntentCustomerComplaint,
	IntentGeneralInquiry,
}

const (
	ConfidenceHigh = "High"
	ConfidenceLow  = "Low"
)

const (
	SentimentNegative = "Negative"
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

const (
	RiskHigh = "High"
	RiskLow  = "Low"
)

// StatusCompleted is reported for every assembled record.
const StatusCompleted = "completed"

type IntentClassification struct {
	Label      string `json:"label"`
	Confidence string `json:"confidence"`
}

type SentimentClassification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"` // -1..1
}

// CustomerIdentifiers holds at most one value of each kind. Empty means absent.
type CustomerIdentifiers struct {
	Name          string `json:"name,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	CardNumber    string `json:"card_number,omitempty"`
}

type VerificationResult struct {
	VerifiedIntent   string   `json:"verified_intent"`
	VerifiedPriority string   `json:"verified_priority"`
	Reasoning        []string `json:"reasoning"`
}

// RuleBased is the heuristic outcome, kept next to the verifier output for audit.
type RuleBased struct {
	Intent    IntentClassification    `json:"intent"`
	Sentiment SentimentClassification `json:"sentiment"`
	Priority  string                  `json:"priority"`
}

type FinalDecision struct {
	Intent   string `json:"intent"`
	Priority string `json:"priority"`
}

// CallRecord is the terminal result for one call. It is never mutated once stored.
type CallRecord struct {
	Status          string                  `json:"status"`
	CallID          string                  `json:"call_id"`
	Transcript      string                  `json:"transcript"`
	CustomerDetails CustomerIdentifiers     `json:"customer_details"`
	Intent          IntentClassification    `json:"intent"`
	Sentiment       SentimentClassification `json:"sentiment"`
	Priority        string                  `json:"priority"`
	RiskLevel       string                  `json:"risk_level"`
	Summary         []string                `json:"summary"`
	ActionItems     []string                `json:"action_items"`
	RuleBased       RuleBased               `json:"rule_based"`
	AIVerification  VerificationResult      `json:"ai_verification"`
	FinalDecision   FinalDecision           `json:"final_decision"`
}

// VerifierOverrode reports whether the final decision differs from the heuristic one.
func (r CallRecord) VerifierOverrode() bool {
	return r.FinalDecision.Intent != r.RuleBased.Intent.Label ||
		r.FinalDecision.Priority != r.RuleBased.Priority
}
