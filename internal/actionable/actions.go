package actionable

import "strings"

type trigger struct {
	phrase string
	action string
}

// Evaluated in declaration order; output order follows this table, not the text.
var triggers = []trigger{
	{phrase: "follow up", action: "Follow up with customer"},
	{phrase: "call back", action: "Call customer back"},
	{phrase: "email", action: "Send email to customer"},
}

// ExtractActions returns one action per trigger phrase present in the transcript.
func ExtractActions(transcript string) []string {
	lower := strings.ToLower(transcript)
	actions := []string{}
	for _, t := range triggers {
		if strings.Contains(lower, t.phrase) {
			actions = append(actions, t.action)
		}
	}
	return actions
}
