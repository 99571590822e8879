// Package extractor pulls customer identifiers out of a call transcript.
//
// Name detection tries "my name is", "this is" and "i am" in that order and is
// prone to false positives on conversational filler ("this is a complaint").
// Numeric searches run independently over the whole transcript, so the
// account pattern can also match the leading digits of a card number.
package extractor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"call-intelligence-go/internal/types"
)

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my name is ([a-z ]+)`),
	regexp.MustCompile(`(?i)this is ([a-z ]+)`),
	regexp.MustCompile(`(?i)i am ([a-z ]+)`),
}

var (
	phonePattern   = regexp.MustCompile(`\b\d{10}\b`)
	accountPattern = regexp.MustCompile(`\d{9,14}`)
	cardPattern    = regexp.MustCompile(`\b\d{16}\b`)
)

// Extractor pulls customer identifiers out of a transcript and masks them per Policy.
type Extractor struct {
	Policy MaskPolicy
}

// New returns an Extractor using policy.
func New(policy MaskPolicy) Extractor {
	return Extractor{Policy: policy}
}

// ExtractIdentifiers uses DefaultMaskPolicy.
func ExtractIdentifiers(transcript string) types.CustomerIdentifiers {
	return New(DefaultMaskPolicy()).Extract(transcript)
}

// Extract returns the first match of each identifier kind. Absent kinds are empty.
func (e Extractor) Extract(transcript string) types.CustomerIdentifiers {
	return types.CustomerIdentifiers{
		Name:          extractName(transcript),
		PhoneNumber:   e.Policy.Phone.Apply(phonePattern.FindString(transcript)),
		AccountNumber: e.Policy.Account.Apply(accountPattern.FindString(transcript)),
		CardNumber:    e.Policy.Card.Apply(cardPattern.FindString(transcript)),
	}
}

func extractName(transcript string) string {
	for _, p := range namePatterns {
		m := p.FindStringSubmatch(transcript)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if i := strings.Index(name, "."); i >= 0 {
			name = strings.TrimSpace(name[:i])
		}
		if name == "" {
			continue
		}
		// Caser is stateful, one per call.
		return cases.Title(language.English).String(name)
	}
	return ""
}
