package extractor

import "strings"

// MaskStyle controls how a numeric identifier is rendered.
type MaskStyle int

const (
	// MaskNone returns the digits verbatim.
	MaskNone MaskStyle = iota
	// MaskLast4 renders "****" followed by the last four digits.
	MaskLast4
	// MaskCardLast4 renders "**** **** **** " followed by the last four digits.
	MaskCardLast4
)

// MaskPolicy is the single place that decides masking per identifier kind.
type MaskPolicy struct {
	Phone   MaskStyle
	Account MaskStyle
	Card    MaskStyle
}

// DefaultMaskPolicy leaves phone numbers readable and masks accounts and cards.
func DefaultMaskPolicy() MaskPolicy {
	return MaskPolicy{
		Phone:   MaskNone,
		Account: MaskLast4,
		Card:    MaskCardLast4,
	}
}

// Apply renders digits according to the style.
func (s MaskStyle) Apply(digits string) string {
	if digits == "" {
		return ""
	}
	switch s {
	case MaskLast4:
		return "****" + lastN(digits, 4)
	case MaskCardLast4:
		return strings.Repeat("**** ", 3) + lastN(digits, 4)
	default:
		return digits
	}
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
