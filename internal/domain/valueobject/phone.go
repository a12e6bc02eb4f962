package valueobject

import "strings"

// maxPhoneDigits caps Brazilian mobile numbers (2-digit area code + 9
// digits).
const maxPhoneDigits = 11

// MaskPhoneBR progressively formats a Brazilian WhatsApp number as
// "(DD) NNNNN-NNNN" while it is being typed. Partial input yields the
// longest prefix of the mask; input beyond 11 digits is truncated. It never
// fails.
func MaskPhoneBR(text string) string {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > maxPhoneDigits {
		d = d[:maxPhoneDigits]
	}

	switch {
	case len(d) < 2:
		return d
	case len(d) < 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}
