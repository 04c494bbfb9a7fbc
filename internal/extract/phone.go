package extract

import "strings"

// NormalizePhone cleans a raw phone match and canonicalizes it to a
// '+'-prefixed digit string. Ten-digit Indian mobile numbers (leading digit
// 6-9) gain a +91 prefix; numbers already carrying the 91 country code gain
// a bare '+'. Anything that cannot be canonicalized, including values
// carrying an exponent marker from a prior numeric corruption, is rejected.
func NormalizePhone(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "eE") {
		return "", false
	}

	hadPlus := strings.HasPrefix(s, "+")

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if len(digits) < 10 {
		return "", false
	}

	switch {
	case hadPlus:
		return "+" + digits, true
	case len(digits) == 10 && digits[0] >= '6' && digits[0] <= '9':
		return "+91" + digits, true
	case strings.HasPrefix(digits, "91") && len(digits) >= 12:
		return "+" + digits, true
	}
	return "", false
}
