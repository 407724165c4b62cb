package validation

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// maxSummaryLen bounds free-text summaries stored in activity rows.
const maxSummaryLen = 4000

// NormalizePhone reduces a phone number to E.164 form for directory lookups.
// Ten-digit numbers are assumed to be US and get a +1 prefix.
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	switch {
	case digits == "":
		return ""
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	case len(digits) == 10:
		return "+1" + digits
	default:
		return "+" + digits
	}
}

// ValidatePhone checks that a phone number carries at least a plausible
// number of digits.
func ValidatePhone(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= 7 && len(digits) <= 15
}

// ClampDuration rejects out-of-range durations at the boundary. Negative
// values become zero so they never propagate further in.
func ClampDuration(ms int) int {
	if ms < 0 {
		return 0
	}
	return ms
}

// TruncateSummary bounds a free-text summary for storage.
func TruncateSummary(s string) string {
	if len(s) <= maxSummaryLen {
		return s
	}
	return s[:maxSummaryLen]
}
