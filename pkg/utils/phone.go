package utils

import "strings"

// NormalizePhone strips formatting from a Brazilian phone number and
// prefixes the country code, e.g. "(33) 99988-7766" -> "+5533999887766".
// Numbers that already carry the 55 prefix are not double-prefixed.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if d == "" {
		return ""
	}

	// 12+ digits starting with 55 means the country code is already there
	if len(d) >= 12 && strings.HasPrefix(d, "55") {
		return "+" + d
	}

	return "+55" + d
}
