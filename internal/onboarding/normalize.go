package onboarding

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonDigitRegex   = regexp.MustCompile(`[^\d+]+`)
)

// normalizeAnswer canonicalises raw form input for a question. It never
// rejects a value; an answer that normalizes to "" simply counts as missing.
func normalizeAnswer(q Question, raw string) string {
	switch {
	case q.ID == "email":
		return normalizeEmail(raw)
	case q.ID == "phone":
		return normalizePhone(raw)
	case q.Kind == KindTextarea:
		return strings.TrimSpace(raw)
	default:
		return sanitizeString(raw)
	}
}

// normalizeEmail lowercases and trims the provided email.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// normalizePhone strips punctuation but keeps a leading plus sign.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	phone = strings.ReplaceAll(nonDigitRegex.ReplaceAllString(phone, ""), "+", "")
	if phone == "" {
		return ""
	}
	if plus {
		return "+" + phone
	}
	return phone
}

// sanitizeString collapses whitespace and trims the result.
func sanitizeString(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// atoiOrZero parses a numeric answer, falling back to zero.
func atoiOrZero(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
