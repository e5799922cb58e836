package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vanshika/bizbridge/internal/domain"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// sanitizeString collapses whitespace and trims the result.
func sanitizeString(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// normalizeIndustry title-cases all-lowercase industry names. Values that
// already carry capitals ("SaaS") are kept as written.
func normalizeIndustry(value string) string {
	value = sanitizeString(value)
	if value == "" || strings.ToLower(value) != value {
		return value
	}
	return cases.Title(language.AmericanEnglish).String(value)
}

// normalizeVerification maps unknown statuses to unverified.
func normalizeVerification(value string) domain.VerificationStatus {
	switch v := domain.VerificationStatus(strings.ToLower(sanitizeString(value))); v {
	case domain.VerificationVerified, domain.VerificationPending:
		return v
	default:
		return domain.VerificationUnverified
	}
}

// normalizeCategory maps free-form document categories onto the known set.
func normalizeCategory(value string) domain.DocumentCategory {
	switch c := domain.DocumentCategory(strings.ToLower(sanitizeString(value))); c {
	case domain.DocumentFinancial, domain.DocumentLegal, domain.DocumentOperational:
		return c
	default:
		return domain.DocumentOther
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
