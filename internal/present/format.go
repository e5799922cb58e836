// Package present holds formatting helpers shared by the HTML views.
package present

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vanshika/bizbridge/internal/domain"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders a whole-dollar amount with grouping, e.g. "$2,500,000".
func Currency(amount float64) string {
	return printer.Sprintf("$%d", int64(math.Round(amount)))
}

// CompactCurrency renders "$2.5M", "$500K" or "$750".
func CompactCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%dK", int64(math.Round(amount/1_000)))
	default:
		return Currency(amount)
	}
}

// Range renders a compact money range.
func Range(r domain.MoneyRange) string {
	return CompactCurrency(r.Min) + " - " + CompactCurrency(r.Max)
}

// Number renders an integer with grouping.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Percent renders n as "95%".
func Percent(n int) string {
	return fmt.Sprintf("%d%%", n)
}

// Ratio renders done/total as a whole percentage; zero totals render as 0%.
func Ratio(done, total int) string {
	if total == 0 {
		return "0%"
	}
	return Percent(done * 100 / total)
}

// Confidence renders a 0..1 score as a percentage.
func Confidence(score float64) string {
	return Percent(int(math.Round(score * 100)))
}

// Humanize turns "in_progress" into "in progress".
func Humanize(v string) string {
	return strings.ReplaceAll(v, "_", " ")
}

// Badge is the upper-case status label shown in the deal header.
func Badge(v string) string {
	return strings.ToUpper(Humanize(v))
}

// Date renders a calendar date.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// Clock renders a time of day.
func Clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("3:04 PM")
}

// Initials returns up to two upper-case initials of name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// Title capitalizes each word, e.g. "due_diligence" -> "Due Diligence".
// Casers keep state, so each call builds its own.
func Title(v string) string {
	return cases.Title(language.AmericanEnglish).String(Humanize(v))
}
