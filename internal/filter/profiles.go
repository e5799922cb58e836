package filter

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vanshika/bizbridge/internal/domain"
)

// Profile is what the dashboard predicates need from a buyer or seller.
type Profile interface {
	Base() domain.Counterpart
	DealCount() int
}

// Category names a mutually exclusive dashboard filter.
type Category string

const (
	CategoryAll          Category = "all"
	CategoryVerified     Category = "verified"
	CategoryHighResponse Category = "high-response"
	CategoryExperienced  Category = "experienced"
)

const (
	highResponseRate   = 90
	experiencedDeals   = 3
	maxSuggestDistance = 3
)

// Categories lists the filters in display order.
var Categories = []Category{CategoryAll, CategoryVerified, CategoryHighResponse, CategoryExperienced}

// ParseCategory maps unknown values to CategoryAll.
func ParseCategory(v string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range Categories {
		if c == known {
			return c
		}
	}
	return CategoryAll
}

// Label is the human-readable filter name.
func (c Category) Label() string {
	switch c {
	case CategoryVerified:
		return "Verified"
	case CategoryHighResponse:
		return "High Response"
	case CategoryExperienced:
		return "Experienced"
	default:
		return "All"
	}
}

// Query is the dashboard search state.
type Query struct {
	Search   string
	Category Category
	Industry string
}

// Search matches a case-insensitive substring of name, company or industry.
// An empty term matches everything.
func Search[P Profile](term string) Predicate[P] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(p P) bool {
		if term == "" {
			return true
		}
		b := p.Base()
		return strings.Contains(strings.ToLower(b.Name), term) ||
			strings.Contains(strings.ToLower(b.Company), term) ||
			strings.Contains(strings.ToLower(b.Industry), term)
	}
}

// InCategory implements the mutually exclusive category filters.
func InCategory[P Profile](c Category) Predicate[P] {
	return func(p P) bool {
		switch c {
		case CategoryVerified:
			return p.Base().Verified()
		case CategoryHighResponse:
			return p.Base().Reputation.ResponseRate >= highResponseRate
		case CategoryExperienced:
			return p.DealCount() >= experiencedDeals
		default:
			return true
		}
	}
}

// InIndustry matches the industry case-insensitively. An empty industry matches everything.
func InIndustry[P Profile](industry string) Predicate[P] {
	industry = strings.TrimSpace(industry)
	return func(p P) bool {
		return industry == "" || strings.EqualFold(p.Base().Industry, industry)
	}
}

// Matching builds the combined predicate for q.
func Matching[P Profile](q Query) Predicate[P] {
	return All(Search[P](q.Search), InCategory[P](q.Category), InIndustry[P](q.Industry))
}

// Run filters profiles by q and tallies each category over the full list.
func Run[P Profile](profiles []P, q Query) domain.ListResult[P] {
	q.Category = ParseCategory(string(q.Category))
	items := Apply(profiles, Matching[P](q))

	counts := make([]domain.CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		counts = append(counts, domain.CategoryCount{
			Category: string(c),
			Label:    c.Label(),
			Count:    Count(profiles, InCategory[P](c)),
		})
	}

	res := domain.ListResult[P]{
		Items:      items,
		Total:      len(items),
		Counts:     counts,
		Industries: Industries(profiles),
	}
	if len(items) == 0 {
		res.Suggestion = Suggest(profiles, q.Search)
	}
	return res
}

// Industries returns the distinct industries of profiles in first-seen order.
func Industries[P Profile](profiles []P) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range profiles {
		ind := p.Base().Industry
		if _, ok := seen[ind]; ok || ind == "" {
			continue
		}
		seen[ind] = struct{}{}
		out = append(out, ind)
	}
	return out
}

// Suggest returns the name, company or industry closest to term, or "" when
// nothing is within a small edit distance.
func Suggest[P Profile](profiles []P, term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, p := range profiles {
		b := p.Base()
		for _, candidate := range []string{b.Name, b.Company, b.Industry} {
			if candidate == "" {
				continue
			}
			d := closestWord(term, candidate)
			if d < bestDist {
				best, bestDist = candidate, d
			}
		}
	}
	return best
}

// closestWord compares term with the whole candidate and each of its words.
func closestWord(term, candidate string) int {
	lower := strings.ToLower(candidate)
	best := levenshtein.ComputeDistance(term, lower)
	for _, word := range strings.Fields(lower) {
		if d := levenshtein.ComputeDistance(term, word); d < best {
			best = d
		}
	}
	return best
}
