package filter

import (
	"testing"

	"github.com/vanshika/bizbridge/internal/domain"
)

func buyer(id, name, company, industry string, verification domain.VerificationStatus, responseRate, deals int) domain.BuyerProfile {
	return domain.BuyerProfile{
		Counterpart: domain.Counterpart{
			ID:           id,
			Name:         name,
			Company:      company,
			Industry:     industry,
			Verification: verification,
			Reputation:   domain.Reputation{ResponseRate: responseRate},
		},
		DealExperience: deals,
	}
}

func testBuyers() []domain.BuyerProfile {
	return []domain.BuyerProfile{
		buyer("1", "Sarah Chen", "Tech Ventures LLC", "Technology", domain.VerificationVerified, 95, 3),
		buyer("2", "Michael Rodriguez", "Green Solutions Inc", "Healthcare", domain.VerificationVerified, 88, 5),
		buyer("3", "Jennifer Park", "Retail Partners Group", "Retail", domain.VerificationPending, 92, 2),
		buyer("4", "David Thompson", "Manufacturing Capital", "Manufacturing", domain.VerificationUnverified, 85, 10),
	}
}

func ids(items []domain.BuyerProfile) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRunCategories(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "all", query: Query{Category: CategoryAll}, want: []string{"1", "2", "3", "4"}},
		{name: "verified", query: Query{Category: CategoryVerified}, want: []string{"1", "2"}},
		{name: "high response", query: Query{Category: CategoryHighResponse}, want: []string{"1", "3"}},
		{name: "experienced", query: Query{Category: CategoryExperienced}, want: []string{"1", "2", "4"}},
		{name: "unknown falls back to all", query: Query{Category: "bogus"}, want: []string{"1", "2", "3", "4"}},
		{name: "search is case insensitive", query: Query{Search: "TECH"}, want: []string{"1"}},
		{name: "search matches industry", query: Query{Search: "health"}, want: []string{"2"}},
		{name: "search and filter are anded", query: Query{Search: "a", Category: CategoryVerified}, want: []string{"1", "2"}},
		{name: "search excluded by filter", query: Query{Search: "Park", Category: CategoryVerified}, want: []string{}},
		{name: "industry", query: Query{Industry: "retail"}, want: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(testBuyers(), tt.query)
			if got := ids(res.Items); !equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if res.Total != len(tt.want) {
				t.Fatalf("expected total %d, got %d", len(tt.want), res.Total)
			}
		})
	}
}

func TestRunCounts(t *testing.T) {
	res := Run(testBuyers(), Query{Search: "sarah"})
	want := map[string]int{"all": 4, "verified": 2, "high-response": 2, "experienced": 3}
	for _, c := range res.Counts {
		if want[c.Category] != c.Count {
			t.Errorf("category %s: expected %d, got %d", c.Category, want[c.Category], c.Count)
		}
	}
	if len(res.Counts) != len(Categories) {
		t.Fatalf("expected %d counts, got %d", len(Categories), len(res.Counts))
	}
}

func TestSuggest(t *testing.T) {
	res := Run(testBuyers(), Query{Search: "Sarha"})
	if res.Total != 0 {
		t.Fatalf("expected no matches, got %d", res.Total)
	}
	if res.Suggestion != "Sarah Chen" {
		t.Fatalf("expected suggestion Sarah Chen, got %q", res.Suggestion)
	}
	if got := Suggest(testBuyers(), "zzzzzzzzzz"); got != "" {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}

func TestAllWithNoPredicates(t *testing.T) {
	keep := All[int]()
	if !keep(1) {
		t.Fatalf("expected empty conjunction to match")
	}
	even := Predicate[int](func(n int) bool { return n%2 == 0 })
	positive := Predicate[int](func(n int) bool { return n > 0 })
	got := Apply([]int{-2, -1, 0, 1, 2, 4}, All(even, positive))
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("expected [2 4], got %v", got)
	}
}

func TestIndustries(t *testing.T) {
	got := Industries(testBuyers())
	if len(got) != 4 || got[0] != "Technology" {
		t.Fatalf("unexpected industries %v", got)
	}
}
