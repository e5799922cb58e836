package server

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/filter"
	"github.com/vanshika/bizbridge/internal/present"
)

const (
	tabDeals   = "deals"
	tabListing = "listing"
)

type dashboardView struct {
	Heading    string
	Subheading string
	Base       string
	Browsing   string
	Tab        string
	Tabs       []tabLink
	Search     string
	Industry   string
	Industries []string
	Categories []categoryLink
	Stats      []stat
	Cards      []profileCard
	Total      int
	Suggestion string
	SuggestURL string
	Selected   *profileCard
	CloseURL   string
	Deals      []dealSummary
	Listing    *listingView
}

type tabLink struct {
	ID     string
	Label  string
	URL    string
	Active bool
}

type categoryLink struct {
	Label  string
	Count  int
	URL    string
	Active bool
}

type stat struct {
	Label string
	Value string
}

type detail struct {
	Label string
	Value string
}

// profileCard is a buyer or seller flattened for the shared card template.
type profileCard struct {
	ID           string
	Name         string
	Company      string
	Industry     string
	Location     string
	Bio          string
	Verification domain.VerificationStatus
	ResponseRate int
	ResponseTime int
	Rating       float64
	Reviews      int
	Headline     string
	Details      []detail
	Tags         []string
	URL          string
}

type dealSummary struct {
	ID        string
	Status    domain.DealStatus
	Industry  string
	Location  string
	Value     float64
	Timeline  string
	Buyer     string
	Seller    string
	UpdatedAt string
	URL       string
}

type listingView struct {
	Company  string
	Industry string
	Location string
	Bio      string
	Deals    int
}

// dashboardQuery is the URL state of a dashboard.
type dashboardQuery struct {
	base     string
	tab      string
	filter   filter.Query
	selected string
}

func parseDashboardQuery(base string, r *http.Request, tabs []string) dashboardQuery {
	q := r.URL.Query()
	tab := q.Get("tab")
	if !contains(tabs, tab) {
		tab = tabs[0]
	}
	return dashboardQuery{
		base: base,
		tab:  tab,
		filter: filter.Query{
			Search:   q.Get("q"),
			Category: filter.ParseCategory(q.Get("category")),
			Industry: q.Get("industry"),
		},
		selected: q.Get("selected"),
	}
}

// url renders q with overrides; empty values are dropped.
func (q dashboardQuery) url(mutate func(*dashboardQuery)) string {
	next := q
	if mutate != nil {
		mutate(&next)
	}
	v := url.Values{}
	if next.tab != "" {
		v.Set("tab", next.tab)
	}
	if next.filter.Search != "" {
		v.Set("q", next.filter.Search)
	}
	if next.filter.Category != "" && next.filter.Category != filter.CategoryAll {
		v.Set("category", string(next.filter.Category))
	}
	if next.filter.Industry != "" {
		v.Set("industry", next.filter.Industry)
	}
	if next.selected != "" {
		v.Set("selected", next.selected)
	}
	if len(v) == 0 {
		return next.base
	}
	return next.base + "?" + v.Encode()
}

func (h *handlers) buyerDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	user := sess.State().User()
	browse := browseTab(domain.RoleBuyer)
	tabs := []string{browse, tabDeals}
	dq := parseDashboardQuery("/dashboard/buyer", r, tabs)

	view := dashboardView{
		Heading:    "Find your next acquisition",
		Subheading: "Browse businesses that match your investment criteria",
		Base:       dq.base,
		Browsing:   browse,
		Tab:        dq.tab,
		Tabs:       tabLinks(dq, tabs),
		Search:     dq.filter.Search,
		Industry:   dq.filter.Industry,
	}

	switch dq.tab {
	case tabDeals:
		if !h.fillDeals(w, r, &view) {
			return
		}
	default:
		res, err := h.market.BrowseSellers(r.Context(), dq.filter)
		if err != nil {
			h.failed(w, r, "browse sellers", err)
			return
		}
		cards := make([]profileCard, 0, len(res.Items))
		for _, s := range res.Items {
			card := sellerCard(s)
			card.URL = dq.url(func(q *dashboardQuery) { q.selected = s.ID })
			cards = append(cards, card)
			if s.ID == dq.selected {
				selected := card
				view.Selected = &selected
			}
		}
		fillListing(&view, dq, res.Counts, res.Industries, res.Suggestion, cards)
		view.Stats = []stat{
			{Label: "Matching businesses", Value: present.Number(res.Total)},
			{Label: "Verified sellers", Value: present.Number(countFor(res.Counts, filter.CategoryVerified))},
			{Label: "Industries", Value: present.Number(len(res.Industries))},
		}
	}

	h.render(w, r, http.StatusOK, "dashboard.html", newPage("Buyer dashboard", user, "Dashboard"), view)
}

func (h *handlers) sellerDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	user := sess.State().User()
	browse := browseTab(domain.RoleSeller)
	tabs := []string{browse, tabDeals, tabListing}
	dq := parseDashboardQuery("/dashboard/seller", r, tabs)

	view := dashboardView{
		Heading:    "Meet qualified buyers",
		Subheading: "Connect with acquirers looking for businesses like yours",
		Base:       dq.base,
		Browsing:   browse,
		Tab:        dq.tab,
		Tabs:       tabLinks(dq, tabs),
		Search:     dq.filter.Search,
		Industry:   dq.filter.Industry,
	}

	switch dq.tab {
	case tabDeals:
		if !h.fillDeals(w, r, &view) {
			return
		}
	case tabListing:
		deals, err := h.market.Deals(r.Context())
		if err != nil {
			h.failed(w, r, "list deals", err)
			return
		}
		view.Listing = &listingView{Deals: len(deals)}
		if user != nil {
			view.Listing.Company = user.Profile.Company
			view.Listing.Industry = user.Profile.Industry
			view.Listing.Location = user.Profile.Location
			view.Listing.Bio = user.Profile.Bio
		}
	default:
		res, err := h.market.BrowseBuyers(r.Context(), dq.filter)
		if err != nil {
			h.failed(w, r, "browse buyers", err)
			return
		}
		cards := make([]profileCard, 0, len(res.Items))
		for _, b := range res.Items {
			card := buyerCard(b)
			card.URL = dq.url(func(q *dashboardQuery) { q.selected = b.ID })
			cards = append(cards, card)
			if b.ID == dq.selected {
				selected := card
				view.Selected = &selected
			}
		}
		fillListing(&view, dq, res.Counts, res.Industries, res.Suggestion, cards)
		view.Stats = []stat{
			{Label: "Interested buyers", Value: present.Number(res.Total)},
			{Label: "High response", Value: present.Number(countFor(res.Counts, filter.CategoryHighResponse))},
			{Label: "Experienced", Value: present.Number(countFor(res.Counts, filter.CategoryExperienced))},
		}
	}

	h.render(w, r, http.StatusOK, "dashboard.html", newPage("Seller dashboard", user, "Dashboard"), view)
}

func fillListing(view *dashboardView, dq dashboardQuery, counts []domain.CategoryCount, industries []string, suggestion string, cards []profileCard) {
	view.Cards = cards
	view.Total = len(cards)
	view.Industries = industries
	view.CloseURL = dq.url(func(q *dashboardQuery) { q.selected = "" })
	for _, c := range counts {
		category := filter.Category(c.Category)
		view.Categories = append(view.Categories, categoryLink{
			Label:  c.Label,
			Count:  c.Count,
			Active: category == dq.filter.Category,
			URL:    dq.url(func(q *dashboardQuery) { q.filter.Category = category; q.selected = "" }),
		})
	}
	if suggestion != "" {
		view.Suggestion = suggestion
		view.SuggestURL = dq.url(func(q *dashboardQuery) { q.filter.Search = suggestion })
	}
}

func (h *handlers) fillDeals(w http.ResponseWriter, r *http.Request, view *dashboardView) bool {
	deals, err := h.market.Deals(r.Context())
	if err != nil {
		h.failed(w, r, "list deals", err)
		return false
	}
	for _, d := range deals {
		view.Deals = append(view.Deals, dealSummary{
			ID:        d.ID,
			Status:    d.Status,
			Industry:  d.Industry,
			Location:  d.Location,
			Value:     d.BusinessValue,
			Timeline:  d.Timeline,
			Buyer:     h.partyName(r.Context(), domain.RoleBuyer, d.BuyerID),
			Seller:    h.partyName(r.Context(), domain.RoleSeller, d.SellerID),
			UpdatedAt: present.Date(d.UpdatedAt),
			URL:       "/dashboard/deals/" + url.PathEscape(d.ID),
		})
	}
	view.Stats = []stat{{Label: "Active deals", Value: present.Number(len(deals))}}
	return true
}

// partyName resolves a deal participant to a display name, falling back to the id.
func (h *handlers) partyName(ctx context.Context, role domain.Role, id string) string {
	switch role {
	case domain.RoleBuyer:
		if b, err := h.market.Buyer(ctx, id); err == nil {
			return b.Name
		}
	case domain.RoleSeller:
		if s, err := h.market.Seller(ctx, id); err == nil {
			return s.Name
		}
	}
	return id
}

// browseTab names the profile listing tab of a role's dashboard.
func browseTab(role domain.Role) string {
	return string(role.Counterpart()) + "s"
}

func tabLinks(dq dashboardQuery, tabs []string) []tabLink {
	out := make([]tabLink, 0, len(tabs))
	for _, id := range tabs {
		out = append(out, tabLink{
			ID:     id,
			Label:  present.Title(id),
			Active: id == dq.tab,
			URL:    dq.url(func(q *dashboardQuery) { q.tab = id; q.selected = "" }),
		})
	}
	return out
}

func buyerCard(b domain.BuyerProfile) profileCard {
	card := counterpartCard(b.Counterpart)
	card.Headline = "Investment range " + present.Range(b.InvestmentRange)
	card.Details = []detail{
		{Label: "Investment range", Value: present.Range(b.InvestmentRange)},
		{Label: "Deal experience", Value: present.Number(b.DealExperience) + " acquisitions"},
		{Label: "Experience", Value: present.Number(b.Experience) + " years"},
		{Label: "Avg. response", Value: present.Number(b.Reputation.AverageResponseTime) + "h"},
	}
	card.Tags = append([]string(nil), b.PreferredIndustries...)
	return card
}

func sellerCard(s domain.SellerProfile) profileCard {
	card := counterpartCard(s.Counterpart)
	card.Headline = "Valued at " + present.CompactCurrency(s.BusinessValue)
	card.Details = []detail{
		{Label: "Business value", Value: present.Currency(s.BusinessValue)},
		{Label: "Annual revenue", Value: present.Currency(s.AnnualRevenue)},
		{Label: "Profit margin", Value: present.Percent(s.ProfitMargin)},
		{Label: "Employees", Value: present.Number(s.EmployeeCount)},
		{Label: "Years in business", Value: present.Number(s.YearsInBusiness)},
		{Label: "Timeline", Value: s.Timeline},
	}
	if s.ReasonForSelling != "" {
		card.Tags = []string{s.ReasonForSelling}
	}
	return card
}

func counterpartCard(c domain.Counterpart) profileCard {
	return profileCard{
		ID:           c.ID,
		Name:         c.Name,
		Company:      c.Company,
		Industry:     c.Industry,
		Location:     c.Location,
		Bio:          c.Bio,
		Verification: c.Verification,
		ResponseRate: c.Reputation.ResponseRate,
		ResponseTime: c.Reputation.AverageResponseTime,
		Rating:       c.Reputation.Rating,
		Reviews:      c.Reputation.Reviews,
	}
}

func countFor(counts []domain.CategoryCount, c filter.Category) int {
	for _, cc := range counts {
		if cc.Category == string(c) {
			return cc.Count
		}
	}
	return 0
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
