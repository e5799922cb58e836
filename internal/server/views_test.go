package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/session"
)

func TestLoadViewsParsesEveryPage(t *testing.T) {
	v, err := loadViews(templateFS)
	if err != nil {
		t.Fatalf("load views: %v", err)
	}
	for _, name := range []string{"landing.html", "onboarding.html", "dashboard.html", "deal.html", "profile.html", "settings.html", "notfound.html"} {
		if _, ok := v.pages[name]; !ok {
			t.Fatalf("expected page %s to be loaded", name)
		}
	}
	if _, ok := v.pages["layout.html"]; ok {
		t.Fatalf("layout must not be a standalone page")
	}
}

func TestNavigationOmitsRoleLinksWithoutRole(t *testing.T) {
	items := navigation(&domain.User{Name: "No Role"}, "Profile")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if strings.HasPrefix(it.Href, "/dashboard/buyer") || strings.HasPrefix(it.Href, "/dashboard/seller") {
			t.Fatalf("unexpected role link %s", it.Href)
		}
	}
	if !items[0].Active {
		t.Fatalf("expected profile to be active")
	}

	items = navigation(&domain.User{Role: domain.RoleSeller}, "Dashboard")
	if items[0].Href != "/dashboard/seller" || !items[0].Active {
		t.Fatalf("unexpected dashboard item %+v", items[0])
	}
	if items[1].Href != "/dashboard/seller?tab=deals" {
		t.Fatalf("unexpected deals item %+v", items[1])
	}

	if navigation(nil, "") != nil {
		t.Fatalf("expected no navigation for anonymous visitors")
	}
}

func TestProfileWithoutUserRendersNotFound(t *testing.T) {
	h := newHandlers(discardLogger(), RouterDependencies{})
	store := session.NewStore(time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/profile", nil)
	req = req.WithContext(session.WithHandle(req.Context(), session.NewHandle(store, "anonymous")))
	rec := httptest.NewRecorder()
	h.profile(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Fatalf("expected not found message")
	}
}

func TestBrowseTabShowsCounterparts(t *testing.T) {
	if got := browseTab(domain.RoleBuyer); got != "sellers" {
		t.Fatalf("expected buyers to browse sellers, got %q", got)
	}
	if got := browseTab(domain.RoleSeller); got != "buyers" {
		t.Fatalf("expected sellers to browse buyers, got %q", got)
	}
}
