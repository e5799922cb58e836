package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/present"
)

//go:embed templates/*.html
var templateFS embed.FS

var sharedTemplates = []string{"templates/layout.html", "templates/partials.html"}

type views struct {
	pages map[string]*template.Template
}

func mustLoadViews() *views {
	v, err := loadViews(templateFS)
	if err != nil {
		panic(err)
	}
	return v
}

func loadViews(fsys fs.FS) (*views, error) {
	names, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	v := &views{pages: map[string]*template.Template{}}
	for _, name := range names {
		base := name[len("templates/"):]
		if base == "layout.html" || base == "partials.html" {
			continue
		}
		files := append(append([]string{}, sharedTemplates...), name)
		tmpl, err := template.New("layout.html").Funcs(funcMap()).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", base, err)
		}
		v.pages[base] = tmpl
	}
	return v, nil
}

// page is the data every view receives.
type page struct {
	Title  string
	User   *domain.User
	Nav    []navItem
	Active string
	Body   any
}

type navItem struct {
	Label  string
	Href   string
	Active bool
}

func newPage(title string, user *domain.User, active string) page {
	return page{Title: title, User: user, Nav: navigation(user, active), Active: active}
}

// navigation builds the signed-in menu. Role-segmented entries are left out
// when the user has no valid role.
func navigation(user *domain.User, active string) []navItem {
	if user == nil {
		return nil
	}
	var items []navItem
	if user.Role.Valid() {
		dash := "/dashboard/" + string(user.Role)
		items = append(items,
			navItem{Label: "Dashboard", Href: dash},
			navItem{Label: "Deals", Href: dash + "?tab=deals"},
		)
	}
	items = append(items,
		navItem{Label: "Profile", Href: "/dashboard/profile"},
		navItem{Label: "Settings", Href: "/dashboard/settings"},
	)
	for i := range items {
		items[i].Active = items[i].Label == active
	}
	return items
}

// render executes a page into a buffer first so template errors never leave
// a half-written response.
func (h *handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, p page, body any) {
	tmpl, ok := h.views.pages[name]
	if !ok {
		logging.FromContext(r.Context()).Error("unknown view", "view", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	p.Body = body

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		logging.FromContext(r.Context()).Error("render view", "view", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"currency":      present.Currency,
		"compact":       present.CompactCurrency,
		"moneyRange":    present.Range,
		"number":        present.Number,
		"percent":       present.Percent,
		"ratio":         present.Ratio,
		"confidence":    present.Confidence,
		"initials":      present.Initials,
		"humanize":      func(v any) string { return present.Humanize(fmt.Sprint(v)) },
		"badge":         func(v any) string { return present.Badge(fmt.Sprint(v)) },
		"statusClass":   func(v any) string { return present.StatusClass(fmt.Sprint(v)) },
		"priorityClass": func(v any) string { return present.PriorityClass(fmt.Sprint(v)) },
		"verifiedClass": func(v any) string { return present.VerificationTone(fmt.Sprint(v)).Class() },
		"date":          present.Date,
		"clock":         present.Clock,
		"deref":         func(f *float64) float64 { return *f },
		"isLast":        func(i, n int) bool { return i == n-1 },
		"add":           func(a, b int) int { return a + b },
	}
}
