package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/present"
	"github.com/vanshika/bizbridge/internal/session"
)

var settingsTabs = []string{"notifications", "privacy", "account", "preferences"}

type profileView struct {
	User    *domain.User
	Editing bool
}

type settingsView struct {
	Tab        string
	Tabs       []tabLink
	Groups     []toggleGroup
	Visibility session.Visibility
	Options    []session.Visibility
	User       *domain.User
}

type toggleGroup struct {
	Title   string
	Toggles []toggle
}

type toggle struct {
	Key         string
	Label       string
	Description string
	Enabled     bool
}

func (h *handlers) profile(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	user := sess.State().User()
	if user == nil {
		h.render(w, r, http.StatusNotFound, "profile.html", newPage("Profile", nil, "Profile"), profileView{})
		return
	}
	view := profileView{User: user, Editing: r.URL.Query().Get("edit") == "1"}
	h.render(w, r, http.StatusOK, "profile.html", newPage("Profile", user, "Profile"), view)
}

// profileAction saves or cancels the edit form. Only posted fields are
// merged; cancel keeps the stored values.
func (h *handlers) profileAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("action") == "save" {
		upd := profileUpdateFromForm(r)
		sess.Update(func(st session.State) session.State { return st.UpdateProfile(upd) })
	}
	http.Redirect(w, r, "/dashboard/profile", http.StatusSeeOther)
}

func profileUpdateFromForm(r *http.Request) domain.ProfileUpdate {
	field := func(name string) *string {
		values, ok := r.PostForm[name]
		if !ok || len(values) == 0 {
			return nil
		}
		v := strings.TrimSpace(values[0])
		return &v
	}
	upd := domain.ProfileUpdate{
		Company:  field("company"),
		Industry: field("industry"),
		Location: field("location"),
		Bio:      field("bio"),
	}
	if raw := field("experience"); raw != nil {
		if n, err := strconv.Atoi(*raw); err == nil && n >= 0 {
			upd.Experience = &n
		}
	}
	return upd
}

func (h *handlers) settings(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.renderSettings(w, r, http.StatusOK, sess.State(), r.URL.Query().Get("tab"))
}

// settingsAction flips one toggle ("toggle" with key) or sets the profile
// visibility ("visibility" with value).
func (h *handlers) settingsAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	tab := r.PostForm.Get("tab")

	var actErr error
	st := sess.Update(func(st session.State) session.State {
		var (
			next session.Settings
			err  error
		)
		switch r.PostForm.Get("action") {
		case "toggle":
			next, err = st.Settings().Toggle(r.PostForm.Get("key"))
		case "visibility":
			next, err = st.Settings().WithVisibility(session.Visibility(r.PostForm.Get("value")))
		default:
			err = session.ErrUnknownSetting
		}
		if err != nil {
			actErr = err
			return st
		}
		return st.WithSettings(next)
	})
	if errors.Is(actErr, session.ErrUnknownSetting) {
		h.renderSettings(w, r, http.StatusBadRequest, st, tab)
		return
	}
	http.Redirect(w, r, "/dashboard/settings?tab="+settingsTab(tab), http.StatusSeeOther)
}

func settingsTab(tab string) string {
	if contains(settingsTabs, tab) {
		return tab
	}
	return settingsTabs[0]
}

func (h *handlers) renderSettings(w http.ResponseWriter, r *http.Request, status int, st session.State, tab string) {
	tab = settingsTab(tab)
	s := st.Settings()
	view := settingsView{
		Tab:        tab,
		Visibility: s.Privacy.ProfileVisibility,
		Options:    []session.Visibility{session.VisibilityPublic, session.VisibilityVerified, session.VisibilityPrivate},
		User:       st.User(),
	}
	for _, id := range settingsTabs {
		view.Tabs = append(view.Tabs, tabLink{ID: id, Label: present.Title(id), URL: "/dashboard/settings?tab=" + id, Active: id == tab})
	}
	on := func(key, label, desc string) toggle {
		return toggle{Key: key, Label: label, Description: desc, Enabled: s.Enabled(key)}
	}
	switch tab {
	case "notifications":
		view.Groups = []toggleGroup{
			{Title: "Channels", Toggles: []toggle{
				on("notifications.email", "Email", "Receive notifications by email"),
				on("notifications.push", "Push", "Browser push notifications"),
				on("notifications.sms", "SMS", "Text messages for urgent updates"),
			}},
			{Title: "Categories", Toggles: []toggle{
				on("notifications.deals", "Deal activity", "New matches and deal status changes"),
				on("notifications.messages", "Messages", "New messages in your deal rooms"),
				on("notifications.updates", "Product updates", "News about the platform"),
			}},
		}
	case "privacy":
		view.Groups = []toggleGroup{
			{Title: "Profile information", Toggles: []toggle{
				on("privacy.showContactInfo", "Show contact info", "Let counterparts see your email and phone"),
				on("privacy.showFinancialInfo", "Show financial info", "Share financial details before an NDA"),
				on("privacy.allowMessages", "Allow messages", "Let any user start a conversation"),
			}},
		}
	}
	h.render(w, r, status, "settings.html", newPage("Settings", st.User(), "Settings"), view)
}
