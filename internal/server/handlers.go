package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/realtime"
	"github.com/vanshika/bizbridge/internal/service"
	"github.com/vanshika/bizbridge/internal/session"
)

type handlers struct {
	logger         *slog.Logger
	market         *service.Marketplace
	hub            *realtime.Hub
	views          *views
	originPatterns []string
	uploadMaxBytes int64
}

func newHandlers(logger *slog.Logger, deps RouterDependencies) *handlers {
	uploadMax := deps.UploadMaxBytes
	if uploadMax <= 0 {
		uploadMax = defaultUploadMaxBytes
	}
	return &handlers{
		logger:         logger,
		market:         deps.Marketplace,
		hub:            deps.Hub,
		views:          mustLoadViews(),
		originPatterns: originPatterns(deps.AllowedOrigins),
		uploadMaxBytes: uploadMax,
	}
}

// session returns the request's session handle. A missing provider is a
// wiring bug and answers 500.
func (h *handlers) session(w http.ResponseWriter, r *http.Request) (session.Handle, bool) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("session unavailable", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return session.Handle{}, false
	}
	return sess, true
}

type userKey struct{}

// currentUser returns the user requireUser admitted, or the session's user
// when the guard did not run. A session without a user, e.g. after a logout
// from another tab, is sent back to the landing page.
func (h *handlers) currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	if user, ok := r.Context().Value(userKey{}).(*domain.User); ok && user != nil {
		return user, true
	}
	sess, ok := h.session(w, r)
	if !ok {
		return nil, false
	}
	if user := sess.State().User(); user != nil {
		return user, true
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil, false
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	var user *domain.User
	if sess, err := session.FromContext(r.Context()); err == nil {
		user = sess.State().User()
	}
	h.render(w, r, http.StatusNotFound, "notfound.html", newPage("Page not found", user, ""), nil)
}

func (h *handlers) apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

// failed logs err and renders the generic error page.
func (h *handlers) failed(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logging.FromContext(r.Context()).Error(msg, "error", err)
	if errors.Is(err, domain.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}
