package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/realtime"
	"github.com/vanshika/bizbridge/internal/service"
	"github.com/vanshika/bizbridge/internal/session"
	"github.com/vanshika/bizbridge/internal/telemetry"
)

const defaultUploadMaxBytes = 10 << 20

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Health           HealthService
	Marketplace      *service.Marketplace
	Sessions         *session.Store
	Codec            *session.Codec
	Cookie           session.CookieOptions
	Hub              *realtime.Hub
	AllowedOrigins   []string
	AllowCredentials bool
	UploadMaxBytes   int64
}

// NewRouter wires every page, form action, JSON endpoint and the live feed.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	h := newHandlers(logger, deps)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		payload := map[string]any{
			"status": "ok",
		}

		if deps.Health != nil {
			if err := deps.Health.Probe(ctx); err != nil {
				logging.FromContext(r.Context()).Error("health probe failed", "error", err)
				status = http.StatusServiceUnavailable
				payload["status"] = "degraded"
				payload["error"] = err.Error()
			}
		}

		respondJSON(w, status, payload)
	})

	mux.HandleFunc("GET /{$}", h.landing)
	mux.HandleFunc("POST /{$}", h.chooseRole)
	mux.HandleFunc("GET /onboarding", h.onboarding)
	mux.HandleFunc("POST /onboarding", h.onboardingAction)
	mux.HandleFunc("POST /logout", h.logout)
	mux.HandleFunc("/", h.notFound)

	page := h.requireUser
	mux.Handle("GET /dashboard/buyer", page(http.HandlerFunc(h.buyerDashboard)))
	mux.Handle("GET /dashboard/seller", page(http.HandlerFunc(h.sellerDashboard)))
	mux.Handle("GET /dashboard/profile", page(http.HandlerFunc(h.profile)))
	mux.Handle("POST /dashboard/profile", page(http.HandlerFunc(h.profileAction)))
	mux.Handle("GET /dashboard/settings", page(http.HandlerFunc(h.settings)))
	mux.Handle("POST /dashboard/settings", page(http.HandlerFunc(h.settingsAction)))
	mux.Handle("GET /dashboard/deals/{dealId}", page(http.HandlerFunc(h.dealRoom)))
	mux.Handle("POST /dashboard/deals/{dealId}/messages", page(http.HandlerFunc(h.sendMessage)))
	mux.Handle("POST /dashboard/deals/{dealId}/documents", page(http.HandlerFunc(h.uploadDocument)))
	mux.Handle("GET /dashboard/deals/{dealId}/live", page(http.HandlerFunc(h.liveFeed)))
	mux.Handle("/dashboard/", page(http.HandlerFunc(h.notFound)))

	api := h.requireUserJSON
	mux.Handle("GET /api/profiles/buyers", api(http.HandlerFunc(h.apiBuyers)))
	mux.Handle("GET /api/profiles/sellers", api(http.HandlerFunc(h.apiSellers)))
	mux.Handle("GET /api/deals/{dealId}", api(http.HandlerFunc(h.apiDeal)))
	mux.Handle("/api/", api(http.HandlerFunc(h.apiNotFound)))

	handler := telemetry.Middleware(mux)
	handler = session.Provide(deps.Sessions, deps.Codec, deps.Cookie, logger)(handler)
	handler = loggingMiddleware(handler)
	handler = logging.RequestIDMiddleware(logger)(handler)
	if len(deps.AllowedOrigins) > 0 {
		handler = corsMiddleware(deps.AllowedOrigins, deps.AllowCredentials)(handler)
	}
	return handler
}
