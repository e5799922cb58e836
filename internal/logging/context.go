package logging

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in and out of the server.
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

type requestScope struct {
	id     string
	logger *slog.Logger
}

// WithRequestID stores id and a logger tagged with it in ctx.
func WithRequestID(ctx context.Context, base *slog.Logger, id string) context.Context {
	if base == nil {
		base = slog.Default()
	}
	return context.WithValue(ctx, ctxKey{}, requestScope{
		id:     id,
		logger: base.With(slog.String("request_id", id)),
	})
}

// RequestID returns the id stored by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	scope, _ := ctx.Value(ctxKey{}).(requestScope)
	return scope.id
}

// FromContext returns the request-scoped logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if scope, ok := ctx.Value(ctxKey{}).(requestScope); ok && scope.logger != nil {
		return scope.logger
	}
	return slog.Default()
}

// RequestIDMiddleware reuses a sane inbound X-Request-ID or mints a uuid, echoes
// it on the response and scopes the logger to it.
func RequestIDMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > 64 {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), base, id)))
		})
	}
}
