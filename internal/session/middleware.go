package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Provide resolves the session cookie, issuing a new one when it is missing or
// invalid, and stores the session handle in the request context.
func Provide(store *Store, codec *Codec, opts CookieOptions, logger *slog.Logger) func(http.Handler) http.Handler {
	if opts.Name == "" {
		opts.Name = "bizbridge_session"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, issue := resolve(r, codec, opts, logger)
			if issue {
				token, err := codec.Encode(sid)
				if err != nil {
					logger.Error("issue session cookie", "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				cookie := &http.Cookie{
					Name:     opts.Name,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				}
				if opts.TTL > 0 {
					cookie.MaxAge = int(opts.TTL.Seconds())
				}
				http.SetCookie(w, cookie)
			}
			store.Touch(sid)
			ctx := WithHandle(r.Context(), NewHandle(store, sid))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolve returns the session id for r and whether a cookie must be (re)issued.
func resolve(r *http.Request, codec *Codec, opts CookieOptions, logger *slog.Logger) (string, bool) {
	c, err := r.Cookie(opts.Name)
	if err != nil {
		return uuid.NewString(), true
	}
	tok, err := codec.Decode(c.Value)
	if err != nil {
		logger.Debug("discarding session cookie", "error", err)
		return uuid.NewString(), true
	}
	refresh := opts.TTL > 0 && codec.now().Sub(tok.IssuedAt) > opts.TTL/2
	return tok.SessionID, refresh
}
