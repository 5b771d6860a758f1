package middleware

import (
	"context"
	"net/http"
	"time"

	"productpuppy/internal/domain"
	"productpuppy/pkg/logger"
	"productpuppy/pkg/utils"
)

const (
	SessionCookieName = "pp_session"
	sessionIDHeader   = "X-Session-ID"
)

// SessionMiddleware attaches a page-view session to every request. A missing,
// forged or expired cookie silently starts a fresh session with default state.
func SessionMiddleware(sessions domain.SessionUsecase, ttl time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := ""
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				if id, err := utils.ValidateSessionToken(cookie.Value); err == nil {
					requested = id
				}
			}

			id, _, err := sessions.Resolve(r.Context(), requested)
			if err != nil {
				logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to resolve session")
				utils.WriteError(w, http.StatusInternalServerError, "session unavailable")
				return
			}

			// Refresh the cookie on every request so it tracks the sliding TTL.
			token, err := utils.GenerateSessionToken(id, ttl)
			if err != nil {
				logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to sign session token")
				utils.WriteError(w, http.StatusInternalServerError, "session unavailable")
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(sessionIDHeader, id)

			reqLogger := logger.WithSessionID(*logger.WithContext(r.Context()), id)
			ctx := logger.NewContext(r.Context(), &reqLogger)
			ctx = context.WithValue(ctx, domain.SessionContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session attached by SessionMiddleware.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(domain.SessionContextKey).(string)
	return id, ok && id != ""
}
