package middleware

import (
	"context"
	"net/http"
	"time"
)

// SessionHeader carries the session id for clients that do not keep cookies.
const SessionHeader = "X-Session-ID"

type sessionKey struct{}

// SessionStore is the part of the session store the middleware needs.
type SessionStore interface {
	Exists(id string) bool
	Create() string
}

// Session resolves the caller's session from the X-Session-ID header or the
// session cookie, starting a new one when neither names a live session.
// The resolved id is echoed in both the header and the cookie.
func Session(store SessionStore, cookieName string, ttl time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				if c, err := r.Cookie(cookieName); err == nil {
					id = c.Value
				}
			}

			if id == "" || !store.Exists(id) {
				id = store.Create()
			}

			w.Header().Set(SessionHeader, id)
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session resolved by the Session middleware.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// EndSession replaces the session cookie set by the Session middleware with
// an expired one and drops the echoed id header.
func EndSession(w http.ResponseWriter, cookieName string) {
	w.Header().Del(SessionHeader)
	w.Header().Del("Set-Cookie")
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
