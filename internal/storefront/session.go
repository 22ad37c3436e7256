package storefront

import (
	"net/http"

	"github.com/google/uuid"
)

// sessionCookie identifies one browsing session; the catalog cache is keyed
// by it, so each session carries its own TTL window.
const sessionCookie = "ll_session"

// cacheKeyPrefix matches the storage key of the original storefront.
const cacheKeyPrefix = "lindilove-store-cache"

// withSession ensures every catalog request carries a session cookie,
// minting one when the browser shows up without it.
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(sessionCookie); err != nil {
			c := &http.Cookie{
				Name:     sessionCookie,
				Value:    uuid.NewString(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			http.SetCookie(w, c)
			r.AddCookie(c)
		}
		next.ServeHTTP(w, r)
	})
}

// cacheKey scopes the catalog cache to the request's session.
func cacheKey(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return cacheKeyPrefix
	}
	return cacheKeyPrefix + ":" + c.Value
}
