package storefront

import (
	"net/http"

	"github.com/Anjelho/lindilove/pkg/kit"
)

// consentCookie is the persistent boolean-as-string flag that suppresses
// the one-time consent banner. Name and value match the original storage
// key.
const (
	consentCookie = "lindilove-cookie-accepted"
	consentMaxAge = 365 * 24 * 60 * 60
)

type consentResponse struct {
	Accepted bool `json:"accepted"`
}

func (s *Server) consentGet(w http.ResponseWriter, r *http.Request) {
	accepted := false
	if c, err := r.Cookie(consentCookie); err == nil {
		accepted = c.Value == "true"
	}
	kit.WriteJSON(w, http.StatusOK, consentResponse{Accepted: accepted})
}

func (s *Server) consentSet(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     consentCookie,
		Value:    "true",
		Path:     "/",
		MaxAge:   consentMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
	kit.WriteJSON(w, http.StatusOK, consentResponse{Accepted: true})
}
