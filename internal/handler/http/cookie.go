package http

import (
	"net/http"
	"time"
)

// sessionCookieName is the cookie carrying the opaque user id between the
// browser and the server. The id is the only session state there is.
const sessionCookieName = "userId"

// setSessionCookie issues the session cookie for the given user id.
// SameSite=None lets browser clients on another origin send it, which is
// also why Secure stays on everywhere except explicit local runs.
func (h *Handler) setSessionCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    userID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   !h.insecureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie expires the session cookie. The attributes must match
// the ones used at issue time or browsers keep the old cookie around.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.insecureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}

// sessionIDFromRequest extracts the session id from the request cookie.
// A missing cookie yields the empty string, which the service treats as an
// anonymous caller.
func sessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
