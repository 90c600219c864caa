package server

import (
	"net/http"

	"github.com/jrsteele09/go-oidc-client/exchange"
)

const (
	// accessTokenCookieName is also the cookie the authentication gate reads
	accessTokenCookieName = "access_token"
	idTokenCookieName     = "id_token"
	usernameCookieName    = "username"
)

// setSessionCookies issues the session credential set. Access and ID tokens
// are HttpOnly so page script can never read them; the username cookie is
// script-readable for UI display. Lifetime is bounded by the configured
// max-age - there is no server-side session to expire.
func (s *Server) setSessionCookies(w http.ResponseWriter, result *exchange.Result) {
	maxAge := s.config.GetCookieMaxAge()

	s.setCookie(w, accessTokenCookieName, result.AccessToken, maxAge, true)
	if result.IDToken != "" {
		s.setCookie(w, idTokenCookieName, result.IDToken, maxAge, true)
	}
	s.setCookie(w, usernameCookieName, result.Username, maxAge, false)
}

// clearSessionCookies overwrites each session cookie with an empty value
// and an expired max-age, instructing the browser to delete it. The
// upstream token itself is untouched - this RP has no revocation
// capability.
func (s *Server) clearSessionCookies(w http.ResponseWriter) {
	s.setCookie(w, accessTokenCookieName, "", -1, true)
	s.setCookie(w, idTokenCookieName, "", -1, true)
	s.setCookie(w, usernameCookieName, "", -1, false)
}

func (s *Server) setCookie(w http.ResponseWriter, name, value string, maxAge int, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   s.config.CookiesSecure(),
		SameSite: s.config.GetCookieSameSite(),
	})
}
