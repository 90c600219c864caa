package config

import (
	"fmt"
	"net/http"
)

// PropagationMode selects how tokens reach the browser after a successful
// callback exchange.
type PropagationMode string

const (
	// PropagationCookie stores tokens in HttpOnly cookies; the frontend
	// never sees the raw token.
	PropagationCookie PropagationMode = "cookie"
	// PropagationFragment hands tokens to the frontend in the redirect URL
	// fragment; fragments are never transmitted back to any server.
	PropagationFragment PropagationMode = "fragment"
)

// SessionConfig describes how session credentials are issued to the browser
// and how the callback handshake is policed.
type SessionConfig interface {
	GetFrontendURL() string
	GetTokenPropagation() PropagationMode
	StateValidationEnabled() bool
	GetCookieMaxAge() int
	CookiesSecure() bool
	GetCookieSameSite() http.SameSite
}

type Session struct {
	FrontendURL    string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	Propagation    string `env:"TOKEN_PROPAGATION" envDefault:"cookie"`
	RequireState   bool   `env:"REQUIRE_STATE" envDefault:"true"`
	CookieMaxAge   int    `env:"COOKIE_MAX_AGE" envDefault:"3600"`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CookieSameSite string `env:"COOKIE_SAMESITE" envDefault:"lax"`
}

var _ SessionConfig = Session{}

func (s Session) validate() error {
	switch PropagationMode(s.Propagation) {
	case PropagationCookie, PropagationFragment:
		return nil
	}
	return fmt.Errorf("unknown TOKEN_PROPAGATION %q", s.Propagation)
}

func (s Session) GetFrontendURL() string {
	return s.FrontendURL
}

func (s Session) GetTokenPropagation() PropagationMode {
	return PropagationMode(s.Propagation)
}

// StateValidationEnabled reports whether a callback without a state
// parameter is rejected before any exchange is attempted.
func (s Session) StateValidationEnabled() bool {
	return s.RequireState
}

func (s Session) GetCookieMaxAge() int {
	return s.CookieMaxAge
}

func (s Session) CookiesSecure() bool {
	return s.CookieSecure
}

func (s Session) GetCookieSameSite() http.SameSite {
	switch s.CookieSameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
