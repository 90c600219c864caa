package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-oidc-client/exchange"
	"github.com/jrsteele09/go-oidc-client/internal/config"
	"github.com/jrsteele09/go-oidc-client/oauthmodel"
)

// CallbackHandler is the browser-redirect entry point of the login flow.
// It walks a single-request state machine: reject on missing state (CSRF
// protection), exchange the code upstream, then issue the session
// credential set using the configured propagation strategy. All rejections
// redirect to the frontend error route with a query-string error code -
// never a raw error body.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Msg("callback processing failed")
				s.redirectError(w, r, oauthmodel.ErrorCodeInternalError)
			}
		}()

		state := r.URL.Query().Get("state")
		code := r.URL.Query().Get("code")
		errorParam := r.URL.Query().Get("error")

		// Upstream denied the authorization request
		if errorParam != "" {
			log.Warn().Str("error", errorParam).Msg("authorization rejected by upstream")
			s.redirectError(w, r, errorParam)
			return
		}

		// A missing state on the return leg signals an incomplete or
		// forged handshake; no exchange is attempted.
		if s.config.StateValidationEnabled() && state == "" {
			log.Warn().Msg("missing state parameter - potential CSRF")
			s.redirectError(w, r, oauthmodel.ErrorCodeInvalidState)
			return
		}

		if code == "" {
			s.redirectError(w, r, oauthmodel.ErrorCodeInvalidRequest)
			return
		}

		result, err := s.exchange.Exchange(r.Context(), code)
		if err != nil {
			s.redirectError(w, r, oauthmodel.ErrorCodeTokenExchangeFailed)
			return
		}

		switch s.config.GetTokenPropagation() {
		case config.PropagationFragment:
			s.redirectWithFragment(w, r, result, state)
		default:
			s.setSessionCookies(w, result)
			// Only the state travels back in the query string; tokens
			// stay in the HttpOnly cookies
			target := s.config.GetFrontendURL() + FrontendCallbackPath
			if state != "" {
				target += "?state=" + url.QueryEscape(state)
			}
			log.Info().Str("username", result.Username).Msg("session issued via cookies")
			http.Redirect(w, r, target, http.StatusFound)
		}
	}
}

// redirectWithFragment hands the tokens to the frontend in the URL
// fragment. Fragments are never transmitted in HTTP requests; the frontend
// reads and discards them.
func (s *Server) redirectWithFragment(w http.ResponseWriter, r *http.Request, result *exchange.Result, state string) {
	values := url.Values{}
	values.Set("access_token", result.AccessToken)
	if result.IDToken != "" {
		values.Set("id_token", result.IDToken)
	}
	values.Set("username", result.Username)
	if state != "" {
		values.Set("state", state)
	}

	log.Info().Str("username", result.Username).Msg("session issued via URL fragment")
	http.Redirect(w, r, s.config.GetFrontendURL()+FrontendCallbackPath+"#"+values.Encode(), http.StatusFound)
}

func (s *Server) redirectError(w http.ResponseWriter, r *http.Request, errorCode string) {
	http.Redirect(w, r, s.config.GetFrontendURL()+"/?error="+url.QueryEscape(errorCode), http.StatusFound)
}
