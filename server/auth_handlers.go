package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	autherrors "github.com/jrsteele09/go-oidc-client/internal/errors"
	"github.com/jrsteele09/go-oidc-client/oauthmodel"
)

// TokenHandler performs the authorization-code exchange for API callers
// (fragment-mode frontends that hold the code themselves).
func (s *Server) TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req oauthmodel.TokenExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			oauthmodel.WriteError(w, http.StatusBadRequest, oauthmodel.ErrorCodeInvalidRequest, "Malformed request body")
			return
		}

		if req.Code == "" {
			oauthmodel.WriteError(w, http.StatusBadRequest, oauthmodel.ErrorCodeInvalidRequest, "Missing authorization code")
			return
		}

		result, err := s.exchange.Exchange(r.Context(), req.Code)
		if err != nil {
			if autherrors.Is(err, autherrors.ErrInvalidRequest) {
				oauthmodel.WriteError(w, http.StatusBadRequest, oauthmodel.ErrorCodeInvalidRequest, "Missing authorization code")
				return
			}
			oauthmodel.WriteError(w, http.StatusBadRequest, oauthmodel.ErrorCodeInvalidGrant, "Failed to exchange authorization code")
			return
		}

		oauthmodel.WriteJSON(w, http.StatusOK, oauthmodel.TokenResponse{
			AccessToken: result.AccessToken,
			IDToken:     result.IDToken,
			TokenType:   "Bearer",
			ExpiresIn:   result.ExpiresIn,
			Username:    result.Username,
		})
	}
}

// LoginHandler initiates the authorization-code flow: it mints a state
// token and redirects the browser to the upstream authorization endpoint.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.New().String()
		http.Redirect(w, r, s.exchange.AuthCodeURL(state), http.StatusFound)
	}
}

// UserHandler returns the identity resolved by the authentication gate
func (s *Server) UserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			oauthmodel.WriteError(w, http.StatusUnauthorized, oauthmodel.ErrorCodeUnauthorized, "User not authenticated")
			return
		}

		oauthmodel.WriteJSON(w, http.StatusOK, oauthmodel.UserInfo{
			UserID:   identity.UserID,
			Username: identity.Username,
		})
	}
}

// HealthHandler is the liveness probe
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		oauthmodel.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// LogoutHandler clears the session cookies. Stateless: there is nothing to
// revoke server-side.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.clearSessionCookies(w)
		log.Info().Msg("user logged out, cookies cleared")
		oauthmodel.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}
