package server

import (
	"net/http"
	"time"

	"github.com/jrsteele09/go-oidc-client/oauthmodel"
)

// Example protected resources. Identity comes exclusively from the request
// context populated by the authentication gate.

func (s *Server) ResourceProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			oauthmodel.WriteError(w, http.StatusUnauthorized, oauthmodel.ErrorCodeUnauthorized, "User not authenticated")
			return
		}

		oauthmodel.WriteJSON(w, http.StatusOK, map[string]any{
			"userId":    identity.UserID,
			"username":  identity.Username,
			"email":     identity.Username + "@example.com",
			"role":      "user",
			"createdAt": "2025-01-01T00:00:00Z",
		})
	}
}

func (s *Server) ResourceDataHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			oauthmodel.WriteError(w, http.StatusUnauthorized, oauthmodel.ErrorCodeUnauthorized, "User not authenticated")
			return
		}

		oauthmodel.WriteJSON(w, http.StatusOK, map[string]any{
			"message":   "This is protected data for user: " + identity.Username,
			"timestamp": time.Now().UnixMilli(),
			"items":     []string{"item1", "item2", "item3"},
		})
	}
}
