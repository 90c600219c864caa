package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-oidc-client/oauthmodel"
	"github.com/jrsteele09/go-oidc-client/token/jwt"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyIdentity stores the authenticated identity for the request
const ContextKeyIdentity ContextKey = "identity"

// IdentityFromContext returns the identity attached by RequireAuth, if any
func IdentityFromContext(ctx context.Context) (*jwt.Identity, bool) {
	identity, ok := ctx.Value(ContextKeyIdentity).(*jwt.Identity)
	return identity, ok
}

// RequireAuth is the per-request authentication gate. It extracts a
// candidate credential - the access_token cookie first, then a Bearer
// Authorization header - verifies it fresh (no caching across requests),
// and attaches the resolved identity to the request context. The two
// sources exist because the service supports both cookie and fragment
// token propagation and must accept whichever was used to issue the
// session.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, found := extractCredential(r)
			if !found {
				log.Debug().Str("path", r.URL.Path).Msg("no credential in cookie or Authorization header")
				oauthmodel.WriteError(w, http.StatusUnauthorized, oauthmodel.ErrorCodeUnauthorized, "Missing credential")
				return
			}

			identity, err := s.verifier.Verify(token)
			if err != nil {
				oauthmodel.WriteError(w, http.StatusUnauthorized, oauthmodel.ErrorCodeUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next(w, r.WithContext(ctx))
		}
	}
}

// extractCredential looks for an access token in the request. Cookie takes
// precedence over the Authorization header.
func extractCredential(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(accessTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
