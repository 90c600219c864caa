package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-oidc-client/oauthmodel"
)

func TestRequireAuth(t *testing.T) {
	f := newFixture(t)
	validToken := f.mintToken(t, jwtlib.MapClaims{
		"sub":      "42",
		"username": "alice",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	decodeError := func(t *testing.T, rec *httptest.ResponseRecorder) oauthmodel.ErrorResponse {
		t.Helper()
		var body oauthmodel.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		return body
	}

	t.Run("no credential is rejected distinctly", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		rec := f.do(req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		require.Equal(t, "unauthorized", body.Error)
		require.Equal(t, "Missing credential", body.Message)
	})

	t.Run("invalid token is rejected distinctly", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "garbage"})
		rec := f.do(req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		require.Equal(t, "unauthorized", body.Error)
		require.Equal(t, "Invalid token", body.Message)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := f.mintToken(t, jwtlib.MapClaims{
			"sub":      "42",
			"username": "alice",
			"exp":      time.Now().Add(-time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: expired})
		rec := f.do(req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid cookie resolves identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: validToken})
		rec := f.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		var user oauthmodel.UserInfo
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		require.Equal(t, int64(42), user.UserID)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("bearer header is equivalent to the cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		rec := f.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		var user oauthmodel.UserInfo
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		require.Equal(t, int64(42), user.UserID)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("non-bearer authorization header counts as missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := f.do(req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Missing credential", decodeError(t, rec).Message)
	})

	t.Run("protected resources read identity from context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/resources/data", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		rec := f.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		var data map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&data))
		require.Contains(t, data["message"], "alice")
	})

	t.Run("health check needs no credential", func(t *testing.T) {
		for _, path := range []string{"/api/auth/health", "/api/health"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := f.do(req)
			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		}
	})
}
