package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-oidc-client/exchange"
	"github.com/jrsteele09/go-oidc-client/internal/config"
	"github.com/jrsteele09/go-oidc-client/server"
	"github.com/jrsteele09/go-oidc-client/token/jwt"
	"github.com/jrsteele09/go-oidc-client/token/keys"
)

const (
	testSecret      = "this-is-a-test-secret-key-with-enough-length-for-hs256"
	testCode        = "SplxlOBeZQQYbYS6WxSbIA"
	testState       = "random-state-value"
	testFrontendURL = "http://localhost:5173"
)

// testConfig satisfies config.Config from plain struct values
type testConfig struct {
	config.EnvVars
	config.Oidc
	config.Session
	config.Cors
}

// fakeUpstream is a stand-in identity-provider token endpoint
type fakeUpstream struct {
	server  *httptest.Server
	calls   atomic.Int64
	status  int
	token   string
	idToken string
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	u := &fakeUpstream{status: http.StatusOK}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if u.status != http.StatusOK {
			w.WriteHeader(u.status)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		body := `{"access_token":"` + u.token + `","token_type":"Bearer","expires_in":3600`
		if u.idToken != "" {
			body += `,"id_token":"` + u.idToken + `"`
		}
		body += `}`
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.server.Close)
	return u
}

type fixture struct {
	server   *server.Server
	upstream *fakeUpstream
	signer   *keys.SecretSigner
}

func newFixture(t *testing.T, opts ...func(*testConfig)) *fixture {
	t.Helper()

	upstream := newFakeUpstream(t)
	cfg := testConfig{
		EnvVars: config.EnvVars{Port: "8081", AppName: "test", Env: "TEST"},
		Oidc: config.Oidc{
			ServerURL:         upstream.server.URL,
			TokenEndpoint:     "/oidc/token",
			AuthorizeEndpoint: "/oidc/authorize",
			ClientID:          "my-app",
			ClientSecret:      "secret123",
			RedirectURI:       "http://localhost:8081/callback",
			SigningSecret:     testSecret,
			UpstreamTimeout:   5 * time.Second,
		},
		Session: config.Session{
			FrontendURL:    testFrontendURL,
			Propagation:    "cookie",
			RequireState:   true,
			CookieMaxAge:   3600,
			CookieSameSite: "lax",
		},
		Cors: config.Cors{
			Origins: []string{testFrontendURL},
			Methods: "GET, POST, PUT, PATCH, DELETE",
			Headers: "Content-Type, Authorization",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	signer, err := keys.NewSecretSigner([]byte(testSecret))
	require.NoError(t, err)
	verifier := jwt.NewVerifier(signer)

	exchangeClient, err := exchange.New(context.Background(), cfg, verifier)
	require.NoError(t, err)

	f := &fixture{
		server:   server.NewWithExchange(cfg, verifier, exchangeClient),
		upstream: upstream,
		signer:   signer,
	}
	f.upstream.token = f.mintToken(t, jwtlib.MapClaims{
		"sub":      "42",
		"username": "alice",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	return f
}

func (f *fixture) mintToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	token, err := f.signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
