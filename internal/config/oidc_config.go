package config

import "time"

// OidcConfig describes the upstream identity provider and the credentials
// this relying party uses against it. All values are trusted static
// configuration, never request input.
type OidcConfig interface {
	GetOidcServerURL() string
	GetTokenEndpoint() string
	GetAuthorizeEndpoint() string
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetSigningSecret() []byte
	UseDiscovery() bool
	GetUpstreamTimeout() time.Duration
}

type Oidc struct {
	ServerURL         string        `env:"OIDC_SERVER_URL" envDefault:"http://localhost:8080"`
	TokenEndpoint     string        `env:"OIDC_TOKEN_ENDPOINT" envDefault:"/oidc/token"`
	AuthorizeEndpoint string        `env:"OIDC_AUTHORIZE_ENDPOINT" envDefault:"/oidc/authorize"`
	ClientID          string        `env:"OIDC_CLIENT_ID" envDefault:"my-app"`
	ClientSecret      string        `env:"OIDC_CLIENT_SECRET" envDefault:"secret123"`
	RedirectURI       string        `env:"OIDC_REDIRECT_URI" envDefault:"http://localhost:8081/callback"`
	SigningSecret     string        `env:"JWT_SECRET" envDefault:"this-is-a-very-secret-key-that-should-be-at-least-256-bits-long-for-hs256-algorithm"`
	Discovery         bool          `env:"OIDC_DISCOVERY" envDefault:"false"`
	UpstreamTimeout   time.Duration `env:"OIDC_UPSTREAM_TIMEOUT" envDefault:"10s"`
}

var _ OidcConfig = Oidc{}

func (o Oidc) GetOidcServerURL() string {
	return o.ServerURL
}

func (o Oidc) GetTokenEndpoint() string {
	return o.TokenEndpoint
}

func (o Oidc) GetAuthorizeEndpoint() string {
	return o.AuthorizeEndpoint
}

func (o Oidc) GetClientID() string {
	return o.ClientID
}

// GetClientSecret returns the client secret.
// Security: Never log or expose this value
func (o Oidc) GetClientSecret() string {
	return o.ClientSecret
}

func (o Oidc) GetRedirectURI() string {
	return o.RedirectURI
}

// GetSigningSecret returns the shared HS256 secret used to verify upstream
// access tokens.
func (o Oidc) GetSigningSecret() []byte {
	return []byte(o.SigningSecret)
}

// UseDiscovery reports whether the authorize/token endpoints should be
// resolved from the provider's discovery document instead of static config.
func (o Oidc) UseDiscovery() bool {
	return o.Discovery
}

// GetUpstreamTimeout bounds the single blocking HTTP call made during a
// token exchange. Exchanges are never retried - authorization codes are
// single-use.
func (o Oidc) GetUpstreamTimeout() time.Duration {
	if o.UpstreamTimeout <= 0 {
		return 10 * time.Second
	}
	return o.UpstreamTimeout
}
