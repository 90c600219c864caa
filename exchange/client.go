package exchange

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-oidc-client/internal/config"
	autherrors "github.com/jrsteele09/go-oidc-client/internal/errors"
	tokenjwt "github.com/jrsteele09/go-oidc-client/token/jwt"
)

// Result holds the outcome of a successful authorization-code exchange.
// Username is resolved from the access token's claims, not from the
// upstream response body.
type Result struct {
	AccessToken string
	IDToken     string
	Username    string
	ExpiresIn   int64
}

// Client exchanges authorization codes for tokens against the upstream
// provider's token endpoint. One synchronous HTTP call per exchange, no
// retries: authorization codes are single-use, so retrying a failed
// exchange can never succeed.
type Client struct {
	oauth2Config oauth2.Config
	verifier     *tokenjwt.Verifier
	httpClient   *http.Client
}

// New builds an exchange client from static configuration. When discovery
// is enabled the authorize/token endpoints come from the provider's
// discovery document; otherwise they are composed from config.
func New(ctx context.Context, cfg config.OidcConfig, verifier *tokenjwt.Verifier) (*Client, error) {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.GetUpstreamTimeout()

	endpoint := oauth2.Endpoint{
		AuthURL:  cfg.GetOidcServerURL() + cfg.GetAuthorizeEndpoint(),
		TokenURL: cfg.GetOidcServerURL() + cfg.GetTokenEndpoint(),
	}
	if cfg.UseDiscovery() {
		provider, err := oidc.NewProvider(oidc.ClientContext(ctx, httpClient), cfg.GetOidcServerURL())
		if err != nil {
			return nil, autherrors.Wrapf(err, "oidc discovery for %s", cfg.GetOidcServerURL())
		}
		endpoint = provider.Endpoint()
	}
	// The upstream expects client_id/client_secret in the form body, not
	// in a Basic auth header
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &Client{
		oauth2Config: oauth2.Config{
			ClientID:     cfg.GetClientID(),
			ClientSecret: cfg.GetClientSecret(),
			Endpoint:     endpoint,
			RedirectURL:  cfg.GetRedirectURI(),
		},
		verifier:   verifier,
		httpClient: httpClient,
	}, nil
}

// AuthCodeURL returns the upstream authorization URL for the given state
// token. Used to initiate a login redirect.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth2Config.AuthCodeURL(state)
}

// Exchange performs the authorization-code-for-token exchange. An empty
// code is rejected as ErrInvalidRequest before any network I/O. Every
// upstream failure (non-2xx, malformed body, network fault) collapses to
// ErrExchangeFailed; the caller presents a uniform failure to the user.
func (c *Client) Exchange(ctx context.Context, code string) (*Result, error) {
	if strings.TrimSpace(code) == "" {
		return nil, autherrors.ErrInvalidRequest
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth2Config.Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("authorization code exchange failed")
		return nil, autherrors.ErrExchangeFailed
	}

	// The upstream token body carries no human-readable username; derive
	// it from the access token's own verified claims. A token that fails
	// verification under the shared secret is useless to this RP, so the
	// whole exchange is treated as failed.
	username, err := c.verifier.Username(token.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("exchanged access token failed verification")
		return nil, autherrors.ErrExchangeFailed
	}

	idToken, _ := token.Extra("id_token").(string)

	var expiresIn int64
	if !token.Expiry.IsZero() {
		expiresIn = int64(time.Until(token.Expiry).Seconds())
	}

	log.Info().Str("username", username).Msg("authorization code exchange succeeded")
	return &Result{
		AccessToken: token.AccessToken,
		IDToken:     idToken,
		Username:    username,
		ExpiresIn:   expiresIn,
	}, nil
}
