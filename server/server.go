package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-oidc-client/exchange"
	"github.com/jrsteele09/go-oidc-client/internal/config"
	"github.com/jrsteele09/go-oidc-client/token/jwt"
	"github.com/jrsteele09/go-oidc-client/token/keys"
)

// Server is the HTTP surface of the relying party. It holds only read-only
// collaborators; every request is handled statelessly and no state is
// shared between requests.
type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	verifier *jwt.Verifier
	exchange *exchange.Client
}

func New(ctx context.Context, cfg config.Config) (*Server, error) {
	signer, err := keys.NewSecretSigner(cfg.GetSigningSecret())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create token signer: %w", err)
	}
	verifier := jwt.NewVerifier(signer)

	exchangeClient, err := exchange.New(ctx, cfg, verifier)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create exchange client: %w", err)
	}

	return NewWithExchange(cfg, verifier, exchangeClient), nil
}

// NewWithExchange wires a server from pre-built collaborators. Split out of
// New so tests can point the exchange client at a local upstream.
func NewWithExchange(cfg config.Config, verifier *jwt.Verifier, exchangeClient *exchange.Client) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		verifier: verifier,
		exchange: exchangeClient,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			log.Info().Str("method", parts[0]).Str("path", parts[1]).Msg("route registered")
		} else {
			log.Info().Str("path", parts[0]).Msg("route registered")
		}
	}
}
