package server

import "net/http"

func (s *Server) initRoutes() {
	// Pre-authentication routes. The token exchange, health checks, login
	// initiation and the callback must be reachable before any credential
	// exists.
	s.RegisterRouteHandler("POST "+RouteAuthToken, ChainMiddleware(s.TokenHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteCallback, ChainMiddleware(s.CallbackHandler(), s.APIMiddleware()...))

	// Gated routes: a fresh credential verification on every request
	s.RegisterRouteHandler("GET "+RouteAuthUser, s.gated(s.UserHandler()))
	s.RegisterRouteHandler("GET "+RouteResourceProfile, s.gated(s.ResourceProfileHandler()))
	s.RegisterRouteHandler("GET "+RouteResourceData, s.gated(s.ResourceDataHandler()))
}

func (s *Server) gated(handler http.HandlerFunc) http.HandlerFunc {
	mw := append(s.APIMiddleware(), s.RequireAuth())
	return ChainMiddleware(handler, mw...)
}
