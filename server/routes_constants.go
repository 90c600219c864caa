package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth API routes
	RouteAuthToken  = "/api/auth/token"
	RouteAuthUser   = "/api/auth/user"
	RouteAuthHealth = "/api/auth/health"
	RouteAuthLogout = "/api/auth/logout"
	RouteAuthLogin  = "/api/auth/login"

	// Liveness probe
	RouteHealth = "/api/health"

	// Browser-redirect entry point from the upstream provider
	RouteCallback = "/callback"

	// Example protected resources
	RouteResourceProfile = "/api/resources/profile"
	RouteResourceData    = "/api/resources/data"

	// Frontend routes this service redirects the browser to
	FrontendCallbackPath = "/callback"
)
