package oauthmodel

// TokenExchangeRequest is the body of a POST /api/auth/token call.
type TokenExchangeRequest struct {
	// Code is the authorization code received from the upstream provider.
	// Required: Yes
	// Usage: Exchanged once for tokens, then becomes invalid
	Code string `json:"code"`

	// State is the opaque value the initiating party attached to the
	// authorization request. Echoed back for correlation; not validated
	// here because the API flow carries it end to end on the client side.
	State string `json:"state,omitempty"`
}
