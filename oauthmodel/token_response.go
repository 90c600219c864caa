package oauthmodel

// TokenResponse is returned to API callers after a successful
// authorization-code exchange. Username is not part of the upstream token
// body - it is resolved from the access token's own claims.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	Username    string `json:"username,omitempty"`
}

// UserInfo describes the authenticated caller of a gated endpoint.
type UserInfo struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}
