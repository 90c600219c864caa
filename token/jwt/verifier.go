package jwt

import (
	"errors"
	"strconv"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	autherrors "github.com/jrsteele09/go-oidc-client/internal/errors"
	"github.com/jrsteele09/go-oidc-client/token/keys"
)

// Identity is the identity resolved from a verified access token. It lives
// only for the duration of a single request and is never persisted.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	ClientID string `json:"clientId,omitempty"`
}

// Verifier validates access tokens signed with the shared secret and
// projects identity claims out of them. It is a pure function of its input
// plus the static key material, so a single instance is safe for
// concurrent use.
type Verifier struct {
	signer keys.Signer
}

// NewVerifier creates a new token verifier
func NewVerifier(signer keys.Signer) *Verifier {
	return &Verifier{signer: signer}
}

// Verify checks the token's signature and expiry and resolves the identity
// claims. Every failure (empty input, malformed structure, bad signature,
// expiry, unsupported algorithm, non-numeric subject) collapses to
// ErrInvalidCredential - callers must not branch on the cause for access
// control decisions. Each cause is logged distinctly for operability.
func (v *Verifier) Verify(rawToken string) (*Identity, error) {
	if strings.TrimSpace(rawToken) == "" {
		log.Debug().Str("cause", "empty").Msg("token verification failed")
		return nil, autherrors.ErrInvalidCredential
	}

	token, err := jwtlib.ParseWithClaims(rawToken, jwtlib.MapClaims{}, v.signer.GetVerificationKey)
	if err != nil || !token.Valid {
		logVerificationFailure(err)
		return nil, autherrors.ErrInvalidCredential
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		log.Warn().Str("cause", "claims").Msg("token verification failed")
		return nil, autherrors.ErrInvalidCredential
	}

	userID, err := subjectID(claims)
	if err != nil {
		log.Warn().Str("cause", "subject").Err(err).Msg("token verification failed")
		return nil, autherrors.ErrInvalidCredential
	}

	username, _ := claims["username"].(string)
	clientID, _ := claims["client_id"].(string)

	return &Identity{
		UserID:   userID,
		Username: username,
		ClientID: clientID,
	}, nil
}

// UserID returns the numeric subject of a token, verifying it first
func (v *Verifier) UserID(rawToken string) (int64, error) {
	identity, err := v.Verify(rawToken)
	if err != nil {
		return 0, err
	}
	return identity.UserID, nil
}

// Username returns the username claim of a token, verifying it first
func (v *Verifier) Username(rawToken string) (string, error) {
	identity, err := v.Verify(rawToken)
	if err != nil {
		return "", err
	}
	return identity.Username, nil
}

// ClientID returns the client_id claim of a token, verifying it first
func (v *Verifier) ClientID(rawToken string) (string, error) {
	identity, err := v.Verify(rawToken)
	if err != nil {
		return "", err
	}
	return identity.ClientID, nil
}

// subjectID parses the sub claim as an integer user ID. The upstream
// provider is expected to issue numeric subjects; anything else makes the
// credential invalid rather than crashing the request.
func subjectID(claims jwtlib.MapClaims) (int64, error) {
	switch sub := claims["sub"].(type) {
	case string:
		return strconv.ParseInt(sub, 10, 64)
	case float64:
		return int64(sub), nil
	default:
		return 0, errors.New("subject claim missing or not numeric")
	}
}

func logVerificationFailure(err error) {
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		log.Warn().Str("cause", "expired").Err(err).Msg("token verification failed")
	case errors.Is(err, jwtlib.ErrTokenMalformed):
		log.Warn().Str("cause", "malformed").Err(err).Msg("token verification failed")
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		log.Warn().Str("cause", "signature").Err(err).Msg("token verification failed")
	case errors.Is(err, jwtlib.ErrTokenUnverifiable):
		// Covers unsupported signing methods rejected by the signer
		log.Warn().Str("cause", "unverifiable").Err(err).Msg("token verification failed")
	default:
		log.Warn().Str("cause", "invalid").Err(err).Msg("token verification failed")
	}
}
