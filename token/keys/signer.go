package keys

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HS256 is the only signing algorithm this relying party accepts. Tokens
// are verified against a secret shared with the upstream provider; the RP
// never holds asymmetric key material of its own.
const HS256 = "HS256"

// Signer is an interface for signing and verifying JWT tokens
type Signer interface {
	// Sign creates a signed JWT token from claims
	Sign(claims jwt.MapClaims) (string, error)

	// GetVerificationKey returns the key used to verify a parsed token,
	// rejecting tokens whose header asks for a different algorithm family
	GetVerificationKey(token *jwt.Token) (any, error)

	// GetSigningMethod returns the JWT signing method used
	GetSigningMethod() jwt.SigningMethod
}

// SecretSigner implements Signer using HMAC-SHA256 over a shared secret
type SecretSigner struct {
	secret []byte
}

// NewSecretSigner creates a signer/verifier for the shared secret
func NewSecretSigner(secret []byte) (*SecretSigner, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("signing secret must not be empty")
	}
	return &SecretSigner{secret: secret}, nil
}

func (s *SecretSigner) Sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token with shared secret: %w", err)
	}
	return signedToken, nil
}

func (s *SecretSigner) GetVerificationKey(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}

func (s *SecretSigner) GetSigningMethod() jwt.SigningMethod {
	return jwt.SigningMethodHS256
}
