package errors

import (
	"errors"
	"fmt"
)

// Common error types for the OIDC relying party
var (
	// Request errors
	ErrInvalidRequest = errors.New("invalid request")

	// Token exchange errors
	ErrExchangeFailed = errors.New("token exchange failed")

	// Credential errors
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidCredential = errors.New("invalid credential")

	// General errors
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
