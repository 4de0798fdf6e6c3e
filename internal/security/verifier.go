package security

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid identity token")
	ErrExpiredToken = errors.New("identity token has expired")
)

// Principal is the authenticated caller as attested by the identity
// provider. The application never sees credentials, only this.
type Principal struct {
	UID   string
	Email string
}

// TokenVerifier checks a bearer token with the external identity provider
// and returns the principal it belongs to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}
