// Package auth wraps the external identity provider: email/password sign-in,
// password-reset requests, and ID-token verification for the admin API.
package auth

import (
	"context"
	"time"
)

// Session is the signed-in identity returned by the provider.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Client performs credential operations against the identity provider.
// Errors carry the provider's message verbatim; callers re-enable the
// triggering control and do not retry.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// TokenVerifier checks a bearer ID token and yields the caller's uid.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// Error is a provider-reported failure, e.g. "INVALID_PASSWORD" or
// "EMAIL_NOT_FOUND".
type Error struct {
	Code string
}

func (e *Error) Error() string {
	return "auth: " + e.Code
}
