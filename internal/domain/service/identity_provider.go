package service

import (
	"context"

	"aiclub/internal/domain/entity"
)

// IdentityProvider hands out per-session auth clients.
type IdentityProvider interface {
	// NewAuthClient returns a client with no signed-in identity.
	NewAuthClient() AuthClient
}

// AuthClient is the sign-in state of one client session, mirroring a client SDK auth object.
// Implementations report sign-in failures as the domain auth errors
// (ErrInvalidEmail, ErrUserNotFound, ErrWrongPassword, ErrInvalidCredentials, ErrAuthUnknown).
type AuthClient interface {
	// SignIn verifies the credentials and makes the identity current.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignOut ends the current identity. Signing out with no identity is a no-op.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in identity or nil.
	CurrentUser() *entity.Identity

	// OnAuthStateChanged registers fn and calls it once with the current identity
	// before returning, then after every change. The returned func unregisters fn.
	OnAuthStateChanged(fn func(identity *entity.Identity)) (unsubscribe func())
}
