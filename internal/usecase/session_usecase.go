// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"aiclub/internal/domain/entity"
)

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Email    string
	Password string
}

// OpenSessionOutput returns the token naming a freshly opened session.
type OpenSessionOutput struct {
	Token     string
	ExpiresAt time.Time
	Session   entity.Session
}

// SessionManager is the session and role state of one client.
// It is the only writer of its Session.
type SessionManager interface {
	// Session returns a copy of the current state.
	Session() entity.Session

	// Login signs in and keeps the session only when the identity is an admin.
	Login(ctx context.Context, input LoginInput) (entity.Session, error)

	// Logout signs out through the identity provider and clears the session.
	Logout(ctx context.Context) error

	// SetUserRole replaces the roles of uid with {role}. The caller must be an admin.
	SetUserRole(ctx context.Context, uid string, role entity.Role) error

	// Close stops listening to the identity provider.
	Close()
}

// SessionUsecase keeps the session managers of every connected client.
type SessionUsecase interface {
	// Open starts a new anonymous session.
	Open(ctx context.Context) (*OpenSessionOutput, error)

	// Resolve returns the manager named by a session token.
	Resolve(ctx context.Context, token string) (SessionManager, error)

	// Release closes and forgets the session named by token.
	Release(ctx context.Context, token string) error

	// SweepExpired releases every session past its expiry and returns how many were released.
	SweepExpired(ctx context.Context) int
}
