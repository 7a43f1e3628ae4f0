// Package memory implements an in-process identity provider for local
// development and tests. Accounts come from configuration.
package memory

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"sync"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"
	"aiclub/internal/infra/auth"

	"go.uber.org/fx"
)

// Params defines the parameters required for the memory identity provider
type Params struct {
	fx.In

	Config *config.Config
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

type account struct {
	identity     entity.Identity
	passwordHash string
}

// IdentityProvider holds accounts keyed by lower-cased email.
type IdentityProvider struct {
	mu       sync.RWMutex
	accounts map[string]account
	hasher   service.PasswordHasher
}

// NewIdentityProvider creates the provider and hashes configured plaintext passwords.
func NewIdentityProvider(params Params) (*IdentityProvider, error) {
	p := &IdentityProvider{
		accounts: make(map[string]account),
		hasher:   params.Hasher,
	}

	for _, user := range params.Config.Identity.Users {
		hash := user.PasswordHash
		if hash == "" {
			var err error
			if hash, err = params.Hasher.Hash(user.Password); err != nil {
				return nil, errors.Wrapf(err, "hash password of %s", user.Email)
			}
		}
		if err := p.AddAccount(entity.Identity{UID: user.UID, Email: user.Email, DisplayName: user.DisplayName}, hash); err != nil {
			return nil, err
		}
	}

	params.Logger.Warn("Using in-memory identity provider", slog.Int("accounts", len(p.accounts)))

	return p, nil
}

// AddAccount registers an account with an already hashed password.
func (p *IdentityProvider) AddAccount(identity entity.Identity, passwordHash string) error {
	if identity.UID == "" || identity.Email == "" {
		return errors.New("account needs a uid and an email")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.accounts[strings.ToLower(identity.Email)] = account{identity: identity, passwordHash: passwordHash}

	return nil
}

// NewAuthClient returns a client with no signed-in identity.
func (p *IdentityProvider) NewAuthClient() service.AuthClient {
	return &authClient{provider: p, state: auth.NewAuthState()}
}

func (p *IdentityProvider) verify(email, password string) (*entity.Identity, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrInvalidEmail
	}

	p.mu.RLock()
	acc, ok := p.accounts[strings.ToLower(email)]
	p.mu.RUnlock()
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}
	if !p.hasher.Check(password, acc.passwordHash) {
		return nil, domainerrors.ErrWrongPassword
	}

	identity := acc.identity

	return &identity, nil
}

type authClient struct {
	provider *IdentityProvider
	state    *auth.AuthState
}

// SignIn verifies the credentials and makes the identity current.
func (c *authClient) SignIn(_ context.Context, email, password string) (*entity.Identity, error) {
	identity, err := c.provider.verify(email, password)
	if err != nil {
		return nil, err
	}

	c.state.Set(identity)

	return identity, nil
}

// SignOut clears the current identity.
func (c *authClient) SignOut(_ context.Context) error {
	if c.state.Current() != nil {
		c.state.Set(nil)
	}

	return nil
}

// CurrentUser returns the signed-in identity or nil.
func (c *authClient) CurrentUser() *entity.Identity {
	return c.state.Current()
}

// OnAuthStateChanged registers fn on the client's auth state.
func (c *authClient) OnAuthStateChanged(fn func(identity *entity.Identity)) func() {
	return c.state.Subscribe(fn)
}
