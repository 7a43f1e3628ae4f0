// Package firebase implements the identity provider on Firebase Authentication:
// password sign-in through the Identity Toolkit API and token revocation
// through the Admin SDK.
package firebase

import (
	"context"
	"log/slog"
	"strings"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"
	"aiclub/internal/infra/auth"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firebase identity provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// passwordVerifier is the Identity Toolkit call used for sign-in.
type passwordVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) (*entity.Identity, error)
}

// tokenRevoker ends every session of a uid.
type tokenRevoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type identityProvider struct {
	verifier passwordVerifier
	revoker  tokenRevoker
	logger   *slog.Logger
}

// NewIdentityProvider creates the Firebase-backed identity provider.
func NewIdentityProvider(ctx context.Context, params Params) (service.IdentityProvider, error) {
	if params.App == nil {
		return nil, errors.New("firebase identity provider requires a configured Firebase project")
	}
	if params.Config.Firebase.APIKey == "" {
		return nil, errors.New("firebase identity provider requires firebase.apiKey")
	}

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(params.Config.Firebase.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Identity Toolkit client")
	}

	admin, err := params.App.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return &identityProvider{
		verifier: &toolkitVerifier{service: toolkit},
		revoker:  admin,
		logger:   params.Logger,
	}, nil
}

// NewAuthClient returns a client with no signed-in identity.
func (p *identityProvider) NewAuthClient() service.AuthClient {
	return &authClient{provider: p, state: auth.NewAuthState()}
}

type toolkitVerifier struct {
	service *identitytoolkit.Service
}

// VerifyPassword signs in with email and password.
func (v *toolkitVerifier) VerifyPassword(ctx context.Context, email, password string) (*entity.Identity, error) {
	resp, err := v.service.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapSignInError(err)
	}

	return &entity.Identity{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
	}, nil
}

// mapSignInError turns an Identity Toolkit failure into the domain auth errors.
// Messages look like "INVALID_PASSWORD" or "TOO_MANY_ATTEMPTS_TRY_LATER : detail".
func mapSignInError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errors.Wrap(domainerrors.NewUnknownAuthError(err.Error()), "verify password")
	}

	code, _, _ := strings.Cut(apiErr.Message, ":")
	code = strings.TrimSpace(code)

	switch code {
	case "EMAIL_NOT_FOUND":
		return domainerrors.ErrUserNotFound
	case "INVALID_PASSWORD":
		return domainerrors.ErrWrongPassword
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return domainerrors.ErrInvalidEmail
	case "INVALID_LOGIN_CREDENTIALS":
		return domainerrors.ErrInvalidCredentials
	default:
		return domainerrors.NewUnknownAuthError(apiErr.Message)
	}
}

type authClient struct {
	provider *identityProvider
	state    *auth.AuthState
}

// SignIn verifies the credentials and makes the identity current.
func (c *authClient) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := c.provider.verifier.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	c.state.Set(identity)

	return identity, nil
}

// SignOut revokes the refresh tokens of the current identity, then clears it.
func (c *authClient) SignOut(ctx context.Context) error {
	current := c.state.Current()
	if current == nil {
		return nil
	}

	if err := c.provider.revoker.RevokeRefreshTokens(ctx, current.UID); err != nil {
		if !firebaseauth.IsUserNotFound(err) {
			return errors.Wrap(err, "revoke refresh tokens")
		}
		c.provider.logger.Warn("Signing out a user that no longer exists", slog.String("uid", current.UID))
	}

	c.state.Set(nil)

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
