package impl

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"
	mockService "aiclub/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type sessionServiceFixture struct {
	identity     *mockService.MockIdentityProvider
	tokenService *mockService.MockTokenService
	// released counts auth clients whose listener was removed.
	released atomic.Int32
}

func newSessionServiceFixture(t *testing.T) *sessionServiceFixture {
	t.Helper()

	f := &sessionServiceFixture{
		identity:     mockService.NewMockIdentityProvider(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	f.identity.EXPECT().NewAuthClient().RunAndReturn(func() service.AuthClient {
		client := mockService.NewMockAuthClient(t)
		client.EXPECT().OnAuthStateChanged(mock.Anything).
			RunAndReturn(func(fn func(*entity.Identity)) func() {
				fn(nil)

				return func() { f.released.Add(1) }
			})

		return client
	}).Maybe()

	f.tokenService.EXPECT().GenerateSessionToken(mock.Anything).
		RunAndReturn(func(id string) (string, error) { return "tok-" + id, nil }).Maybe()
	f.tokenService.EXPECT().ValidateToken(mock.Anything).
		RunAndReturn(func(token string) (*service.Claims, error) {
			id, ok := strings.CutPrefix(token, "tok-")
			if !ok {
				return nil, errors.New("token is malformed")
			}

			return &service.Claims{SessionID: id}, nil
		}).Maybe()
	f.tokenService.EXPECT().GetSessionTokenDuration().Return(time.Hour).Maybe()

	return f
}

func (f *sessionServiceFixture) params(lc fx.Lifecycle) SessionServiceParams {
	return SessionServiceParams{
		Lc:           lc,
		Identity:     f.identity,
		TokenService: f.tokenService,
		Config:       &config.Config{Session: &config.SessionConfig{SweepInterval: time.Hour}},
		Logger:       newDiscardLogger(),
	}
}

func TestSessionService_OpenAndResolve(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := newSessionService(f.params(nil))
	srv.now = func() time.Time { return testNow }
	ctx := context.Background()

	out, err := srv.Open(ctx)
	require.NoError(t, err)

	assert.Equal(t, "tok-"+out.Session.ID, out.Token)
	assert.True(t, out.ExpiresAt.Equal(testNow.Add(time.Hour)))
	assert.Equal(t, entity.SessionAnonymous, out.Session.State())

	manager, err := srv.Resolve(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Session.ID, manager.Session().ID)

	other, err := srv.Open(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, out.Session.ID, other.Session.ID)
}

func TestSessionService_ResolveUnknown(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := newSessionService(f.params(nil))

	for _, token := range []string{"", "garbage", "tok-unknown"} {
		_, err := srv.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound, token)
	}
}

func TestSessionService_Expiry(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := newSessionService(f.params(nil))
	srv.now = func() time.Time { return testNow }
	ctx := context.Background()

	expiring, err := srv.Open(ctx)
	require.NoError(t, err)
	srv.now = func() time.Time { return testNow.Add(30 * time.Minute) }
	fresh, err := srv.Open(ctx)
	require.NoError(t, err)

	srv.now = func() time.Time { return testNow.Add(time.Hour) }

	_, err = srv.Resolve(ctx, expiring.Token)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	assert.Equal(t, int32(1), f.released.Load())

	assert.Equal(t, 0, srv.SweepExpired(ctx))

	srv.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	assert.Equal(t, 1, srv.SweepExpired(ctx))
	assert.Equal(t, int32(2), f.released.Load())

	_, err = srv.Resolve(ctx, fresh.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_Release(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := newSessionService(f.params(nil))
	ctx := context.Background()

	out, err := srv.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, srv.Release(ctx, out.Token))
	assert.Equal(t, int32(1), f.released.Load())

	_, err = srv.Resolve(ctx, out.Token)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	assert.ErrorIs(t, srv.Release(ctx, out.Token), domainerrors.ErrSessionNotFound)
}

func TestSessionService_StopClosesSessions(t *testing.T) {
	f := newSessionServiceFixture(t)
	lc := fxtest.NewLifecycle(t)
	srv := NewSessionService(f.params(lc))

	lc.RequireStart()

	for range 3 {
		_, err := srv.Open(context.Background())
		require.NoError(t, err)
	}

	lc.RequireStop()

	assert.Equal(t, int32(3), f.released.Load())
}

func TestSessionService_OpenRespectsCap(t *testing.T) {
	f := newSessionServiceFixture(t)
	params := f.params(nil)
	params.Config.Session.MaxActive = 2
	srv := newSessionService(params)
	srv.now = func() time.Time { return testNow }
	ctx := context.Background()

	for range 2 {
		_, err := srv.Open(ctx)
		require.NoError(t, err)
	}

	_, err := srv.Open(ctx)
	require.ErrorIs(t, err, domainerrors.ErrTooManySessions)
	assert.Len(t, srv.sessions, 2)
	assert.Equal(t, int32(0), f.released.Load())

	// Expired sessions are swept to make room.
	srv.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	out, err := srv.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.released.Load())

	manager, err := srv.Resolve(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Session.ID, manager.Session().ID)
}
