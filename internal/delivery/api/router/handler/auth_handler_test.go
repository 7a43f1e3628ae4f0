package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"aiclub/internal/delivery/api/middleware"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	mockUsecase "aiclub/internal/mocks/usecase"
	"aiclub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(sessions usecase.SessionUsecase) *AuthHandler {
	return NewAuthHandler(AuthHandlerParams{Sessions: sessions, Logger: slog.New(slog.DiscardHandler)})
}

func TestAuthHandler_OpenSession(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	expires := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	sessions.EXPECT().Open(mock.Anything).Return(&usecase.OpenSessionOutput{
		Token:     "tok-1",
		ExpiresAt: expires,
		Session:   entity.Session{ID: "s-1", Loading: true},
	}, nil)

	c, rec := newContext(newRequest(http.MethodPost, "/auth/session", ""))
	require.NoError(t, newAuthHandler(sessions).OpenSession(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var out OpenSessionResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "tok-1", out.Token)
	assert.True(t, expires.Equal(out.ExpiresAt))
	assert.True(t, out.Session.Loading)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "tok-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_GetSession(t *testing.T) {
	t.Run("anonymous without session", func(t *testing.T) {
		c, rec := newContext(newRequest(http.MethodGet, "/auth/session", ""))
		require.NoError(t, newAuthHandler(mockUsecase.NewMockSessionUsecase(t)).GetSession(c))

		var out entity.Session
		decodeData(t, rec, &out)
		assert.Equal(t, entity.SessionAnonymous, out.State())
	})

	t.Run("attached session", func(t *testing.T) {
		c, rec := newContext(newRequest(http.MethodGet, "/auth/session", ""))
		withSession(t, c, adminSession)
		require.NoError(t, newAuthHandler(mockUsecase.NewMockSessionUsecase(t)).GetSession(c))

		var out entity.Session
		decodeData(t, rec, &out)
		assert.Equal(t, "alice", out.UID())
		assert.True(t, out.IsAdmin)
	})
}

func TestAuthHandler_CloseSession(t *testing.T) {
	t.Run("releases and clears the cookie", func(t *testing.T) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		sessions.EXPECT().Release(mock.Anything, "tok").Return(nil)

		c, rec := newContext(newRequest(http.MethodDelete, "/auth/session", ""))
		withSession(t, c, adminSession)
		require.NoError(t, newAuthHandler(sessions).CloseSession(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("no session", func(t *testing.T) {
		c, _ := newContext(newRequest(http.MethodDelete, "/auth/session", ""))
		err := newAuthHandler(mockUsecase.NewMockSessionUsecase(t)).CloseSession(c)
		require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("signs in", func(t *testing.T) {
		c, rec := newContext(newRequest(http.MethodPost, "/auth/login", `{"email":"alice@club.dev","password":"pw"}`))
		manager := withSession(t, c, entity.Session{ID: "s-1"})
		manager.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "alice@club.dev", Password: "pw"}).Return(adminSession, nil)

		require.NoError(t, newAuthHandler(mockUsecase.NewMockSessionUsecase(t)).Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var out entity.Session
		decodeData(t, rec, &out)
		assert.True(t, out.IsAdmin)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		c, _ := newContext(newRequest(http.MethodPost, "/auth/login", `{"email":"alice@club.dev","password":"bad"}`))
		manager := withSession(t, c, entity.Session{ID: "s-1"})
		manager.EXPECT().Login(mock.Anything, mock.Anything).Return(entity.Session{ID: "s-1"}, domainerrors.ErrWrongPassword)

		err := newAuthHandler(mockUsecase.NewMockSessionUsecase(t)).Login(c)
		require.ErrorIs(t, err, domainerrors.ErrWrongPassword)
	})

	t.Run("no session", func(t *testing.T) {
		c, _ := newContext(newRequest(http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"pw"}`))
		err := newAuthHandler(mockUsecase.NewMockSessionUsecase(t)).Login(c)
		require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	c, rec := newContext(newRequest(http.MethodPost, "/auth/logout", ""))
	manager := mockUsecase.NewMockSessionManager(t)
	manager.EXPECT().Logout(mock.Anything).Return(nil)
	manager.EXPECT().Session().Return(entity.Session{ID: "s-1"})
	middleware.SetSession(c, manager, "tok")

	require.NoError(t, newAuthHandler(mockUsecase.NewMockSessionUsecase(t)).Logout(c))

	var out entity.Session
	decodeData(t, rec, &out)
	assert.Equal(t, entity.SessionAnonymous, out.State())
}
