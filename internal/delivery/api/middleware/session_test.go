package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/policy"
	mockUsecase "aiclub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "none"},
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "cookie", cookie: "def", want: "def"},
		{name: "bearer wins", header: "Bearer abc", cookie: "def", want: "abc"},
		{name: "other scheme falls back to cookie", header: "Basic xyz", cookie: "def", want: "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}

			assert.Equal(t, tt.want, SessionToken(req))
		})
	}
}

func TestSessionMiddleware_Attach(t *testing.T) {
	t.Run("resolved token attaches the session", func(t *testing.T) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		manager := mockUsecase.NewMockSessionManager(t)
		manager.EXPECT().Session().Return(entity.Session{ID: "s-1"})
		sessions.EXPECT().Resolve(mock.Anything, "tok").Return(manager, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
		c, _ := newTestContext(req)

		m := NewSessionMiddleware(sessions, slog.New(slog.DiscardHandler))
		err := m.Attach(func(c echo.Context) error {
			got, ok := GetSessionManager(c)
			assert.True(t, ok)
			assert.Same(t, manager, got)
			assert.Equal(t, "tok", GetSessionToken(c))

			return nil
		})(c)
		require.NoError(t, err)
	})

	t.Run("unknown token continues anonymous", func(t *testing.T) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		sessions.EXPECT().Resolve(mock.Anything, "stale").Return(nil, domainerrors.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
		c, _ := newTestContext(req)

		m := NewSessionMiddleware(sessions, slog.New(slog.DiscardHandler))
		err := m.Attach(func(c echo.Context) error {
			_, ok := GetSessionManager(c)
			assert.False(t, ok)
			assert.Equal(t, entity.SessionAnonymous, CurrentSession(c).State())

			return nil
		})(c)
		require.NoError(t, err)
	})
}

func TestSessionMiddleware_Guard(t *testing.T) {
	identity := &entity.Identity{UID: "alice"}
	admin := policy.Requirement{RequireAuth: true, RequireAdmin: true}

	tests := []struct {
		name         string
		session      *entity.Session
		page         bool
		wantErr      error
		wantStatus   int
		wantLocation string
		wantNext     bool
	}{
		{name: "no session is unauthorized", wantErr: domainerrors.ErrUnauthorized, wantLocation: "/"},
		{name: "loading is pending", session: &entity.Session{Loading: true}, wantErr: domainerrors.ErrSessionLoading},
		{name: "non-admin is forbidden", session: &entity.Session{Identity: identity}, wantErr: domainerrors.ErrPermissionDenied, wantLocation: "/"},
		{name: "admin renders", session: &entity.Session{Identity: identity, IsAdmin: true}, wantNext: true},
		{name: "page redirects", session: &entity.Session{Identity: identity}, page: true, wantStatus: http.StatusFound, wantLocation: "/"},
		{name: "page pending", session: &entity.Session{Loading: true}, page: true, wantErr: domainerrors.ErrSessionLoading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/admin", nil))
			if tt.session != nil {
				manager := mockUsecase.NewMockSessionManager(t)
				manager.EXPECT().Session().Return(*tt.session)
				SetSession(c, manager, "tok")
			}

			m := NewSessionMiddleware(mockUsecase.NewMockSessionUsecase(t), slog.New(slog.DiscardHandler))
			guard := m.Guard(admin)
			if tt.page {
				guard = m.GuardPage(admin)
			}

			called := false
			err := guard(func(echo.Context) error {
				called = true

				return nil
			})(c)

			assert.Equal(t, tt.wantNext, called)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
		})
	}
}
