package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aiclub/internal/delivery/api/middleware"
	"aiclub/internal/delivery/api/validator"
	"aiclub/internal/domain/entity"
	mockUsecase "aiclub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	adminSession = entity.Session{ID: "s-1", Identity: &entity.Identity{UID: "alice"}, IsAdmin: true}
	userSession  = entity.Session{ID: "s-2", Identity: &entity.Identity{UID: "bob"}}
)

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return req
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// withSession attaches a mocked manager reporting session.
func withSession(t *testing.T, c echo.Context, session entity.Session) *mockUsecase.MockSessionManager {
	t.Helper()

	manager := mockUsecase.NewMockSessionManager(t)
	manager.EXPECT().Session().Return(session).Maybe()
	middleware.SetSession(c, manager, "tok")

	return manager
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Data, out))
}
