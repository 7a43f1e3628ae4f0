package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"aiclub/internal/delivery/api/response"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
		wantRetry   string
	}{
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrVersionConflict, "update event"),
			wantStatus: http.StatusConflict,
			wantCode:   "VERSION_CONFLICT",
		},
		{
			name:        "app error details",
			err:         domainerrors.ErrUnknownKind.WithDetails("podcast"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "UNKNOWN_KIND",
			wantDetails: "podcast",
		},
		{
			name:       "validation error",
			err:        &domainerrors.ValidationError{Missing: []string{"title"}, Unknown: []string{"venue"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetails: map[string]any{
				"missing": []any{"title"},
				"unknown": []any{"venue"},
			},
		},
		{
			name:       "loading session",
			err:        domainerrors.ErrSessionLoading,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SESSION_LOADING",
			wantRetry:  "1",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRetry, rec.Header().Get("Retry-After"))

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details any    `json:"details"`
				} `json:"error"`
				Meta response.MetaInfo `json:"meta"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponses(t *testing.T) {
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, c.String(http.StatusOK, "streamed"))

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "streamed", rec.Body.String())
}
