package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/errors"
	mockUsecase "aiclub/internal/mocks/usecase"
	"aiclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentFixture struct {
	content *mockUsecase.MockContentUsecase
	live    *mockUsecase.MockLiveUsecase
	handler *ContentHandler
}

func newContentFixture(t *testing.T) *contentFixture {
	f := &contentFixture{
		content: mockUsecase.NewMockContentUsecase(t),
		live:    mockUsecase.NewMockLiveUsecase(t),
	}
	f.handler = NewContentHandler(ContentHandlerParams{
		Content: f.content,
		Live:    f.live,
		Config:  &config.Config{Live: &config.LiveConfig{Heartbeat: time.Minute}},
		Logger:  slog.New(slog.DiscardHandler),
	})

	return f
}

func withParams(c echo.Context, names []string, values []string) echo.Context {
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c
}

func sampleEvent(id string, version int64) *entity.Event {
	return &entity.Event{ContentMeta: entity.ContentMeta{ID: id, Title: "Kickoff", Version: version}}
}

func TestContentHandler_List(t *testing.T) {
	f := newContentFixture(t)
	f.content.EXPECT().List(mock.Anything, entity.KindEvent).Return([]entity.ContentItem{sampleEvent("e1", 1)}, nil)

	c, rec := newContext(newRequest(http.MethodGet, "/api/v1/content/events", ""))
	require.NoError(t, f.handler.List(withParams(c, []string{"kind"}, []string{"events"})))

	var out []map[string]any
	decodeData(t, rec, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "e1", out[0]["id"])
}

func TestContentHandler_UnknownKind(t *testing.T) {
	f := newContentFixture(t)

	c, _ := newContext(newRequest(http.MethodGet, "/api/v1/content/podcasts", ""))
	err := f.handler.List(withParams(c, []string{"kind"}, []string{"podcasts"}))

	require.ErrorIs(t, err, domainerrors.ErrUnknownKind)
}

func TestContentHandler_Get(t *testing.T) {
	f := newContentFixture(t)
	f.content.EXPECT().Get(mock.Anything, entity.KindBlog, "b1").Return(&entity.Blog{ContentMeta: entity.ContentMeta{ID: "b1", Version: 4}}, nil)

	c, rec := newContext(newRequest(http.MethodGet, "/api/v1/content/blog/b1", ""))
	require.NoError(t, f.handler.Get(withParams(c, []string{"kind", "id"}, []string{"blog", "b1"})))

	assert.Equal(t, `"4"`, rec.Header().Get("ETag"))
}

func TestContentHandler_GetBySlug_NotFound(t *testing.T) {
	f := newContentFixture(t)
	f.content.EXPECT().GetBySlug(mock.Anything, entity.KindProject, "nope").Return(nil, domainerrors.ErrNotFound)

	c, _ := newContext(newRequest(http.MethodGet, "/api/v1/content/projects/slug/nope", ""))
	err := f.handler.GetBySlug(withParams(c, []string{"kind", "slug"}, []string{"projects", "nope"}))

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentHandler_Create(t *testing.T) {
	f := newContentFixture(t)
	f.content.EXPECT().
		Create(mock.Anything, adminSession, entity.KindEvent, map[string]any{"title": "Kickoff", "tags": []any{"ai"}}).
		Return(sampleEvent("e1", 1), nil)

	c, rec := newContext(newRequest(http.MethodPost, "/api/v1/admin/content/events", `{"title":"Kickoff","tags":["ai"]}`))
	withSession(t, c, adminSession)
	require.NoError(t, f.handler.Create(withParams(c, []string{"kind"}, []string{"events"})))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `"1"`, rec.Header().Get("ETag"))
}

func TestContentHandler_Create_InvalidBody(t *testing.T) {
	f := newContentFixture(t)

	c, _ := newContext(newRequest(http.MethodPost, "/api/v1/admin/content/events", `["not","an","object"]`))
	err := f.handler.Create(withParams(c, []string{"kind"}, []string{"events"}))

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"body": "object"}, verr.Invalid)
}

func TestContentHandler_Update(t *testing.T) {
	version := int64(3)

	tests := []struct {
		name     string
		ifMatch  string
		expected *int64
	}{
		{name: "no precondition"},
		{name: "wildcard", ifMatch: "*"},
		{name: "quoted", ifMatch: `"3"`, expected: &version},
		{name: "weak", ifMatch: `W/"3"`, expected: &version},
		{name: "bare", ifMatch: "3", expected: &version},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContentFixture(t)
			f.content.EXPECT().Update(mock.Anything, adminSession, usecase.UpdateContentInput{
				Kind:            entity.KindEvent,
				ID:              "e1",
				Fields:          map[string]any{"registrationStatus": "Closed"},
				ExpectedVersion: tt.expected,
			}).Return(sampleEvent("e1", 4), nil)

			req := newRequest(http.MethodPut, "/api/v1/admin/content/events/e1", `{"registrationStatus":"Closed"}`)
			if tt.ifMatch != "" {
				req.Header.Set("If-Match", tt.ifMatch)
			}
			c, rec := newContext(req)
			withSession(t, c, adminSession)

			require.NoError(t, f.handler.Update(withParams(c, []string{"kind", "id"}, []string{"events", "e1"})))
			assert.Equal(t, `"4"`, rec.Header().Get("ETag"))
		})
	}
}

func TestContentHandler_Update_Rejected(t *testing.T) {
	t.Run("bad precondition", func(t *testing.T) {
		f := newContentFixture(t)

		req := newRequest(http.MethodPut, "/api/v1/admin/content/events/e1", `{"title":"x"}`)
		req.Header.Set("If-Match", `"abc"`)
		c, _ := newContext(req)

		err := f.handler.Update(withParams(c, []string{"kind", "id"}, []string{"events", "e1"}))
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("non-admin", func(t *testing.T) {
		f := newContentFixture(t)
		f.content.EXPECT().Update(mock.Anything, userSession, mock.Anything).Return(nil, domainerrors.ErrPermissionDenied)

		c, _ := newContext(newRequest(http.MethodPut, "/api/v1/admin/content/events/e1", `{"title":"x"}`))
		withSession(t, c, userSession)

		err := f.handler.Update(withParams(c, []string{"kind", "id"}, []string{"events", "e1"}))
		require.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})
}

func TestContentHandler_Delete(t *testing.T) {
	f := newContentFixture(t)
	f.content.EXPECT().Delete(mock.Anything, adminSession, entity.KindPost, "p1").Return(nil)

	c, rec := newContext(newRequest(http.MethodDelete, "/api/v1/admin/content/posts/p1", ""))
	withSession(t, c, adminSession)
	require.NoError(t, f.handler.Delete(withParams(c, []string{"kind", "id"}, []string{"posts", "p1"})))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestContentHandler_RegistrationQR(t *testing.T) {
	f := newContentFixture(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.content.EXPECT().RegistrationQR(mock.Anything, "e1").Return(png, nil)

	c, rec := newContext(newRequest(http.MethodGet, "/api/v1/events/e1/qr", ""))
	require.NoError(t, f.handler.RegistrationQR(withParams(c, []string{"id"}, []string{"e1"})))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestContentHandler_Stream(t *testing.T) {
	f := newContentFixture(t)

	snapshots := make(chan []entity.Document)
	errs := make(chan error, 1)
	closed := false
	f.live.EXPECT().
		Subscribe(mock.Anything, entity.CollectionEvents, &entity.Order{Field: "title", Descending: true}).
		Return(&usecase.Subscription{Snapshots: snapshots, Errors: errs, Close: func() { closed = true }}, nil)

	go func() {
		snapshots <- []entity.Document{sampleEvent("e1", 1)}
		errs <- errors.New("listener lost")
		close(errs)
		close(snapshots)
	}()

	c, rec := newContext(newRequest(http.MethodGet, "/api/v1/content/events/stream?orderBy=title&desc=true", ""))
	require.NoError(t, f.handler.Stream(withParams(c, []string{"kind"}, []string{"events"})))

	assert.True(t, closed)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/event-stream"))

	body := rec.Body.String()
	assert.Contains(t, body, eventSnapshot)
	assert.Contains(t, body, `"id":"e1"`)
	assert.Contains(t, body, eventError)
	assert.Contains(t, body, "SUBSCRIPTION_FAILED")
	assert.NotContains(t, body, "listener lost")
	assert.Less(t, strings.Index(body, `"id":"e1"`), strings.Index(body, "SUBSCRIPTION_FAILED"))
}

func TestContentHandler_Stream_Rejected(t *testing.T) {
	t.Run("bad order flag", func(t *testing.T) {
		f := newContentFixture(t)

		c, _ := newContext(newRequest(http.MethodGet, "/api/v1/content/events/stream?orderBy=date&desc=maybe", ""))
		err := f.handler.Stream(withParams(c, []string{"kind"}, []string{"events"}))
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("subscribe failure", func(t *testing.T) {
		f := newContentFixture(t)
		f.live.EXPECT().Subscribe(mock.Anything, entity.CollectionBlogs, (*entity.Order)(nil)).Return(nil, domainerrors.ErrSubscriptionFailed)

		c, rec := newContext(newRequest(http.MethodGet, "/api/v1/content/blogs/stream", ""))
		err := f.handler.Stream(withParams(c, []string{"kind"}, []string{"blogs"}))

		require.ErrorIs(t, err, domainerrors.ErrSubscriptionFailed)
		assert.False(t, c.Response().Committed)
		assert.Empty(t, rec.Body.String())
	})
}
