package impl

import (
	"context"
	"testing"
	"time"

	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/memory"
	"aiclub/internal/infra/sanitizer"
	mockRepo "aiclub/internal/mocks/repository"
	mockService "aiclub/internal/mocks/service"
	"aiclub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminSession = entity.Session{ID: "s-1", Identity: &entity.Identity{UID: "alice"}, IsAdmin: true}
	userSession  = entity.Session{ID: "s-2", Identity: &entity.Identity{UID: "bob"}}
)

type contentFixture struct {
	store     *memory.Store
	publisher *mockService.MockEventPublisher
	qr        *mockService.MockQRCodeService
	srv       *contentService
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()

	store, err := memory.New(newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &contentFixture{
		store:     store,
		publisher: mockService.NewMockEventPublisher(t),
		qr:        mockService.NewMockQRCodeService(t),
	}
	f.srv = NewContentService(ContentServiceParams{
		TxManager:   store.TransactionManager(),
		ContentRepo: store.ContentRepo(),
		Publisher:   f.publisher,
		Sanitizer:   sanitizer.NewHTMLSanitizer(),
		QRService:   f.qr,
		Logger:      newDiscardLogger(),
	}).(*contentService)
	f.srv.now = func() time.Time { return testNow }

	return f
}

// allowPublish accepts any number of published events.
func (f *contentFixture) allowPublish() {
	f.publisher.EXPECT().PublishContentEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func eventFields() map[string]any {
	return map[string]any{
		"title":       "Intro to ML",
		"description": "A first look at machine learning.",
		"date":        "2025-05-01",
		"tags":        []any{" ml ", "ml", "", "beginner"},
	}
}

func (f *contentFixture) createEvent(t *testing.T, fields map[string]any) *entity.Event {
	t.Helper()

	item, err := f.srv.Create(context.Background(), adminSession, entity.KindEvent, fields)
	require.NoError(t, err)

	return item.(*entity.Event)
}

func TestContentService_Create(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	f.publisher.EXPECT().
		PublishContentEvent(ctx, mock.MatchedBy(func(e *service.ContentEvent) bool {
			return e.Kind == "event" && e.Operation == service.ContentCreated && e.ActorUID == "alice" && e.DocumentID != ""
		})).
		Return(nil).Once()

	item, err := f.srv.Create(ctx, adminSession, entity.KindEvent, eventFields())
	require.NoError(t, err)

	event := item.(*entity.Event)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "intro-to-ml", event.Slug)
	assert.Equal(t, []string{"ml", "beginner"}, event.Tags)
	assert.Equal(t, entity.RegistrationOpen, event.RegistrationStatus)
	assert.Equal(t, event.RegistrationStatus, event.Status)
	assert.Equal(t, int64(1), event.Version)
	assert.True(t, event.CreatedAt.Equal(testNow))

	stored, err := f.srv.Get(ctx, entity.KindEvent, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro to ML", stored.Meta().Title)

	bySlug, err := f.srv.GetBySlug(ctx, entity.KindEvent, "intro-to-ml")
	require.NoError(t, err)
	assert.Equal(t, event.ID, bySlug.Meta().ID)
}

func TestContentService_Create_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		session     entity.Session
		kind        entity.Kind
		fields      map[string]any
		wantErr     error
		wantMissing []string
		wantUnknown []string
		wantInvalid map[string]string
	}{
		{
			name:    "anonymous",
			session: entity.Session{ID: "s-0"},
			kind:    entity.KindEvent,
			fields:  eventFields(),
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "non-admin",
			session: userSession,
			kind:    entity.KindEvent,
			fields:  eventFields(),
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "unknown kind",
			session: adminSession,
			kind:    entity.Kind("podcast"),
			fields:  eventFields(),
			wantErr: domainerrors.ErrUnknownKind,
		},
		{
			name:        "missing fields",
			session:     adminSession,
			kind:        entity.KindBlog,
			fields:      map[string]any{"tags": []any{"ai"}},
			wantErr:     domainerrors.ErrValidationFailed,
			wantMissing: []string{"title", "description", "date", "content"},
		},
		{
			name:    "blank required fields",
			session: adminSession,
			kind:    entity.KindProject,
			fields: map[string]any{
				"title":       "   ",
				"description": "\t\n",
				"date":        "2025-05-01",
			},
			wantErr:     domainerrors.ErrValidationFailed,
			wantMissing: []string{"title", "description"},
		},
		{
			name:    "unknown fields",
			session: adminSession,
			kind:    entity.KindEvent,
			fields: func() map[string]any {
				fields := eventFields()
				fields["venue"] = "Room 1"
				fields["bogus"] = true

				return fields
			}(),
			wantErr:     domainerrors.ErrValidationFailed,
			wantUnknown: []string{"bogus", "venue"},
		},
		{
			name:    "malformed date and url",
			session: adminSession,
			kind:    entity.KindEvent,
			fields: func() map[string]any {
				fields := eventFields()
				fields["date"] = "next tuesday"
				fields["registrationUrl"] = "not a url"

				return fields
			}(),
			wantErr:     domainerrors.ErrValidationFailed,
			wantInvalid: map[string]string{"date": "isodate", "registrationUrl": "url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContentFixture(t)
			ctx := context.Background()

			_, err := f.srv.Create(ctx, tt.session, tt.kind, tt.fields)
			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantMissing != nil || tt.wantUnknown != nil || tt.wantInvalid != nil {
				verr, ok := errors.AsType[*domainerrors.ValidationError](err)
				require.True(t, ok)
				assert.ElementsMatch(t, tt.wantMissing, verr.Missing)
				assert.Equal(t, tt.wantUnknown, verr.Unknown)
				assert.Equal(t, tt.wantInvalid, verr.Invalid)
			}

			if tt.kind.IsValid() {
				items, err := f.srv.List(ctx, tt.kind)
				require.NoError(t, err)
				assert.Empty(t, items)
			}
		})
	}
}

func TestContentService_Create_SanitizesBlogContent(t *testing.T) {
	f := newContentFixture(t)
	f.allowPublish()

	item, err := f.srv.Create(context.Background(), adminSession, entity.KindBlog, map[string]any{
		"title":       "Transformers",
		"description": "Attention explained.",
		"date":        "2025-04-02",
		"content":     `<p>Hello</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)

	assert.Equal(t, "<p>Hello</p>", item.(*entity.Blog).Content)
}

func TestContentService_Create_PublishFailureIsOnlyLogged(t *testing.T) {
	f := newContentFixture(t)
	f.publisher.EXPECT().PublishContentEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	event := f.createEvent(t, eventFields())

	_, err := f.srv.Get(context.Background(), entity.KindEvent, event.ID)
	assert.NoError(t, err)
}

func TestContentService_Update(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]any
		wantStatus entity.RegistrationStatus
	}{
		{name: "registration status", fields: map[string]any{"registrationStatus": "Closed"}, wantStatus: entity.RegistrationClosed},
		{name: "legacy status", fields: map[string]any{"status": "Ended"}, wantStatus: entity.RegistrationEnded},
		{name: "both set", fields: map[string]any{"status": "Ended", "registrationStatus": "Closed"}, wantStatus: entity.RegistrationClosed},
		{name: "untouched", fields: map[string]any{"title": "Intro to Deep Learning"}, wantStatus: entity.RegistrationOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContentFixture(t)
			f.allowPublish()
			ctx := context.Background()

			created := f.createEvent(t, eventFields())
			f.srv.now = func() time.Time { return testNow.Add(time.Hour) }

			item, err := f.srv.Update(ctx, adminSession, usecase.UpdateContentInput{
				Kind:   entity.KindEvent,
				ID:     created.ID,
				Fields: tt.fields,
			})
			require.NoError(t, err)

			event := item.(*entity.Event)
			assert.Equal(t, tt.wantStatus, event.RegistrationStatus)
			assert.Equal(t, event.RegistrationStatus, event.Status)
			assert.Equal(t, created.ID, event.ID)
			assert.Equal(t, int64(2), event.Version)
			assert.True(t, event.CreatedAt.Equal(testNow))
			assert.True(t, event.UpdatedAt.Equal(testNow.Add(time.Hour)))

			stored, err := f.srv.Get(ctx, entity.KindEvent, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, stored.(*entity.Event).Status)
		})
	}
}

func TestContentService_Update_Rejected(t *testing.T) {
	f := newContentFixture(t)
	f.allowPublish()
	ctx := context.Background()

	created := f.createEvent(t, eventFields())
	stale := int64(7)

	tests := []struct {
		name    string
		session entity.Session
		input   usecase.UpdateContentInput
		wantErr error
	}{
		{
			name:    "non-admin",
			session: userSession,
			input:   usecase.UpdateContentInput{Kind: entity.KindEvent, ID: created.ID, Fields: map[string]any{"title": "x"}},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "stale version",
			session: adminSession,
			input:   usecase.UpdateContentInput{Kind: entity.KindEvent, ID: created.ID, Fields: map[string]any{"title": "x"}, ExpectedVersion: &stale},
			wantErr: domainerrors.ErrVersionConflict,
		},
		{
			name:    "missing document",
			session: adminSession,
			input:   usecase.UpdateContentInput{Kind: entity.KindEvent, ID: "missing", Fields: map[string]any{"title": "x"}},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name:    "cleared required field",
			session: adminSession,
			input:   usecase.UpdateContentInput{Kind: entity.KindEvent, ID: created.ID, Fields: map[string]any{"title": ""}},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown field",
			session: adminSession,
			input:   usecase.UpdateContentInput{Kind: entity.KindEvent, ID: created.ID, Fields: map[string]any{"venue": "Room 1"}},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.srv.Update(ctx, tt.session, tt.input)
			require.ErrorIs(t, err, tt.wantErr)

			stored, err := f.srv.Get(ctx, entity.KindEvent, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Intro to ML", stored.Meta().Title)
			assert.Equal(t, int64(1), stored.Meta().Version)
		})
	}
}

func TestContentService_Update_MatchingVersion(t *testing.T) {
	f := newContentFixture(t)
	f.allowPublish()

	created := f.createEvent(t, eventFields())
	version := created.Version

	item, err := f.srv.Update(context.Background(), adminSession, usecase.UpdateContentInput{
		Kind:            entity.KindEvent,
		ID:              created.ID,
		Fields:          map[string]any{"location": "Room 204"},
		ExpectedVersion: &version,
	})
	require.NoError(t, err)
	assert.Equal(t, "Room 204", item.(*entity.Event).Location)
	assert.Equal(t, "Intro to ML", item.Meta().Title)
}

func TestContentService_Delete(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	f.publisher.EXPECT().PublishContentEvent(mock.Anything, mock.Anything).Return(nil).Once()
	created := f.createEvent(t, eventFields())

	err := f.srv.Delete(ctx, userSession, entity.KindEvent, created.ID)
	require.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	f.publisher.EXPECT().
		PublishContentEvent(ctx, mock.MatchedBy(func(e *service.ContentEvent) bool {
			return e.Operation == service.ContentDeleted && e.DocumentID == created.ID
		})).
		Return(nil).Once()
	require.NoError(t, f.srv.Delete(ctx, adminSession, entity.KindEvent, created.ID))

	_, err = f.srv.Get(ctx, entity.KindEvent, created.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = f.srv.Delete(ctx, adminSession, entity.KindEvent, created.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentService_RegistrationQR(t *testing.T) {
	f := newContentFixture(t)
	f.allowPublish()
	ctx := context.Background()

	withURL := eventFields()
	withURL["registrationUrl"] = "https://forms.example.com/intro"
	open := f.createEvent(t, withURL)

	closedFields := eventFields()
	closedFields["title"] = "Closed Event"
	closedFields["registrationUrl"] = "https://forms.example.com/closed"
	closedFields["registrationStatus"] = "Closed"
	closed := f.createEvent(t, closedFields)

	noURLFields := eventFields()
	noURLFields["title"] = "No Link"
	noURL := f.createEvent(t, noURLFields)

	f.qr.EXPECT().GenerateURLQR("https://forms.example.com/intro").Return([]byte("png"), nil).Once()

	png, err := f.srv.RegistrationQR(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = f.srv.RegistrationQR(ctx, closed.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationUnavailable)

	_, err = f.srv.RegistrationQR(ctx, noURL.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationUnavailable)

	_, err = f.srv.RegistrationQR(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func newMockedContentService(t *testing.T) (*contentService, *mockRepo.MockContentRepository, *mockService.MockHTMLSanitizer) {
	t.Helper()

	repo := mockRepo.NewMockContentRepository(t)
	sanitize := mockService.NewMockHTMLSanitizer(t)
	srv := NewContentService(ContentServiceParams{
		ContentRepo: repo,
		Publisher:   mockService.NewMockEventPublisher(t),
		Sanitizer:   sanitize,
		QRService:   mockService.NewMockQRCodeService(t),
		Logger:      newDiscardLogger(),
	}).(*contentService)
	srv.now = func() time.Time { return testNow }

	return srv, repo, sanitize
}

func blogFields(content string) map[string]any {
	return map[string]any{
		"title":       "Transformers, Explained",
		"description": "Attention from first principles.",
		"date":        "2025-06-01",
		"content":     content,
	}
}

func TestContentService_Create_StoreFailure(t *testing.T) {
	srv, repo, sanitize := newMockedContentService(t)

	raw := "<p>Attention</p><script>alert(1)</script>"
	sanitize.EXPECT().Sanitize(raw).Return("<p>Attention</p>").Once()
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(item entity.ContentItem) bool {
		blog, ok := item.(*entity.Blog)

		return ok && blog.Content == "<p>Attention</p>" && blog.Version == 1
	})).Return(errors.New("deadline exceeded")).Once()

	item, err := srv.Create(context.Background(), adminSession, entity.KindBlog, blogFields(raw))

	require.Error(t, err)
	assert.ErrorContains(t, err, "deadline exceeded")
	assert.Nil(t, item)
}

func TestContentService_Create_ContentSanitizedAway(t *testing.T) {
	srv, _, sanitize := newMockedContentService(t)

	raw := "<script>alert(1)</script>"
	sanitize.EXPECT().Sanitize(raw).Return("").Once()

	_, err := srv.Create(context.Background(), adminSession, entity.KindBlog, blogFields(raw))

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	verr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, []string{"content"}, verr.Missing)
}
