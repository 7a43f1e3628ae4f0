package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/repository"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"
	"aiclub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	txManager   repository.TransactionManager
	contentRepo repository.ContentRepository
	publisher   service.EventPublisher
	sanitizer   service.HTMLSanitizer
	qrService   service.QRCodeService
	metrics     service.Metrics
	validator   *contentValidator
	logger      *slog.Logger
	now         func() time.Time
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContentRepo repository.ContentRepository
	Publisher   service.EventPublisher
	Sanitizer   service.HTMLSanitizer
	QRService   service.QRCodeService
	Metrics     service.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &contentService{
		txManager:   params.TxManager,
		contentRepo: params.ContentRepo,
		publisher:   params.Publisher,
		sanitizer:   params.Sanitizer,
		qrService:   params.QRService,
		metrics:     metrics,
		validator:   newContentValidator(),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireAdmin(session entity.Session) error {
	if session.Identity == nil || !session.IsAdmin {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

func requireKind(kind entity.Kind) error {
	if !kind.IsValid() {
		return domainerrors.ErrUnknownKind.WithDetails(string(kind))
	}

	return nil
}

// Create validates fields and writes a new item.
func (srv *contentService) Create(ctx context.Context, session entity.Session, kind entity.Kind, fields map[string]any) (entity.ContentItem, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	if err := requireKind(kind); err != nil {
		return nil, err
	}

	item, err := decodeContent(kind, fields)
	if err != nil {
		return nil, err
	}
	if err := srv.prepare(item, hasLegacyStatus(fields)); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	meta := item.Meta()
	meta.ID = ""
	meta.CreatedAt = now
	meta.UpdatedAt = now
	meta.Version = 1

	if err := srv.contentRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "create content")
	}

	srv.afterMutation(ctx, session, item, service.ContentCreated)

	return item, nil
}

// Update merges fields over the stored item and overwrites it.
func (srv *contentService) Update(ctx context.Context, session entity.Session, input usecase.UpdateContentInput) (entity.ContentItem, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	if err := requireKind(input.Kind); err != nil {
		return nil, err
	}

	var updated entity.ContentItem
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		contentRepo := factory.ContentRepo()

		existing, err := contentRepo.FindByID(ctx, input.Kind, input.ID)
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrNotFound.WithDetails(string(input.Kind) + " " + input.ID)
		}
		if err != nil {
			return errors.Wrap(err, "find content")
		}

		stored := existing.Meta()
		if input.ExpectedVersion != nil && *input.ExpectedVersion != stored.Version {
			return domainerrors.ErrVersionConflict
		}

		item, err := mergeContent(existing, input.Fields)
		if err != nil {
			return err
		}
		if err := srv.prepare(item, hasLegacyStatus(input.Fields)); err != nil {
			return err
		}

		meta := item.Meta()
		meta.ID = stored.ID
		meta.CreatedAt = stored.CreatedAt
		meta.UpdatedAt = srv.now().UTC()
		meta.Version = stored.Version + 1

		if err := contentRepo.Replace(ctx, item); err != nil {
			return errors.Wrap(err, "replace content")
		}
		updated = item

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.afterMutation(ctx, session, updated, service.ContentUpdated)

	return updated, nil
}

// Delete removes an item.
func (srv *contentService) Delete(ctx context.Context, session entity.Session, kind entity.Kind, id string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	if err := requireKind(kind); err != nil {
		return err
	}

	var deleted entity.ContentItem
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		contentRepo := factory.ContentRepo()

		existing, err := contentRepo.FindByID(ctx, kind, id)
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrNotFound.WithDetails(string(kind) + " " + id)
		}
		if err != nil {
			return errors.Wrap(err, "find content")
		}
		deleted = existing

		return errors.Wrap(contentRepo.Delete(ctx, kind, id), "delete content")
	})
	if err != nil {
		return err
	}

	srv.afterMutation(ctx, session, deleted, service.ContentDeleted)

	return nil
}

// List returns every item of a kind, newest first.
func (srv *contentService) List(ctx context.Context, kind entity.Kind) ([]entity.ContentItem, error) {
	if err := requireKind(kind); err != nil {
		return nil, err
	}

	items, err := srv.contentRepo.List(ctx, kind)
	if err != nil {
		return nil, errors.Wrap(err, "list content")
	}

	return items, nil
}

// Get returns one item by id.
func (srv *contentService) Get(ctx context.Context, kind entity.Kind, id string) (entity.ContentItem, error) {
	if err := requireKind(kind); err != nil {
		return nil, err
	}

	item, err := srv.contentRepo.FindByID(ctx, kind, id)
	if errors.Is(err, repository.ErrContentNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails(string(kind) + " " + id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "find content")
	}

	return item, nil
}

// GetBySlug returns one item by slug.
func (srv *contentService) GetBySlug(ctx context.Context, kind entity.Kind, slug string) (entity.ContentItem, error) {
	if err := requireKind(kind); err != nil {
		return nil, err
	}

	item, err := srv.contentRepo.FindBySlug(ctx, kind, slug)
	if errors.Is(err, repository.ErrContentNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails(string(kind) + " " + slug)
	}
	if err != nil {
		return nil, errors.Wrap(err, "find content by slug")
	}

	return item, nil
}

// RegistrationQR renders the registration URL of an open event.
func (srv *contentService) RegistrationQR(ctx context.Context, eventID string) ([]byte, error) {
	item, err := srv.Get(ctx, entity.KindEvent, eventID)
	if err != nil {
		return nil, err
	}

	event, ok := item.(*entity.Event)
	if !ok || event.RegistrationURL == "" || event.RegistrationStatus != entity.RegistrationOpen {
		return nil, domainerrors.ErrRegistrationUnavailable
	}

	png, err := srv.qrService.GenerateURLQR(event.RegistrationURL)
	if err != nil {
		return nil, errors.Wrap(err, "generate registration QR code")
	}

	return png, nil
}

// prepare normalizes, sanitizes and validates a decoded item in place.
func (srv *contentService) prepare(item entity.ContentItem, preferLegacyStatus bool) error {
	item.Meta().Normalize()

	switch v := item.(type) {
	case *entity.Event:
		v.SyncStatus(preferLegacyStatus)
	case *entity.Blog:
		v.Content = srv.sanitizer.Sanitize(v.Content)
	}

	return srv.validator.Validate(item)
}

// hasLegacyStatus reports whether a caller set only the legacy event status.
func hasLegacyStatus(fields map[string]any) bool {
	_, legacy := fields["status"]
	_, current := fields["registrationStatus"]

	return legacy && !current
}

// afterMutation publishes the change and records it. Publishing is best effort:
// readers learn about the change from the store listener either way.
func (srv *contentService) afterMutation(ctx context.Context, session entity.Session, item entity.ContentItem, op service.ContentOperation) {
	meta := item.Meta()
	kind := item.Kind()

	srv.metrics.ContentMutation(kind.String(), string(op))
	srv.log(ctx).Info("Content mutated",
		slog.String("kind", kind.String()),
		slog.String("id", meta.ID),
		slog.String("operation", string(op)),
		slog.String("actor_uid", session.UID()),
	)

	event := &service.ContentEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Kind:       kind.String(),
		DocumentID: meta.ID,
		Title:      meta.Title,
		Slug:       meta.Slug,
		Operation:  op,
		ActorUID:   session.UID(),
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishContentEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish content event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
