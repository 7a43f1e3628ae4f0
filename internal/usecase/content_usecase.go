package usecase

import (
	"context"

	"aiclub/internal/domain/entity"
)

// UpdateContentInput defines a partial update of one content item.
type UpdateContentInput struct {
	Kind   entity.Kind
	ID     string
	Fields map[string]any
	// ExpectedVersion, when set, must equal the stored version.
	ExpectedVersion *int64
}

// ContentUsecase manages events, blogs, projects and posts.
// Mutations require an admin session and are rejected before any write otherwise.
type ContentUsecase interface {
	Create(ctx context.Context, session entity.Session, kind entity.Kind, fields map[string]any) (entity.ContentItem, error)
	Update(ctx context.Context, session entity.Session, input UpdateContentInput) (entity.ContentItem, error)
	Delete(ctx context.Context, session entity.Session, kind entity.Kind, id string) error

	List(ctx context.Context, kind entity.Kind) ([]entity.ContentItem, error)
	Get(ctx context.Context, kind entity.Kind, id string) (entity.ContentItem, error)
	GetBySlug(ctx context.Context, kind entity.Kind, slug string) (entity.ContentItem, error)

	// RegistrationQR renders the registration link of an open event as a PNG QR code.
	RegistrationQR(ctx context.Context, eventID string) ([]byte, error)
}
