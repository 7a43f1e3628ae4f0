package repository

import (
	"context"

	"aiclub/internal/domain/entity"
	"aiclub/internal/errors"
)

// ErrContentNotFound is returned when no document matches.
var ErrContentNotFound = errors.New("content not found")

// ContentRepository persists content items of every kind.
type ContentRepository interface {
	// Create stores a new item. The id is generated when item.Meta().ID is empty.
	Create(ctx context.Context, item entity.ContentItem) error

	// FindByID retrieves one item.
	FindByID(ctx context.Context, kind entity.Kind, id string) (entity.ContentItem, error)

	// FindBySlug retrieves the first item with the given slug.
	FindBySlug(ctx context.Context, kind entity.Kind, slug string) (entity.ContentItem, error)

	// List retrieves every item of a kind ordered by date, newest first.
	List(ctx context.Context, kind entity.Kind) ([]entity.ContentItem, error)

	// Replace overwrites an existing item with the full document.
	Replace(ctx context.Context, item entity.ContentItem) error

	// Delete removes one item. Deleting a missing item is not an error.
	Delete(ctx context.Context, kind entity.Kind, id string) error
}
