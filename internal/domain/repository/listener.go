package repository

import (
	"context"

	"aiclub/internal/domain/entity"
)

// CollectionListener streams full snapshots of a collection.
type CollectionListener interface {
	// Listen calls onSnapshot with the full contents of the collection once
	// immediately and again after every change, until ctx is done.
	// It returns nil when ctx is cancelled and the listener error otherwise.
	// onSnapshot is never called concurrently for one Listen call.
	Listen(ctx context.Context, collection entity.Collection, onSnapshot func(docs []entity.Document)) error
}
