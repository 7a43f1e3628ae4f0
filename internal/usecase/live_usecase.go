package usecase

import (
	"context"

	"aiclub/internal/domain/entity"
)

// Subscription is a live, ordered view of one collection.
// Every value on Snapshots is the complete current list and supersedes the
// previous one. At most one error is sent on Errors, after which both
// channels are closed. Close is safe to call more than once.
type Subscription struct {
	Snapshots <-chan []entity.Document
	Errors    <-chan error
	Close     func()
}

// LiveUsecase subscribes to collections.
type LiveUsecase interface {
	// Subscribe fails when the first snapshot cannot be read. A nil order
	// selects the collection default. The subscription also ends when ctx is done.
	Subscribe(ctx context.Context, collection entity.Collection, order *entity.Order) (*Subscription, error)
}
