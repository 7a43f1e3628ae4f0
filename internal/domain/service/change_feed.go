package service

import (
	"context"

	"aiclub/internal/domain/entity"
)

// ChangeFeed fans collection snapshots out to subscribers.
type ChangeFeed interface {
	// Subscribe returns a stream of change events for a collection, starting with
	// the current snapshot. It fails if the underlying listener cannot deliver a
	// first snapshot. The stream is closed after an event carrying Err, or once
	// unsubscribe is called. unsubscribe is safe to call more than once.
	Subscribe(ctx context.Context, collection entity.Collection) (events <-chan entity.CollectionChanged, unsubscribe func(), err error)
}
