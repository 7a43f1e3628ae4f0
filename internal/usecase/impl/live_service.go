package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/service"
	"aiclub/internal/usecase"

	"go.uber.org/fx"
)

// liveService implements the LiveUsecase interface on top of the change feed.
type liveService struct {
	feed   service.ChangeFeed
	logger *slog.Logger
}

// LiveServiceParams holds dependencies for LiveService, injected by Fx.
type LiveServiceParams struct {
	fx.In

	Feed   service.ChangeFeed
	Logger *slog.Logger
}

// NewLiveService is the constructor for liveService.
func NewLiveService(params LiveServiceParams) usecase.LiveUsecase {
	return &liveService{
		feed:   params.Feed,
		logger: params.Logger,
	}
}

// Subscribe turns the change events of collection into ordered snapshots.
func (srv *liveService) Subscribe(ctx context.Context, collection entity.Collection, order *entity.Order) (*usecase.Subscription, error) {
	events, unsubscribe, err := srv.feed.Subscribe(ctx, collection)
	if err != nil {
		return nil, err
	}

	o := entity.DefaultOrder(collection)
	if order != nil && order.Field != "" {
		o = *order
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("collection", string(collection)))
	snapshots := make(chan []entity.Document, 1)
	errs := make(chan error, 1)
	stop := make(chan struct{})

	var once sync.Once
	closeFn := func() {
		once.Do(func() { close(stop) })
	}

	go func() {
		defer close(errs)
		defer close(snapshots)
		defer unsubscribe()

		for {
			select {
			case <-ctx.Done():
				logger.Debug("Live subscription ended by context")

				return
			case <-stop:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if ev.Err != nil {
					logger.Warn("Live subscription failed", slog.Any("error", ev.Err))
					errs <- ev.Err

					return
				}

				docs := make([]entity.Document, len(ev.Documents))
				copy(docs, ev.Documents)
				entity.SortDocuments(docs, o)
				offerSnapshot(snapshots, docs)
			}
		}
	}()

	return &usecase.Subscription{
		Snapshots: snapshots,
		Errors:    errs,
		Close:     closeFn,
	}, nil
}

// offerSnapshot replaces an unread snapshot with docs. The caller is the only sender.
func offerSnapshot(ch chan []entity.Document, docs []entity.Document) {
	select {
	case ch <- docs:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- docs
}
