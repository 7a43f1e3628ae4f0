// Package changefeed fans store snapshots out to live subscribers.
//
// A Hub keeps at most one store listener per collection, shared by every
// subscriber of that collection. Each subscriber owns a one-slot channel: a
// newer snapshot replaces one the subscriber has not received yet, so slow
// consumers always see the latest state and never block the listener.
package changefeed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/repository"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"

	"go.uber.org/fx"
)

var errListenerStopped = errors.New("collection listener stopped")

// Params defines the parameters required for the hub
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Listener repository.CollectionListener
	Metrics  service.Metrics `optional:"true"`
}

// Hub implements service.ChangeFeed.
type Hub struct {
	listener         repository.CollectionListener
	logger           *slog.Logger
	metrics          service.Metrics
	subscribeTimeout time.Duration
	now              func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	feeds  map[entity.Collection]*feed
	closed bool
}

type feed struct {
	collection entity.Collection
	cancel     context.CancelFunc
	subs       map[int]chan entity.CollectionChanged
	nextID     int
	latest     *entity.CollectionChanged
	ready      chan struct{}
	setupErr   error
	done       bool
}

// NewHub creates a hub and closes it when the application stops.
func NewHub(params Params) *Hub {
	timeout := 10 * time.Second
	if params.Config.Live != nil && params.Config.Live.SubscribeTimeout > 0 {
		timeout = params.Config.Live.SubscribeTimeout
	}

	h := newHub(params.Listener, params.Logger, params.Metrics, timeout)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			h.Close()

			return nil
		},
	})

	return h
}

func newHub(listener repository.CollectionListener, logger *slog.Logger, metrics service.Metrics, timeout time.Duration) *Hub {
	if metrics == nil {
		metrics = service.NopMetrics{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		listener:         listener,
		logger:           logger,
		metrics:          metrics,
		subscribeTimeout: timeout,
		now:              time.Now,
		ctx:              ctx,
		cancel:           cancel,
		feeds:            make(map[entity.Collection]*feed),
	}
}

// Subscribe joins the shared feed of collection, starting its listener when
// this is the first subscriber, and waits for the first snapshot.
func (h *Hub) Subscribe(ctx context.Context, collection entity.Collection) (<-chan entity.CollectionChanged, func(), error) {
	if !collection.IsValid() {
		return nil, nil, domainerrors.ErrSubscriptionFailed.WithDetails("unknown collection " + string(collection))
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, nil, domainerrors.ErrSubscriptionFailed.WithDetails("change feed closed")
	}
	f, ok := h.feeds[collection]
	if !ok {
		f = h.startFeed(collection)
	}
	id := f.nextID
	f.nextID++
	ch := make(chan entity.CollectionChanged, 1)
	f.subs[id] = ch
	h.metrics.SubscriptionOpened(string(collection))
	if f.latest != nil {
		ch <- *f.latest
	}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() { h.unsubscribe(f, id) })
	}

	timer := time.NewTimer(h.subscribeTimeout)
	defer timer.Stop()

	select {
	case <-f.ready:
	case <-ctx.Done():
		unsubscribe()

		return nil, nil, errors.Wrap(ctx.Err(), "subscribe")
	case <-timer.C:
		unsubscribe()

		return nil, nil, domainerrors.ErrSubscriptionFailed.WithDetails("timed out waiting for the first snapshot of " + string(collection))
	}

	h.mu.Lock()
	setupErr := f.setupErr
	h.mu.Unlock()
	if setupErr != nil {
		unsubscribe()

		return nil, nil, domainerrors.ErrSubscriptionFailed.WithDetails(setupErr.Error())
	}

	return ch, unsubscribe, nil
}

// Close stops every listener and closes every subscriber stream.
func (h *Hub) Close() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c, f := range h.feeds {
		f.done = true
		f.cancel()
		for id, ch := range f.subs {
			close(ch)
			delete(f.subs, id)
			h.metrics.SubscriptionClosed(string(c))
		}
		delete(h.feeds, c)
	}
}

// startFeed must be called with h.mu held.
func (h *Hub) startFeed(collection entity.Collection) *feed {
	ctx, cancel := context.WithCancel(h.ctx)
	f := &feed{
		collection: collection,
		cancel:     cancel,
		subs:       make(map[int]chan entity.CollectionChanged),
		ready:      make(chan struct{}),
	}
	h.feeds[collection] = f

	h.logger.Debug("Starting collection listener", slog.String("collection", string(collection)))

	go h.run(ctx, f)

	return f
}

func (h *Hub) run(ctx context.Context, f *feed) {
	err := h.listener.Listen(ctx, f.collection, func(docs []entity.Document) {
		h.publish(f, docs)
	})
	if ctx.Err() != nil {
		return
	}
	if err == nil {
		err = errListenerStopped
	}

	h.fail(f, err)
}

func (h *Hub) publish(f *feed, docs []entity.Document) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f.done {
		return
	}

	event := entity.CollectionChanged{
		Collection: f.collection,
		Documents:  docs,
		At:         h.now(),
	}
	f.latest = &event

	select {
	case <-f.ready:
	default:
		close(f.ready)
	}

	for _, ch := range f.subs {
		offer(ch, event)
		h.metrics.SnapshotDelivered(string(f.collection))
	}
}

func (h *Hub) fail(f *feed, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f.done {
		return
	}
	f.done = true
	if h.feeds[f.collection] == f {
		delete(h.feeds, f.collection)
	}

	select {
	case <-f.ready:
		h.logger.Error("Collection listener failed",
			slog.String("collection", string(f.collection)),
			slog.Any("error", err),
		)

		event := entity.CollectionChanged{Collection: f.collection, Err: err, At: h.now()}
		for id, ch := range f.subs {
			offer(ch, event)
			close(ch)
			delete(f.subs, id)
			h.metrics.SubscriptionClosed(string(f.collection))
		}
	default:
		// Subscribers still waiting in Subscribe pick up setupErr and unsubscribe.
		f.setupErr = err
		close(f.ready)
	}
}

func (h *Hub) unsubscribe(f *feed, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := f.subs[id]
	if ok {
		delete(f.subs, id)
		close(ch)
		h.metrics.SubscriptionClosed(string(f.collection))
	}

	if len(f.subs) > 0 || f.done {
		return
	}
	f.done = true
	f.cancel()
	if h.feeds[f.collection] == f {
		delete(h.feeds, f.collection)
	}

	h.logger.Debug("Stopped collection listener", slog.String("collection", string(f.collection)))
}

// offer replaces an undelivered event with the newer one. Callers hold h.mu,
// which makes it the only sender on ch.
func offer(ch chan entity.CollectionChanged, event entity.CollectionChanged) {
	select {
	case ch <- event:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- event
}
