package changefeed

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/errors"
	mockRepo "aiclub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeListener lets a test push snapshots and failures into a running Listen call.
type fakeListener struct {
	mu       sync.Mutex
	setupErr error
	starts   int
	sinks    map[entity.Collection]chan listenerInput
	stopped  chan entity.Collection
	initial  []entity.Document
}

type listenerInput struct {
	docs []entity.Document
	err  error
}

func newFakeListener() *fakeListener {
	return &fakeListener{
		sinks:   make(map[entity.Collection]chan listenerInput),
		stopped: make(chan entity.Collection, 8),
	}
}

func (l *fakeListener) Listen(ctx context.Context, collection entity.Collection, onSnapshot func([]entity.Document)) error {
	l.mu.Lock()
	l.starts++
	if l.setupErr != nil {
		err := l.setupErr
		l.mu.Unlock()

		return err
	}
	in := make(chan listenerInput, 8)
	l.sinks[collection] = in
	initial := l.initial
	l.mu.Unlock()

	defer func() { l.stopped <- collection }()

	onSnapshot(initial)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-in:
			if msg.err != nil {
				return msg.err
			}
			onSnapshot(msg.docs)
		}
	}
}

func (l *fakeListener) push(c entity.Collection, msg listenerInput) {
	l.mu.Lock()
	in := l.sinks[c]
	l.mu.Unlock()
	in <- msg
}

func (l *fakeListener) startCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.starts
}

func newTestHub(l *fakeListener) *Hub {
	return newHub(l, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, time.Second)
}

func blog(id string) entity.Document {
	return &entity.Blog{ContentMeta: entity.ContentMeta{ID: id}}
}

func receive(t *testing.T, ch <-chan entity.CollectionChanged) entity.CollectionChanged {
	t.Helper()

	select {
	case ev, ok := <-ch:
		require.True(t, ok, "stream closed")

		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	return entity.CollectionChanged{}
}

// waitClosed drains any buffered snapshot and fails unless ch is closed.
func waitClosed(t *testing.T, ch <-chan entity.CollectionChanged) {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("stream not closed")
		}
	}
}

func ids(docs []entity.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.DocumentID())
	}

	return out
}

func TestHub_SubscribeDeliversCurrentSnapshotFirst(t *testing.T) {
	l := newFakeListener()
	l.initial = []entity.Document{blog("a")}
	h := newTestHub(l)
	defer h.Close()

	events, unsubscribe, err := h.Subscribe(context.Background(), entity.CollectionBlogs)
	require.NoError(t, err)
	defer unsubscribe()

	ev := receive(t, events)
	assert.Equal(t, entity.CollectionBlogs, ev.Collection)
	assert.Equal(t, []string{"a"}, ids(ev.Documents))
	assert.NoError(t, ev.Err)

	l.push(entity.CollectionBlogs, listenerInput{docs: []entity.Document{blog("a"), blog("b")}})
	ev = receive(t, events)
	assert.Equal(t, []string{"a", "b"}, ids(ev.Documents))
}

func TestHub_SharesOneListenerAndReplaysLatest(t *testing.T) {
	l := newFakeListener()
	h := newTestHub(l)
	defer h.Close()

	first, unsubFirst, err := h.Subscribe(context.Background(), entity.CollectionBlogs)
	require.NoError(t, err)
	defer unsubFirst()
	receive(t, first)

	l.push(entity.CollectionBlogs, listenerInput{docs: []entity.Document{blog("x")}})
	assert.Equal(t, []string{"x"}, ids(receive(t, first).Documents))

	late, unsubLate, err := h.Subscribe(context.Background(), entity.CollectionBlogs)
	require.NoError(t, err)
	defer unsubLate()

	assert.Equal(t, []string{"x"}, ids(receive(t, late).Documents))
	assert.Equal(t, 1, l.startCount())
}

func TestHub_CoalescesUndeliveredSnapshots(t *testing.T) {
	l := newFakeListener()
	h := newTestHub(l)
	defer h.Close()

	events, unsubscribe, err := h.Subscribe(context.Background(), entity.CollectionBlogs)
	require.NoError(t, err)
	defer unsubscribe()

	h.mu.Lock()
	f := h.feeds[entity.CollectionBlogs]
	h.mu.Unlock()
	require.NotNil(t, f)

	h.publish(f, []entity.Document{blog("1")})
	h.publish(f, []entity.Document{blog("2")})
	h.publish(f, []entity.Document{blog("3")})

	assert.Equal(t, []string{"3"}, ids(receive(t, events).Documents))
	select {
	case ev := <-events:
		t.Fatalf("unexpected extra event %v", ids(ev.Documents))
	default:
	}
}

func TestHub_SetupFailureIsReturned(t *testing.T) {
	l := newFakeListener()
	l.setupErr = errors.New("permission denied")
	h := newTestHub(l)
	defer h.Close()

	events, unsubscribe, err := h.Subscribe(context.Background(), entity.CollectionEvents)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionFailed)
	assert.Nil(t, events)
	assert.Nil(t, unsubscribe)

	h.mu.Lock()
	assert.Empty(t, h.feeds)
	h.mu.Unlock()
}

func TestHub_MidStreamFailureClosesStreams(t *testing.T) {
	l := newFakeListener()
	h := newTestHub(l)
	defer h.Close()

	events, unsubscribe, err := h.Subscribe(context.Background(), entity.CollectionPosts)
	require.NoError(t, err)
	defer unsubscribe()
	receive(t, events)

	l.push(entity.CollectionPosts, listenerInput{err: errors.New("connection lost")})

	ev := receive(t, events)
	require.Error(t, ev.Err)
	assert.Contains(t, ev.Err.Error(), "connection lost")

	_, ok := <-events
	assert.False(t, ok)

	// A new subscription starts a fresh listener.
	again, unsubAgain, err := h.Subscribe(context.Background(), entity.CollectionPosts)
	require.NoError(t, err)
	defer unsubAgain()
	receive(t, again)
	assert.Equal(t, 2, l.startCount())
}

func TestHub_LastUnsubscribeStopsListener(t *testing.T) {
	l := newFakeListener()
	h := newTestHub(l)
	defer h.Close()

	a, unsubA, err := h.Subscribe(context.Background(), entity.CollectionProjects)
	require.NoError(t, err)
	_, unsubB, err := h.Subscribe(context.Background(), entity.CollectionProjects)
	require.NoError(t, err)

	unsubA()
	unsubA()
	waitClosed(t, a)

	select {
	case <-l.stopped:
		t.Fatal("listener stopped while a subscriber remains")
	case <-time.After(50 * time.Millisecond):
	}

	unsubB()
	select {
	case c := <-l.stopped:
		assert.Equal(t, entity.CollectionProjects, c)
	case <-time.After(time.Second):
		t.Fatal("listener not stopped")
	}
}

func TestHub_RejectsUnknownCollectionAndClosedHub(t *testing.T) {
	h := newTestHub(newFakeListener())

	_, _, err := h.Subscribe(context.Background(), entity.Collection("nope"))
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionFailed)

	h.Close()
	_, _, err = h.Subscribe(context.Background(), entity.CollectionBlogs)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionFailed)
}

func TestHub_ListensOncePerCollection(t *testing.T) {
	listener := mockRepo.NewMockCollectionListener(t)
	stopped := make(chan struct{})
	listener.EXPECT().Listen(mock.Anything, entity.CollectionBlogs, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entity.Collection, onSnapshot func([]entity.Document)) error {
			defer close(stopped)
			onSnapshot([]entity.Document{blog("b1"), blog("b2")})
			<-ctx.Done()

			return nil
		}).Once()

	h := newHub(listener, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, time.Second)
	defer h.Close()

	first, unsubFirst, err := h.Subscribe(context.Background(), entity.CollectionBlogs)
	require.NoError(t, err)
	second, unsubSecond, err := h.Subscribe(context.Background(), entity.CollectionBlogs)
	require.NoError(t, err)

	assert.Equal(t, []string{"b1", "b2"}, ids(receive(t, first).Documents))
	assert.Equal(t, []string{"b1", "b2"}, ids(receive(t, second).Documents))

	unsubFirst()
	unsubSecond()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("listener not cancelled")
	}
}
