package impl

import (
	"context"
	"testing"
	"time"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	"aiclub/internal/errors"
	"aiclub/internal/infra/changefeed"
	mockService "aiclub/internal/mocks/service"
	"aiclub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const liveWait = 2 * time.Second

func receiveSnapshot(t *testing.T, sub *usecase.Subscription) []entity.Document {
	t.Helper()

	select {
	case docs, ok := <-sub.Snapshots:
		require.True(t, ok, "snapshot channel closed")

		return docs
	case <-time.After(liveWait):
		require.FailNow(t, "no snapshot received")

		return nil
	}
}

func documentIDs(docs []entity.Document) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.DocumentID()
	}

	return ids
}

func team(id string, order int) *entity.Team {
	return &entity.Team{ID: id, Name: id, Order: order}
}

func newMockFeed(t *testing.T, collection entity.Collection) (*mockService.MockChangeFeed, chan entity.CollectionChanged, chan struct{}) {
	t.Helper()

	feed := mockService.NewMockChangeFeed(t)
	events := make(chan entity.CollectionChanged, 4)
	unsubscribed := make(chan struct{})
	feed.EXPECT().Subscribe(mock.Anything, collection).
		Return(events, func() { close(unsubscribed) }, nil).Once()

	return feed, events, unsubscribed
}

func TestLiveService_SortsSnapshots(t *testing.T) {
	feed, events, _ := newMockFeed(t, entity.CollectionTeams)
	srv := NewLiveService(LiveServiceParams{Feed: feed, Logger: newDiscardLogger()})

	sub, err := srv.Subscribe(context.Background(), entity.CollectionTeams, nil)
	require.NoError(t, err)
	defer sub.Close()

	raw := []entity.Document{team("c", 2), team("b", 1), team("a", 1)}
	events <- entity.CollectionChanged{Collection: entity.CollectionTeams, Documents: raw}

	assert.Equal(t, []string{"a", "b", "c"}, documentIDs(receiveSnapshot(t, sub)))
	assert.Equal(t, "c", raw[0].DocumentID(), "feed documents must not be reordered in place")

	events <- entity.CollectionChanged{Collection: entity.CollectionTeams, Documents: raw}
	again := receiveSnapshot(t, sub)
	assert.Len(t, again, 3)
}

func TestLiveService_CustomOrder(t *testing.T) {
	feed, events, _ := newMockFeed(t, entity.CollectionTeams)
	srv := NewLiveService(LiveServiceParams{Feed: feed, Logger: newDiscardLogger()})

	sub, err := srv.Subscribe(context.Background(), entity.CollectionTeams, &entity.Order{Field: "order", Descending: true})
	require.NoError(t, err)
	defer sub.Close()

	events <- entity.CollectionChanged{Documents: []entity.Document{team("a", 1), team("b", 3), team("c", 2)}}

	assert.Equal(t, []string{"b", "c", "a"}, documentIDs(receiveSnapshot(t, sub)))
}

func TestLiveService_ErrorEndsSubscription(t *testing.T) {
	feed, events, unsubscribed := newMockFeed(t, entity.CollectionEvents)
	srv := NewLiveService(LiveServiceParams{Feed: feed, Logger: newDiscardLogger()})

	sub, err := srv.Subscribe(context.Background(), entity.CollectionEvents, nil)
	require.NoError(t, err)

	listenErr := errors.New("permission denied")
	events <- entity.CollectionChanged{Err: listenErr}

	select {
	case got := <-sub.Errors:
		assert.ErrorIs(t, got, listenErr)
	case <-time.After(liveWait):
		require.FailNow(t, "no error received")
	}

	select {
	case <-unsubscribed:
	case <-time.After(liveWait):
		require.FailNow(t, "feed not released")
	}

	_, ok := <-sub.Snapshots
	assert.False(t, ok)
	sub.Close()
}

func TestLiveService_CloseAndCancel(t *testing.T) {
	tests := []struct {
		name string
		end  func(cancel context.CancelFunc, sub *usecase.Subscription)
	}{
		{name: "close", end: func(_ context.CancelFunc, sub *usecase.Subscription) { sub.Close(); sub.Close() }},
		{name: "context cancelled", end: func(cancel context.CancelFunc, _ *usecase.Subscription) { cancel() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, _, unsubscribed := newMockFeed(t, entity.CollectionBlogs)
			srv := NewLiveService(LiveServiceParams{Feed: feed, Logger: newDiscardLogger()})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sub, err := srv.Subscribe(ctx, entity.CollectionBlogs, nil)
			require.NoError(t, err)

			tt.end(cancel, sub)

			select {
			case <-unsubscribed:
			case <-time.After(liveWait):
				require.FailNow(t, "feed not released")
			}
			_, ok := <-sub.Errors
			assert.False(t, ok)
		})
	}
}

func TestLiveService_SubscribeFailure(t *testing.T) {
	feed := mockService.NewMockChangeFeed(t)
	feed.EXPECT().Subscribe(mock.Anything, entity.CollectionPosts).Return(nil, nil, errors.New("unavailable"))
	srv := NewLiveService(LiveServiceParams{Feed: feed, Logger: newDiscardLogger()})

	sub, err := srv.Subscribe(context.Background(), entity.CollectionPosts, nil)
	require.Error(t, err)
	assert.Nil(t, sub)
}

func TestLiveService_SeesCommittedCreate(t *testing.T) {
	f := newContentFixture(t)
	f.allowPublish()

	hub := changefeed.NewHub(changefeed.Params{
		Lc:       fxtest.NewLifecycle(t),
		Config:   &config.Config{Live: &config.LiveConfig{SubscribeTimeout: liveWait}},
		Logger:   newDiscardLogger(),
		Listener: f.store.Listener(),
	})
	defer hub.Close()

	srv := NewLiveService(LiveServiceParams{Feed: hub, Logger: newDiscardLogger()})

	older := eventFields()
	older["title"] = "Older"
	older["date"] = "2025-01-10"
	first := f.createEvent(t, older)

	sub, err := srv.Subscribe(context.Background(), entity.CollectionEvents, nil)
	require.NoError(t, err)
	defer sub.Close()

	assert.Equal(t, []string{first.ID}, documentIDs(receiveSnapshot(t, sub)))

	created := f.createEvent(t, eventFields())

	var ids []string
	require.Eventually(t, func() bool {
		select {
		case docs := <-sub.Snapshots:
			ids = documentIDs(docs)
		default:
		}

		return len(ids) == 2
	}, liveWait, 10*time.Millisecond)

	assert.Equal(t, []string{created.ID, first.ID}, ids)
}
