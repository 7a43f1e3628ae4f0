// Package memory implements the persistence layer on gocloud.dev in-memory
// docstore collections. It backs local development and tests, and notifies
// collection listeners after every committed write.
package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/model"

	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

var collections = []entity.Collection{
	entity.CollectionEvents,
	entity.CollectionBlogs,
	entity.CollectionProjects,
	entity.CollectionPosts,
	entity.CollectionUsers,
	entity.CollectionTeams,
}

func keyField(c entity.Collection) string {
	if c == entity.CollectionUsers {
		return "uid"
	}

	return "id"
}

// Store holds one docstore collection per entity.Collection.
// Transactions take the write lock for their whole duration; reads outside a
// transaction take the read lock, so readers never observe a partial transaction.
type Store struct {
	mu    sync.RWMutex
	colls map[entity.Collection]*docstore.Collection

	watchMu  sync.Mutex
	watchers map[entity.Collection]map[*watcher]struct{}

	logger *slog.Logger
}

type watcher struct {
	notify chan struct{}
}

// New opens an empty store.
func New(logger *slog.Logger) (*Store, error) {
	s := &Store{
		colls:    make(map[entity.Collection]*docstore.Collection, len(collections)),
		watchers: make(map[entity.Collection]map[*watcher]struct{}),
		logger:   logger,
	}

	for _, c := range collections {
		coll, err := memdocstore.OpenCollection(keyField(c), nil)
		if err != nil {
			_ = s.Close()

			return nil, errors.Wrapf(err, "open memory collection %s", c)
		}
		s.colls[c] = coll
	}

	return s, nil
}

// Close releases every collection.
func (s *Store) Close() error {
	var errs []error
	for _, coll := range s.colls {
		if err := coll.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// TransactionManager returns the store's transaction manager.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

// RoleRepo returns a role repository outside any transaction.
func (s *Store) RoleRepo() repository.RoleRepository {
	return &roleRepository{store: s}
}

// ContentRepo returns a content repository outside any transaction.
func (s *Store) ContentRepo() repository.ContentRepository {
	return &contentRepository{store: s}
}

// TeamRepo returns the team repository.
func (s *Store) TeamRepo() repository.TeamRepository {
	return &teamRepository{store: s}
}

// Listener returns the store's collection listener.
func (s *Store) Listener() repository.CollectionListener {
	return &collectionListener{store: s}
}

func (s *Store) readLock(tx *txn) func() {
	if tx != nil {
		return func() {}
	}
	s.mu.RLock()

	return s.mu.RUnlock
}

// write runs op against collection c. Inside a transaction it records how to
// undo op; outside one it takes the write lock and notifies listeners afterwards.
func (s *Store) write(ctx context.Context, tx *txn, c entity.Collection, key string, op func(coll *docstore.Collection) error) error {
	coll := s.colls[c]

	if tx == nil {
		s.mu.Lock()
		err := op(coll)
		s.mu.Unlock()
		if err != nil {
			return err
		}
		s.notify(c)

		return nil
	}

	prior, existed, err := s.load(ctx, c, key)
	if err != nil {
		return err
	}
	if err := op(coll); err != nil {
		return err
	}

	tx.touched[c] = struct{}{}
	tx.undo = append(tx.undo, func(ctx context.Context) error {
		if existed {
			return coll.Put(ctx, prior)
		}
		err := coll.Delete(ctx, map[string]any{keyField(c): key})
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return err
	})

	return nil
}

// load reads the raw stored form of one document.
func (s *Store) load(ctx context.Context, c entity.Collection, key string) (doc map[string]any, existed bool, err error) {
	doc = map[string]any{keyField(c): key}
	err = s.colls[c].Get(ctx, doc)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "load %s/%s", c, key)
	}
	// Restoring must not be conditional on the revision read here.
	delete(doc, docstore.DefaultRevisionField)

	return doc, true, nil
}

// all decodes every document of c. The caller holds the read lock.
func (s *Store) all(ctx context.Context, c entity.Collection) ([]entity.Document, error) {
	it := s.colls[c].Query().Get(ctx)
	defer it.Stop()

	var docs []entity.Document
	for {
		doc, err := model.DecodeDocument(c, "", func(dst any) error {
			return it.Next(ctx, dst)
		})
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

func (s *Store) snapshot(ctx context.Context, c entity.Collection) ([]entity.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.all(ctx, c)
}

func (s *Store) notify(c entity.Collection) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	for w := range s.watchers[c] {
		select {
		case w.notify <- struct{}{}:
		default:
		}
	}
}

func (s *Store) addWatcher(c entity.Collection, w *watcher) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if s.watchers[c] == nil {
		s.watchers[c] = make(map[*watcher]struct{})
	}
	s.watchers[c][w] = struct{}{}
}

func (s *Store) removeWatcher(c entity.Collection, w *watcher) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	delete(s.watchers[c], w)
}

// PutTeam writes a team, replacing any team with the same id.
func (s *Store) PutTeam(ctx context.Context, team *entity.Team) error {
	return s.write(ctx, nil, entity.CollectionTeams, team.ID, func(coll *docstore.Collection) error {
		return coll.Put(ctx, model.NewTeamModel(team))
	})
}
