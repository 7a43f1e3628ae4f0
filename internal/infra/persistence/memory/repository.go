package memory

import (
	"context"
	"io"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

type roleRepository struct {
	store *Store
	tx    *txn
}

// FindByUID retrieves the role record stored under uid.
func (repo *roleRepository) FindByUID(ctx context.Context, uid string) (*entity.UserRoleRecord, error) {
	defer repo.store.readLock(repo.tx)()

	roleM := &model.RoleModel{UID: uid}
	if err := repo.store.colls[entity.CollectionUsers].Get(ctx, roleM); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrRoleRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find role record")
	}

	return roleM.ToDomain(), nil
}

// Create writes a new role record.
func (repo *roleRepository) Create(ctx context.Context, record *entity.UserRoleRecord) error {
	err := repo.store.write(ctx, repo.tx, entity.CollectionUsers, record.UID, func(coll *docstore.Collection) error {
		return coll.Create(ctx, model.NewRoleModel(record))
	})
	if gcerrors.Code(err) == gcerrors.AlreadyExists {
		return repository.ErrRoleRecordExists
	}

	return errors.Wrap(err, "failed to create role record")
}

// Save overwrites the role record of record.UID.
func (repo *roleRepository) Save(ctx context.Context, record *entity.UserRoleRecord) error {
	err := repo.store.write(ctx, repo.tx, entity.CollectionUsers, record.UID, func(coll *docstore.Collection) error {
		return coll.Put(ctx, model.NewRoleModel(record))
	})

	return errors.Wrap(err, "failed to save role record")
}

type contentRepository struct {
	store *Store
	tx    *txn
}

// Create stores a new item, assigning a generated id when none is set.
func (repo *contentRepository) Create(ctx context.Context, item entity.ContentItem) error {
	meta := item.Meta()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}

	err := repo.store.write(ctx, repo.tx, item.Kind().Collection(), meta.ID, func(coll *docstore.Collection) error {
		return coll.Create(ctx, model.FromContentItem(item))
	})

	return errors.Wrapf(err, "failed to create %s", item.Kind())
}

// FindByID retrieves one item by document id.
func (repo *contentRepository) FindByID(ctx context.Context, kind entity.Kind, id string) (entity.ContentItem, error) {
	defer repo.store.readLock(repo.tx)()

	doc := model.NewContentDocument(kind)
	doc.Base().ID = id
	if err := repo.store.colls[kind.Collection()].Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", kind)
	}

	return doc.ToDomain(), nil
}

// FindBySlug retrieves the first item carrying slug.
func (repo *contentRepository) FindBySlug(ctx context.Context, kind entity.Kind, slug string) (entity.ContentItem, error) {
	defer repo.store.readLock(repo.tx)()

	it := repo.store.colls[kind.Collection()].Query().Where("slug", "=", slug).Limit(1).Get(ctx)
	defer it.Stop()

	doc := model.NewContentDocument(kind)
	err := it.Next(ctx, doc)
	if errors.Is(err, io.EOF) {
		return nil, repository.ErrContentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s by slug", kind)
	}

	return doc.ToDomain(), nil
}

// List retrieves every item of kind in the default order.
func (repo *contentRepository) List(ctx context.Context, kind entity.Kind) ([]entity.ContentItem, error) {
	unlock := repo.store.readLock(repo.tx)
	docs, err := repo.store.all(ctx, kind.Collection())
	unlock()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", kind)
	}

	entity.SortDocuments(docs, entity.DefaultOrder(kind.Collection()))

	items := make([]entity.ContentItem, len(docs))
	for i, doc := range docs {
		items[i] = doc.(entity.ContentItem)
	}

	return items, nil
}

// Replace overwrites the whole document.
func (repo *contentRepository) Replace(ctx context.Context, item entity.ContentItem) error {
	err := repo.store.write(ctx, repo.tx, item.Kind().Collection(), item.Meta().ID, func(coll *docstore.Collection) error {
		return coll.Replace(ctx, model.FromContentItem(item))
	})
	if gcerrors.Code(err) == gcerrors.NotFound {
		return repository.ErrContentNotFound
	}

	return errors.Wrapf(err, "failed to replace %s", item.Kind())
}

// Delete removes one item.
func (repo *contentRepository) Delete(ctx context.Context, kind entity.Kind, id string) error {
	err := repo.store.write(ctx, repo.tx, kind.Collection(), id, func(coll *docstore.Collection) error {
		doc := model.NewContentDocument(kind)
		doc.Base().ID = id
		err := coll.Delete(ctx, doc)
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return err
	})

	return errors.Wrapf(err, "failed to delete %s", kind)
}

type teamRepository struct {
	store *Store
}

// List retrieves every team ordered by its order field.
func (repo *teamRepository) List(ctx context.Context) ([]*entity.Team, error) {
	docs, err := repo.store.snapshot(ctx, entity.CollectionTeams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}

	entity.SortDocuments(docs, entity.DefaultOrder(entity.CollectionTeams))

	teams := make([]*entity.Team, len(docs))
	for i, doc := range docs {
		teams[i] = doc.(*entity.Team)
	}

	return teams, nil
}

type collectionListener struct {
	store *Store
}

// Listen delivers the current snapshot, then a fresh one after every
// committed write to collection, until ctx is done. Bursts of writes coalesce.
func (l *collectionListener) Listen(ctx context.Context, collection entity.Collection, onSnapshot func(docs []entity.Document)) error {
	if _, ok := l.store.colls[collection]; !ok {
		return errors.Errorf("unknown collection %q", collection)
	}

	w := &watcher{notify: make(chan struct{}, 1)}
	l.store.addWatcher(collection, w)
	defer l.store.removeWatcher(collection, w)

	for {
		docs, err := l.store.snapshot(ctx, collection)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrapf(err, "listen %s", collection)
		}
		onSnapshot(docs)

		select {
		case <-ctx.Done():
			return nil
		case <-w.notify:
		}
	}
}
