package memory

import (
	"context"
	"log/slog"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
)

type txn struct {
	undo    []func(ctx context.Context) error
	touched map[entity.Collection]struct{}
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	tx    *txn
}

// RoleRepo returns a role repository bound to the transaction.
func (f *repositoryFactory) RoleRepo() repository.RoleRepository {
	return &roleRepository{store: f.store, tx: f.tx}
}

// ContentRepo returns a content repository bound to the transaction.
func (f *repositoryFactory) ContentRepo() repository.ContentRepository {
	return &contentRepository{store: f.store, tx: f.tx}
}

// Execute runs fn with exclusive access to the store. Writes are undone in
// reverse order when fn fails or panics, and listeners are notified once after commit.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	s := tm.store
	tx := &txn{touched: make(map[entity.Collection]struct{})}

	s.mu.Lock()
	committed := false
	defer func() {
		if !committed {
			tm.rollback(ctx, tx)
		}
		s.mu.Unlock()

		if committed {
			for c := range tx.touched {
				s.notify(c)
			}
		}
	}()

	if err := fn(&repositoryFactory{store: s, tx: tx}); err != nil {
		return err
	}
	committed = true

	return nil
}

func (tm *transactionManager) rollback(ctx context.Context, tx *txn) {
	ctx = context.WithoutCancel(ctx)
	for i := len(tx.undo) - 1; i >= 0; i-- {
		if err := tx.undo[i](ctx); err != nil {
			tm.store.logger.Error("Failed to undo memory write", slog.Any("error", err))
		}
	}
}
