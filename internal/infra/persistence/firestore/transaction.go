package firestore

import (
	"context"

	"aiclub/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager interface using Firestore transactions.
type firestoreTransactionManager struct {
	client *fs.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific Firestore transaction and uses it to create
// repository instances that are bound to that single transaction.
type firestoreRepositoryFactory struct {
	client *fs.Client
	tx     *fs.Transaction
}

// RoleRepo creates a role repository bound to the transaction.
func (f *firestoreRepositoryFactory) RoleRepo() repository.RoleRepository {
	return &roleRepository{accessor: accessor{client: f.client, tx: f.tx}}
}

// ContentRepo creates a content repository bound to the transaction.
func (f *firestoreRepositoryFactory) ContentRepo() repository.ContentRepository {
	return &contentRepository{accessor: accessor{client: f.client, tx: f.tx}}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *fs.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside a Firestore transaction. Firestore retries fn on
// contention, and all reads inside fn must happen before its writes.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		return fn(&firestoreRepositoryFactory{client: tm.client, tx: tx})
	})
}
