package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific store client.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// The function may be retried on contention, so it must not have side effects outside the factory.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// RoleRepo returns a RoleRepository bound to the current transaction.
	RoleRepo() RoleRepository

	// ContentRepo returns a ContentRepository bound to the current transaction.
	ContentRepo() ContentRepository
}
