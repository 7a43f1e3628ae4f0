package impl

import (
	"context"
	"testing"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/memory"
	mockRepo "aiclub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestGrantAdmin(t *testing.T) {
	store, err := memory.New(newDiscardLogger())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	roleRepo := store.RoleRepo()
	require.NoError(t, roleRepo.Create(ctx, entity.NewUserRoleRecord("bob", testNow)))
	require.NoError(t, roleRepo.Create(ctx, adminRecord("carol")))

	uids := []string{"alice", " bob ", "", "carol"}

	granted, err := grantAdmin(ctx, store.TransactionManager(), uids, testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, granted)

	for _, uid := range []string{"alice", "bob", "carol"} {
		record, err := roleRepo.FindByUID(ctx, uid)
		require.NoError(t, err, uid)
		assert.Equal(t, entity.Roles{entity.RoleAdmin}, record.Roles, uid)
	}

	granted, err = grantAdmin(ctx, store.TransactionManager(), uids, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, granted)
}

func TestGrantAdmin_StoreFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().RoleRepo().Return(roleRepo)
	roleRepo.EXPECT().FindByUID(mock.Anything, "alice").Return(nil, errors.New("unavailable"))

	granted, err := grantAdmin(context.Background(), txManager, []string{"alice", "bob"}, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grant admin to alice")
	assert.Equal(t, 0, granted)
}

func TestBootstrapAdmins(t *testing.T) {
	store, err := memory.New(newDiscardLogger())
	require.NoError(t, err)
	defer store.Close()

	lc := fxtest.NewLifecycle(t)
	BootstrapAdmins(RoleBootstrapParams{
		Lc:        lc,
		TxManager: store.TransactionManager(),
		Config:    &config.Config{Bootstrap: &config.BootstrapConfig{AdminUIDs: []string{"root"}}},
		Logger:    newDiscardLogger(),
	})

	_, err = store.RoleRepo().FindByUID(context.Background(), "root")
	require.ErrorIs(t, err, repository.ErrRoleRecordNotFound)

	lc.RequireStart()
	defer lc.RequireStop()

	record, err := store.RoleRepo().FindByUID(context.Background(), "root")
	require.NoError(t, err)
	assert.True(t, record.IsAdmin())
}
