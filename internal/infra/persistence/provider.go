// Package persistence selects the document store backing every repository.
package persistence

import (
	"context"
	"log/slog"

	"aiclub/config"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/firestore"
	"aiclub/internal/infra/persistence/memory"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the parameters required to open the store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// Store exposes the repositories of the selected provider to fx
type Store struct {
	fx.Out

	TxManager   repository.TransactionManager
	RoleRepo    repository.RoleRepository
	ContentRepo repository.ContentRepository
	TeamRepo    repository.TeamRepository
	Listener    repository.CollectionListener
}

// New opens the store named by store.provider.
func New(ctx context.Context, params Params) (Store, error) {
	switch params.Config.Store.Provider {
	case config.StoreProviderFirestore:
		client, err := firestore.New(ctx, firestore.Params{
			Lifecycle: params.Lifecycle,
			App:       params.App,
			Logger:    params.Logger,
		})
		if err != nil {
			return Store{}, err
		}

		return Store{
			TxManager:   firestore.NewTransactionManager(client),
			RoleRepo:    firestore.NewRoleRepository(client),
			ContentRepo: firestore.NewContentRepository(client),
			TeamRepo:    firestore.NewTeamRepository(client),
			Listener:    firestore.NewCollectionListener(client, params.Logger),
		}, nil

	case config.StoreProviderMemory, "":
		store, err := memory.New(params.Logger)
		if err != nil {
			return Store{}, err
		}
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		params.Logger.Warn("Using in-memory store, data is lost on restart")

		return Store{
			TxManager:   store.TransactionManager(),
			RoleRepo:    store.RoleRepo(),
			ContentRepo: store.ContentRepo(),
			TeamRepo:    store.TeamRepo(),
			Listener:    store.Listener(),
		}, nil

	default:
		return Store{}, errors.Errorf("unknown store provider: %s", params.Config.Store.Provider)
	}
}
