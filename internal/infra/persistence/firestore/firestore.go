// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"aiclub/internal/domain/lifecycle"
	"aiclub/internal/errors"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// New creates the Firestore client of the Firebase app.
func New(ctx context.Context, params Params) (*fs.Client, error) {
	if params.App == nil {
		return nil, errors.New("firestore store requires a configured Firebase project")
	}

	client, err := params.App.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// A cheap read proves credentials and connectivity.
			it := client.Collections(ctx)
			if _, err := it.Next(); err != nil && !errors.Is(err, iterator.Done) {
				return errors.Wrap(err, "failed to reach Firestore")
			}

			params.Logger.Info("Firestore connected")

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// accessor routes reads and writes through a transaction when one is bound.
type accessor struct {
	client *fs.Client
	tx     *fs.Transaction
}

func (a accessor) get(ctx context.Context, ref *fs.DocumentRef) (*fs.DocumentSnapshot, error) {
	if a.tx != nil {
		return a.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (a accessor) create(ctx context.Context, ref *fs.DocumentRef, data any) error {
	if a.tx != nil {
		return a.tx.Create(ref, data)
	}
	_, err := ref.Create(ctx, data)

	return err
}

func (a accessor) set(ctx context.Context, ref *fs.DocumentRef, data any) error {
	if a.tx != nil {
		return a.tx.Set(ref, data)
	}
	_, err := ref.Set(ctx, data)

	return err
}

func (a accessor) delete(ctx context.Context, ref *fs.DocumentRef) error {
	if a.tx != nil {
		return a.tx.Delete(ref)
	}
	_, err := ref.Delete(ctx)

	return err
}

func (a accessor) documents(ctx context.Context, q fs.Query) *fs.DocumentIterator {
	if a.tx != nil {
		return a.tx.Documents(q)
	}

	return q.Documents(ctx)
}
