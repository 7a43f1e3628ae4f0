package firestore

import (
	"context"
	"log/slog"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// collectionListener streams query snapshots of a collection.
type collectionListener struct {
	client *fs.Client
	logger *slog.Logger
}

// NewCollectionListener is the constructor for collectionListener.
func NewCollectionListener(client *fs.Client, logger *slog.Logger) repository.CollectionListener {
	return &collectionListener{client: client, logger: logger}
}

// Listen follows collection until ctx is done. Documents that fail to decode
// are skipped and logged rather than failing the whole snapshot.
func (l *collectionListener) Listen(ctx context.Context, collection entity.Collection, onSnapshot func(docs []entity.Document)) error {
	it := l.client.Collection(collection.String()).Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
				return nil
			}

			return errors.Wrapf(err, "listen %s", collection)
		}

		snaps, err := snap.Documents.GetAll()
		if err != nil {
			return errors.Wrapf(err, "read %s snapshot", collection)
		}

		docs := make([]entity.Document, 0, len(snaps))
		for _, ds := range snaps {
			doc, err := model.DecodeDocument(collection, ds.Ref.ID, ds.DataTo)
			if err != nil {
				l.logger.Warn("Skipping undecodable document",
					slog.String("collection", collection.String()),
					slog.String("id", ds.Ref.ID),
					slog.Any("error", err),
				)

				continue
			}
			docs = append(docs, doc)
		}

		onSnapshot(docs)
	}
}
