package impl

import (
	"context"
	"io"
	"log/slog"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/infra/cache"

	mocks "fuelflow/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDirectory(store *mocks.MockRecordStore) *cache.Directory {
	return cache.NewDirectory(store, newDiscardLogger())
}

// stubBucket builds a GetPath Run callback writing records of one kind into
// the snapshot a bucket fetches into.
func stubBucket[T entity.Named](records map[string]T) func(ctx context.Context, path string, out any) {
	return func(_ context.Context, _ string, out any) {
		snapshot := make(map[string]entity.Record[T], len(records))
		for key, data := range records {
			snapshot[key] = entity.Record[T]{Data: data}
		}

		*out.(*map[string]entity.Record[T]) = snapshot
	}
}
