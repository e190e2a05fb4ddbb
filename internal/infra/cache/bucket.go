// Package cache holds the in-memory record buckets the resolver searches.
// Each bucket mirrors one store bucket wholesale; there is no TTL and no
// partial update, only explicit full refreshes.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"fuelflow/internal/domain/entity"
	domainerrors "fuelflow/internal/domain/errors"
	"fuelflow/internal/domain/repository"

	"github.com/pkg/errors"
)

// Bucket caches every record of one entity kind, keyed by store push key.
type Bucket[T entity.Named] struct {
	kind   entity.Kind
	store  repository.RecordStore
	logger *slog.Logger

	mu      sync.RWMutex
	records map[string]T
}

// NewBucket creates an empty bucket for kind. The first search fills it.
func NewBucket[T entity.Named](kind entity.Kind, store repository.RecordStore, logger *slog.Logger) *Bucket[T] {
	return &Bucket[T]{
		kind:   kind,
		store:  store,
		logger: logger,
	}
}

// Kind returns the entity kind this bucket holds.
func (b *Bucket[T]) Kind() entity.Kind {
	return b.kind
}

// Len returns the number of cached records.
func (b *Bucket[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.records)
}

// Refresh fetches the whole bucket from the store and replaces the cache in
// a single assignment. On a fetch error the previous cache stays untouched;
// readers never observe a partial view.
func (b *Bucket[T]) Refresh(ctx context.Context) error {
	var snapshot map[string]entity.Record[T]
	if err := b.store.GetPath(ctx, b.kind.BucketPath(), &snapshot); err != nil {
		return errors.Wrapf(err, "refresh %s bucket", b.kind)
	}

	records := make(map[string]T, len(snapshot))
	for key, rec := range snapshot {
		records[key] = rec.Data
	}

	b.mu.Lock()
	b.records = records
	b.mu.Unlock()

	b.logger.Info("bucket refreshed",
		slog.String("kind", string(b.kind)),
		slog.Int("records", len(records)),
	)

	return nil
}

// Search returns every cached record whose display name contains query,
// case-insensitively. An empty cache triggers exactly one refresh before
// matching, so a truly empty upstream bucket cannot cause a refresh storm.
func (b *Bucket[T]) Search(ctx context.Context, query string) ([]T, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.ErrEmptyQuery
	}

	if b.Len() == 0 {
		if err := b.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	needle := strings.ToLower(query)

	b.mu.RLock()
	defer b.mu.RUnlock()

	var matches []T
	for _, rec := range b.records {
		if strings.Contains(strings.ToLower(rec.DisplayName()), needle) {
			matches = append(matches, rec)
		}
	}

	return matches, nil
}
