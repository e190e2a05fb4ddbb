package impl

import (
	"context"
	"log/slog"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/errors"
	"fuelflow/internal/infra/cache"
	"fuelflow/internal/usecase"

	domainerrors "fuelflow/internal/domain/errors"
)

type lookupService struct {
	dir    *cache.Directory
	logger *slog.Logger
}

// NewLookupService creates the resolver over the shared cache directory.
func NewLookupService(dir *cache.Directory, logger *slog.Logger) usecase.LookupUsecase {
	return &lookupService{
		dir:    dir,
		logger: logger,
	}
}

// Lookup searches one bucket by display name.
func (s *lookupService) Lookup(ctx context.Context, input *usecase.LookupInput) (*usecase.LookupOutput, error) {
	switch input.Kind {
	case entity.KindCustomer:
		return lookupIn(ctx, s.dir.Customers, input.Name)
	case entity.KindAdmin:
		return lookupIn(ctx, s.dir.Admins, input.Name)
	case entity.KindDeliveryPerson:
		return lookupIn(ctx, s.dir.DeliveryStaff, input.Name)
	case entity.KindProduct:
		return lookupIn(ctx, s.dir.Products, input.Name)
	default:
		return nil, errors.Errorf("unknown entity kind %q", input.Kind)
	}
}

// RefreshAll reloads every bucket from the store.
func (s *lookupService) RefreshAll(ctx context.Context) error {
	return s.dir.RefreshAll(ctx)
}

// Counts reports the cached record count per kind.
func (s *lookupService) Counts() map[entity.Kind]int {
	return s.dir.Counts()
}

func lookupIn[T entity.Named](ctx context.Context, b *cache.Bucket[T], name string) (*usecase.LookupOutput, error) {
	matches, err := b.Search(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, &domainerrors.NotFoundError{Kind: b.Kind(), Query: name}
	}

	return &usecase.LookupOutput{
		Matches: toAnySlice(matches),
		Count:   len(matches),
	}, nil
}

// resolveUnique maps a free-text name to exactly one record. A miss forces
// one refresh and a second search before giving up; more than one match on
// either attempt aborts with the candidate list rather than guessing.
func resolveUnique[T entity.Named](ctx context.Context, b *cache.Bucket[T], name string) (T, error) {
	var zero T

	matches, err := b.Search(ctx, name)
	if err != nil {
		return zero, err
	}

	if len(matches) == 0 {
		if err := b.Refresh(ctx); err != nil {
			return zero, err
		}

		if matches, err = b.Search(ctx, name); err != nil {
			return zero, err
		}
	}

	switch len(matches) {
	case 0:
		return zero, &domainerrors.NotFoundError{Kind: b.Kind(), Query: name}
	case 1:
		return matches[0], nil
	default:
		return zero, &domainerrors.AmbiguousError{
			Kind:       b.Kind(),
			Query:      name,
			Candidates: toAnySlice(matches),
		}
	}
}

func toAnySlice[T any](in []T) []any {
	out := make([]any, 0, len(in))
	for _, v := range in {
		out = append(out, v)
	}

	return out
}
