// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fuelflow/internal/domain/entity"
)

// LookupInput names the record to search for within one bucket.
type LookupInput struct {
	Kind entity.Kind
	Name string
}

// LookupOutput carries every matching record. One match means the name
// resolved uniquely; more than one means the caller has to disambiguate.
type LookupOutput struct {
	Matches []any
	Count   int
}

// LookupUsecase defines the record-resolution operations the chat router
// and the health endpoint depend on.
type LookupUsecase interface {
	// Lookup searches the bucket for input.Kind by display name. Zero
	// matches come back as a NotFoundError.
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)

	// RefreshAll reloads every bucket from the store unconditionally.
	RefreshAll(ctx context.Context) error

	// Counts reports the cached record count per kind.
	Counts() map[entity.Kind]int
}
