package firebase

import (
	"context"

	"fuelflow/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type recordStore struct {
	client *db.Client
}

// NewRecordStore wraps the Realtime Database client in the store contract.
func NewRecordStore(client *db.Client) repository.RecordStore {
	return &recordStore{
		client: client,
	}
}

// GetPath reads the document at path into out. The SDK leaves out untouched
// when the path holds nothing.
func (s *recordStore) GetPath(ctx context.Context, path string, out any) error {
	if err := s.client.NewRef(path).Get(ctx, out); err != nil {
		return errors.Wrapf(repository.ErrStoreUnavailable, "get %q: %v", path, err)
	}

	return nil
}

// SetPath overwrites the document at path.
func (s *recordStore) SetPath(ctx context.Context, path string, doc any) error {
	if err := s.client.NewRef(path).Set(ctx, doc); err != nil {
		return errors.Wrapf(repository.ErrStoreUnavailable, "set %q: %v", path, err)
	}

	return nil
}
