// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is returned when the remote document store cannot be
// reached or refuses the credentials.
var ErrStoreUnavailable = errors.New("document store unavailable")

// RecordStore is the contract with the remote document store. Paths are
// slash-separated, e.g. "customer" for a whole bucket or
// "transactionList/<id>" for a single document.
type RecordStore interface {
	// GetPath reads the document at path into out. An absent path leaves
	// out untouched.
	GetPath(ctx context.Context, path string, out any) error

	// SetPath overwrites the document at path.
	SetPath(ctx context.Context, path string, doc any) error
}
