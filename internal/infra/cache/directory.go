package cache

import (
	"context"
	"log/slog"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/domain/repository"
	"fuelflow/internal/errors"
)

// Directory bundles the four record buckets the chat agent resolves against.
type Directory struct {
	Customers     *Bucket[entity.Customer]
	Admins        *Bucket[entity.Admin]
	DeliveryStaff *Bucket[entity.DeliveryPerson]
	Products      *Bucket[entity.Product]
}

// NewDirectory creates the buckets, all empty until refreshed.
func NewDirectory(store repository.RecordStore, logger *slog.Logger) *Directory {
	return &Directory{
		Customers:     NewBucket[entity.Customer](entity.KindCustomer, store, logger),
		Admins:        NewBucket[entity.Admin](entity.KindAdmin, store, logger),
		DeliveryStaff: NewBucket[entity.DeliveryPerson](entity.KindDeliveryPerson, store, logger),
		Products:      NewBucket[entity.Product](entity.KindProduct, store, logger),
	}
}

// RefreshAll refreshes every bucket unconditionally. A failing bucket keeps
// its previous contents; all failures are joined into the returned error.
func (d *Directory) RefreshAll(ctx context.Context) error {
	return errors.Join(
		d.Customers.Refresh(ctx),
		d.Admins.Refresh(ctx),
		d.DeliveryStaff.Refresh(ctx),
		d.Products.Refresh(ctx),
	)
}

// Counts reports the cached record count per kind.
func (d *Directory) Counts() map[entity.Kind]int {
	return map[entity.Kind]int{
		entity.KindCustomer:       d.Customers.Len(),
		entity.KindAdmin:          d.Admins.Len(),
		entity.KindDeliveryPerson: d.DeliveryStaff.Len(),
		entity.KindProduct:        d.Products.Len(),
	}
}
