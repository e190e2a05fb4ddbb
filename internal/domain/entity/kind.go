// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Kind identifies one of the record buckets held in the remote store.
type Kind string

const (
	KindCustomer       Kind = "customer"
	KindAdmin          Kind = "admin"
	KindDeliveryPerson Kind = "deliveryBoy"
	KindProduct        Kind = "product"
)

// Kinds lists every bucket, in refresh order.
var Kinds = []Kind{KindCustomer, KindAdmin, KindDeliveryPerson, KindProduct}

// BucketPath returns the store path holding all records of this kind. The
// paths are fixed by the existing database layout and do not follow the Kind
// string values.
func (k Kind) BucketPath() string {
	switch k {
	case KindCustomer:
		return "customer/bucket"
	case KindAdmin:
		return "admin"
	case KindDeliveryPerson:
		return "deliveryPerson/bucket"
	case KindProduct:
		return "productList"
	default:
		return string(k)
	}
}

// Label returns the human-readable name used in chat replies.
func (k Kind) Label() string {
	switch k {
	case KindCustomer:
		return "Customer"
	case KindAdmin:
		return "Admin"
	case KindDeliveryPerson:
		return "Delivery Person"
	case KindProduct:
		return "Product"
	default:
		return string(k)
	}
}
