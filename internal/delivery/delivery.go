// Package delivery defines the contract every transport front implements.
package delivery

import "context"

// Delivery is a serving surface started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
