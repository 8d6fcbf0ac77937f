// Package ports defines the contracts between the logistics core and its
// adapters: one repository per aggregate, the unit of work that binds them to
// a transaction, and the outbound notifier and clock.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for packages.
type ParcelRepository interface {
	// NextID reserves the next package id. Ids are sequential from 0. A
	// reservation made inside a transaction is returned when it rolls back,
	// so ids of committed packages have no gaps.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new package. The id must not be in use.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing package.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get returns the package with id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error)

	// GetAllByRoute returns every package attached to routeID, ordered by id.
	GetAllByRoute(ctx context.Context, routeID kernel.ID) ([]*parcel.Parcel, error)

	// GetAllDelivered returns every package in Delivered status, ordered by id.
	GetAllDelivered(ctx context.Context) ([]*parcel.Parcel, error)

	// GetAll returns every package, ordered by id.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)
}
