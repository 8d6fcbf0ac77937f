package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers.
type DriverRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get returns the driver with id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// GetAll returns every driver, ordered by id.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
