package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses,
// including the ordered list of stored packages.
type WarehouseRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get returns the warehouse with id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error)

	// GetAll returns every warehouse, ordered by id.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)
}
