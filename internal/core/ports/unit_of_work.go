package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
//
// Repositories obtained before Begin (or after Commit/Rollback) read and write
// the store directly, one call at a time.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every write since Begin visible at once.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every write since Begin.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	ParcelRepository() ParcelRepository
	WarehouseRepository() WarehouseRepository
	DriverRepository() DriverRepository
	RouteRepository() RouteRepository
}
