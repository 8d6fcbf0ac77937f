// Package commands contains business operations that modify registry state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ParcelUoW manages transactions for package-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// WarehouseUoW manages transactions for warehouse-only operations.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// UoW manages transactions spanning several aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   routeRepo := uow.RouteRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ParcelRepoFactory
		WarehouseRepoFactory
		DriverRepoFactory
		RouteRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
