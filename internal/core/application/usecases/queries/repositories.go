// Package queries contains read operations for retrieving registry state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for a specific use case and never modify state.
package queries

import (
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Readers are the repositories a query may consult. Queries use them outside
// a transaction.
type (
	ParcelReader interface {
		ParcelRepository() ports.ParcelRepository
	}

	WarehouseReader interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	DriverReader interface {
		DriverRepository() ports.DriverRepository
	}

	RouteReader interface {
		RouteRepository() ports.RouteRepository
	}

	ParcelRouteReader interface {
		ParcelReader
		RouteReader
	}

	// Reader gives access to every repository.
	Reader interface {
		ParcelReader
		WarehouseReader
		DriverReader
		RouteReader
	}
)

// absent turns a not-found error into a nil error: lookups report a missing
// entity as an empty result.
func absent(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
