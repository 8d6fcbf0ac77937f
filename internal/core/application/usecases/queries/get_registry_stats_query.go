package queries

import (
	"errors"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/guard"
)

var ErrGetRegistryStatsQueryIsNotConstructed = errors.New(
	"GetRegistryStatsQuery must be created via NewGetRegistryStatsQuery constructor",
)

// GetRegistryStatsQuery summarises everything the registry holds.
type GetRegistryStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRegistryStatsQuery() GetRegistryStatsQuery {
	return GetRegistryStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRegistryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetRegistryStatsQueryIsNotConstructed)
}

// GetRegistryStatsQueryResponse counts entities by kind and lifecycle
// position. Every status and state is present in the maps, zero or not.
type GetRegistryStatsQueryResponse struct {
	Packages         int
	PackagesByStatus map[parcel.Status]int

	Warehouses        int
	WarehouseCapacity int
	StoredPackages    int

	Drivers          int
	AvailableDrivers int

	Routes        int
	RoutesByState map[route.State]int
}
