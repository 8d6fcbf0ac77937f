package queries

import (
	"context"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
)

type GetRegistryStatsQueryHandler struct {
	reader Reader
}

func NewGetRegistryStatsQueryHandler(reader Reader) GetRegistryStatsQueryHandler {
	return GetRegistryStatsQueryHandler{reader: reader}
}

// Handle reads each kind of entity in turn; concurrent writes between the
// reads may show up in some counts and not others.
func (h GetRegistryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetRegistryStatsQuery,
) (GetRegistryStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRegistryStatsQueryResponse{}, err
	}

	stats := GetRegistryStatsQueryResponse{
		PackagesByStatus: map[parcel.Status]int{
			parcel.InWarehouse: 0,
			parcel.InTransit:   0,
			parcel.Delivered:   0,
		},
		RoutesByState: map[route.State]int{
			route.Created:   0,
			route.Started:   0,
			route.Completed: 0,
		},
	}

	parcels, err := h.reader.ParcelRepository().GetAll(ctx)
	if err != nil {
		return GetRegistryStatsQueryResponse{}, err
	}
	stats.Packages = len(parcels)
	for _, p := range parcels {
		stats.PackagesByStatus[p.Status()]++
	}

	warehouses, err := h.reader.WarehouseRepository().GetAll(ctx)
	if err != nil {
		return GetRegistryStatsQueryResponse{}, err
	}
	stats.Warehouses = len(warehouses)
	for _, w := range warehouses {
		stats.WarehouseCapacity += w.Capacity()
		stats.StoredPackages += len(w.StoredPackages())
	}

	drivers, err := h.reader.DriverRepository().GetAll(ctx)
	if err != nil {
		return GetRegistryStatsQueryResponse{}, err
	}
	stats.Drivers = len(drivers)
	for _, d := range drivers {
		if d.IsAvailable() {
			stats.AvailableDrivers++
		}
	}

	routes, err := h.reader.RouteRepository().GetAll(ctx)
	if err != nil {
		return GetRegistryStatsQueryResponse{}, err
	}
	stats.Routes = len(routes)
	for _, r := range routes {
		stats.RoutesByState[r.State()]++
	}

	return stats, nil
}
