package memory

import (
	"slices"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/warehouse"
)

// Records are detached copies of aggregate state. The registry never stores
// an aggregate pointer, so a caller holding one cannot change committed state
// behind the unit of work's back.

type parcelRecord struct {
	ID            kernel.ID
	Weight        float64
	Origin        string
	Destination   string
	Status        parcel.Status
	Priority      parcel.Priority
	WarehouseID   *kernel.ID
	RouteID       *kernel.ID
	CustomerPhone string
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}

func parcelToRecord(p *parcel.Parcel) parcelRecord {
	return parcelRecord{
		ID:            p.ID(),
		Weight:        p.Weight(),
		Origin:        p.Origin().Name(),
		Destination:   p.Destination().Name(),
		Status:        p.Status(),
		Priority:      p.Priority(),
		WarehouseID:   p.WarehouseID(),
		RouteID:       p.RouteID(),
		CustomerPhone: p.CustomerPhone(),
		CreatedAt:     p.CreatedAt(),
		DeliveredAt:   p.DeliveredAt(),
	}
}

func (r parcelRecord) toDomain() (*parcel.Parcel, error) {
	origin := kernel.NewPlace(r.Origin)
	destination := kernel.NewPlace(r.Destination)

	return parcel.RestoreParcel(
		r.ID,
		r.Weight,
		origin,
		destination,
		r.Status,
		r.Priority,
		r.CustomerPhone,
		r.CreatedAt,
		r.WarehouseID,
		r.RouteID,
		r.DeliveredAt,
	)
}

type warehouseRecord struct {
	ID             kernel.ID
	Location       string
	Capacity       int
	StoredPackages []kernel.ID
}

func warehouseToRecord(w *warehouse.Warehouse) warehouseRecord {
	return warehouseRecord{
		ID:             w.ID(),
		Location:       w.Location().Name(),
		Capacity:       w.Capacity(),
		StoredPackages: w.StoredPackages(),
	}
}

func (r warehouseRecord) toDomain() (*warehouse.Warehouse, error) {
	location := kernel.NewPlace(r.Location)
	return warehouse.RestoreWarehouse(r.ID, location, r.Capacity, slices.Clone(r.StoredPackages))
}

type driverRecord struct {
	ID              kernel.ID
	Name            string
	VehicleType     driver.VehicleType
	IsAvailable     bool
	CurrentRoute    *kernel.ID
	CompletedRoutes []kernel.ID
}

func driverToRecord(d *driver.Driver) driverRecord {
	return driverRecord{
		ID:              d.ID(),
		Name:            d.Name(),
		VehicleType:     d.VehicleType(),
		IsAvailable:     d.IsAvailable(),
		CurrentRoute:    d.CurrentRoute(),
		CompletedRoutes: d.CompletedRoutes(),
	}
}

func (r driverRecord) toDomain() (*driver.Driver, error) {
	return driver.RestoreDriver(
		r.ID,
		r.Name,
		r.VehicleType,
		r.IsAvailable,
		r.CurrentRoute,
		slices.Clone(r.CompletedRoutes),
	)
}

type routeRecord struct {
	ID             kernel.ID
	Origin         string
	Destination    string
	DistanceKm     float64
	AssignedDriver *kernel.ID
	StartTime      *time.Time
	EndTime        *time.Time
}

func routeToRecord(r *route.Route) routeRecord {
	return routeRecord{
		ID:             r.ID(),
		Origin:         r.Origin().Name(),
		Destination:    r.Destination().Name(),
		DistanceKm:     r.DistanceKm(),
		AssignedDriver: r.AssignedDriver(),
		StartTime:      r.StartTime(),
		EndTime:        r.EndTime(),
	}
}

func (r routeRecord) toDomain() (*route.Route, error) {
	origin := kernel.NewPlace(r.Origin)
	destination := kernel.NewPlace(r.Destination)
	return route.RestoreRoute(r.ID, origin, destination, r.DistanceKm, r.AssignedDriver, r.StartTime, r.EndTime)
}
