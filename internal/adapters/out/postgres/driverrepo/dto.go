// Package driverrepo persists drivers and their completed route history.
package driverrepo

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverDTO is the row shape of a driver. Availability is not stored: a
// driver is available exactly when CurrentRoute is null.
type DriverDTO struct {
	ID              uint64              `gorm:"primaryKey;autoIncrement:false"`
	Name            string              `gorm:"type:text;not null"`
	VehicleType     int                 `gorm:"type:smallint;not null"`
	CurrentRoute    *uint64             `gorm:"index"`
	CompletedRoutes []CompletedRouteDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

// CompletedRouteDTO records one finished route, in completion order.
type CompletedRouteDTO struct {
	DriverID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Position int    `gorm:"primaryKey;autoIncrement:false"`
	RouteID  uint64 `gorm:"not null"`
}

func (CompletedRouteDTO) TableName() string {
	return "driver_completed_routes"
}

func fromDomain(d *driver.Driver) DriverDTO {
	var current *uint64
	if r := d.CurrentRoute(); r != nil {
		v := uint64(*r)
		current = &v
	}

	routes := d.CompletedRoutes()
	completed := make([]CompletedRouteDTO, 0, len(routes))
	for i, id := range routes {
		completed = append(completed, CompletedRouteDTO{
			DriverID: uint64(d.ID()),
			Position: i,
			RouteID:  uint64(id),
		})
	}

	return DriverDTO{
		ID:              uint64(d.ID()),
		Name:            d.Name(),
		VehicleType:     int(d.VehicleType()),
		CurrentRoute:    current,
		CompletedRoutes: completed,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	var current *kernel.ID
	if dto.CurrentRoute != nil {
		id := kernel.ID(*dto.CurrentRoute)
		current = &id
	}

	completed := make([]kernel.ID, 0, len(dto.CompletedRoutes))
	for _, cr := range dto.CompletedRoutes {
		completed = append(completed, kernel.ID(cr.RouteID))
	}

	return driver.RestoreDriver(
		kernel.ID(dto.ID),
		dto.Name,
		driver.VehicleType(dto.VehicleType),
		current == nil,
		current,
		completed,
	)
}
