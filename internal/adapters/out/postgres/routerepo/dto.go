// Package routerepo persists delivery routes.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteDTO is the row shape of a route. The estimated duration is derived
// from DistanceKm on load and is stored only for ad-hoc reporting.
type RouteDTO struct {
	ID                uint64  `gorm:"primaryKey;autoIncrement:false"`
	Origin            string  `gorm:"type:text;not null"`
	Destination       string  `gorm:"type:text;not null"`
	DistanceKm        float64 `gorm:"not null"`
	EstimatedDuration int     `gorm:"not null"`
	AssignedDriver    *uint64 `gorm:"index"`
	StartTime         *time.Time
	EndTime           *time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	var assigned *uint64
	if d := r.AssignedDriver(); d != nil {
		v := uint64(*d)
		assigned = &v
	}

	return RouteDTO{
		ID:                uint64(r.ID()),
		Origin:            r.Origin().Name(),
		Destination:       r.Destination().Name(),
		DistanceKm:        r.DistanceKm(),
		EstimatedDuration: r.EstimatedDuration(),
		AssignedDriver:    assigned,
		StartTime:         r.StartTime(),
		EndTime:           r.EndTime(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	origin := kernel.NewPlace(dto.Origin)
	destination := kernel.NewPlace(dto.Destination)

	var assigned *kernel.ID
	if dto.AssignedDriver != nil {
		id := kernel.ID(*dto.AssignedDriver)
		assigned = &id
	}

	return route.RestoreRoute(kernel.ID(dto.ID), origin, destination, dto.DistanceKm, assigned, dto.StartTime, dto.EndTime)
}
