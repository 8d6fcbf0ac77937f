// Package parcelrepo persists packages in the packages table.
package parcelrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelDTO is the row shape of a package.
type ParcelDTO struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement:false"`
	Weight        float64   `gorm:"not null"`
	Origin        string    `gorm:"type:text;not null"`
	Destination   string    `gorm:"type:text;not null"`
	Status        int       `gorm:"type:smallint;not null;index"`
	Priority      int       `gorm:"type:smallint;not null"`
	WarehouseID   *uint64   `gorm:"index"`
	RouteID       *uint64   `gorm:"index"`
	CustomerPhone string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"not null"`
	DeliveredAt   *time.Time
}

// TableName overrides GORM's default "parcel_dtos".
func (ParcelDTO) TableName() string {
	return "packages"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:            uint64(p.ID()),
		Weight:        p.Weight(),
		Origin:        p.Origin().Name(),
		Destination:   p.Destination().Name(),
		Status:        int(p.Status()),
		Priority:      int(p.Priority()),
		WarehouseID:   idToColumn(p.WarehouseID()),
		RouteID:       idToColumn(p.RouteID()),
		CustomerPhone: p.CustomerPhone(),
		CreatedAt:     p.CreatedAt(),
		DeliveredAt:   p.DeliveredAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	origin := kernel.NewPlace(dto.Origin)
	destination := kernel.NewPlace(dto.Destination)

	return parcel.RestoreParcel(
		kernel.ID(dto.ID),
		dto.Weight,
		origin,
		destination,
		parcel.Status(dto.Status),
		parcel.Priority(dto.Priority),
		dto.CustomerPhone,
		dto.CreatedAt,
		columnToID(dto.WarehouseID),
		columnToID(dto.RouteID),
		dto.DeliveredAt,
	)
}

func idToColumn(id *kernel.ID) *uint64 {
	if id == nil {
		return nil
	}
	v := uint64(*id)
	return &v
}

func columnToID(v *uint64) *kernel.ID {
	if v == nil {
		return nil
	}
	id := kernel.ID(*v)
	return &id
}
