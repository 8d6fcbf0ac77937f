// Package warehouserepo persists warehouses and the ordered list of packages
// each one stores.
package warehouserepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseDTO is the row shape of a warehouse.
type WarehouseDTO struct {
	ID             uint64             `gorm:"primaryKey;autoIncrement:false"`
	Location       string             `gorm:"type:text;not null"`
	Capacity       int                `gorm:"not null"`
	StoredPackages []StoredPackageDTO `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// StoredPackageDTO lists one package in a warehouse. Position keeps the
// assignment order.
type StoredPackageDTO struct {
	WarehouseID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Position    int    `gorm:"primaryKey;autoIncrement:false"`
	PackageID   uint64 `gorm:"not null;index"`
}

func (StoredPackageDTO) TableName() string {
	return "warehouse_packages"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	ids := w.StoredPackages()
	stored := make([]StoredPackageDTO, 0, len(ids))
	for i, id := range ids {
		stored = append(stored, StoredPackageDTO{
			WarehouseID: uint64(w.ID()),
			Position:    i,
			PackageID:   uint64(id),
		})
	}

	return WarehouseDTO{
		ID:             uint64(w.ID()),
		Location:       w.Location().Name(),
		Capacity:       w.Capacity(),
		StoredPackages: stored,
	}
}

// toDomain expects StoredPackages preloaded in position order.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	location := kernel.NewPlace(dto.Location)

	stored := make([]kernel.ID, 0, len(dto.StoredPackages))
	for _, sp := range dto.StoredPackages {
		stored = append(stored, kernel.ID(sp.PackageID))
	}

	return warehouse.RestoreWarehouse(kernel.ID(dto.ID), location, dto.Capacity, stored)
}
