package warehouserepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/adapters/out/postgres/rowlock"
	"logistics/internal/adapters/out/postgres/sequence"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "warehouse"

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, entity)
}

// Add saves a new warehouse together with its stored package list.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, entity, aggregate.ID())
}

// Update rewrites the warehouse row and replaces its stored package list.
// Run it inside a unit of work so the replacement is atomic.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&WarehouseDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"location": dto.Location, "capacity": dto.Capacity})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, aggregate.ID())
	}

	if err := db.Where("warehouse_id = ?", dto.ID).Delete(&StoredPackageDTO{}).Error; err != nil {
		return err
	}
	if len(dto.StoredPackages) == 0 {
		return nil
	}
	return db.Create(&dto.StoredPackages).Error
}

// Get retrieves a warehouse by ID.
func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error) {
	var dto WarehouseDTO
	if err := rowlock.ForUpdate(r.preload(ctx)).First(&dto, "id = ?", uint64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(entity, id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every warehouse ordered by id.
func (r *GormWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.preload(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}

func (r *GormWarehouseRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("StoredPackages", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
