package driverrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/adapters/out/postgres/rowlock"
	"logistics/internal/adapters/out/postgres/sequence"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "driver"

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, entity)
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, entity, aggregate.ID())
}

// Update rewrites the driver row and appends newly completed routes. The
// history is append-only, so rows already stored are left alone.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"vehicle_type":  dto.VehicleType,
			"current_route": dto.CurrentRoute,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, aggregate.ID())
	}

	var stored int64
	if err := db.Model(&CompletedRouteDTO{}).Where("driver_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if int(stored) >= len(dto.CompletedRoutes) {
		return nil
	}
	added := dto.CompletedRoutes[stored:]
	return db.Create(&added).Error
}

// Get loads a driver with its route history. Inside a transaction the
// driver row stays locked until commit or rollback.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	var dto DriverDTO
	if err := rowlock.ForUpdate(r.preload(ctx)).First(&dto, "id = ?", uint64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(entity, id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.preload(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

func (r *GormDriverRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("CompletedRoutes", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
