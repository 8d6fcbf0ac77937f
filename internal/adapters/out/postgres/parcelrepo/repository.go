package parcelrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/adapters/out/postgres/rowlock"
	"logistics/internal/adapters/out/postgres/sequence"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "package"

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

func (r *GormParcelRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, entity)
}

// Add saves a new package to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, entity, aggregate.ID())
}

// Update overwrites every column of an existing package, nulls included.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, aggregate.ID())
	}

	return nil
}

// Get retrieves a package by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := rowlock.ForUpdate(r.db.WithContext(ctx)).First(&dto, "id = ?", uint64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(entity, id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) GetAllByRoute(ctx context.Context, routeID kernel.ID) ([]*parcel.Parcel, error) {
	return r.find(ctx, "route_id = ?", uint64(routeID))
}

func (r *GormParcelRepository) GetAllDelivered(ctx context.Context) ([]*parcel.Parcel, error) {
	return r.find(ctx, "status = ?", int(parcel.Delivered))
}

func (r *GormParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	return r.find(ctx, "TRUE")
}

func (r *GormParcelRepository) find(ctx context.Context, query string, args ...any) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
