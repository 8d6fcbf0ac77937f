package routerepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/adapters/out/postgres/rowlock"
	"logistics/internal/adapters/out/postgres/sequence"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "route"

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

func (r *GormRouteRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, entity)
}

func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, entity, aggregate.ID())
}

func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, aggregate.ID())
	}

	return nil
}

func (r *GormRouteRepository) Get(ctx context.Context, id kernel.ID) (*route.Route, error) {
	var dto RouteDTO
	if err := rowlock.ForUpdate(r.db.WithContext(ctx)).First(&dto, "id = ?", uint64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(entity, id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}

	return routes, nil
}
