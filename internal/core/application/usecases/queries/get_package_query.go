package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery looks up a single package.
//
// Example:
//
//	pkg, err := handler.Handle(ctx, NewGetPackageQuery(id))
//	if err != nil {
//	    return err
//	}
//	if pkg == nil {
//	    // no such package
//	}
type GetPackageQuery struct {
	id    kernel.ID
	guard guard.ConstructorGuard
}

func NewGetPackageQuery(id kernel.ID) GetPackageQuery {
	return GetPackageQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

func (q GetPackageQuery) ID() kernel.ID {
	return q.id
}

// GetPackageQueryResponse is the package read model.
type GetPackageQueryResponse struct {
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

func newGetPackageQueryResponse(p *parcel.Parcel) *GetPackageQueryResponse {
	return &GetPackageQueryResponse{
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
