package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/guard"
)

var ErrGetWarehouseQueryIsNotConstructed = errors.New(
	"GetWarehouseQuery must be created via NewGetWarehouseQuery constructor",
)

type GetWarehouseQuery struct {
	id    kernel.ID
	guard guard.ConstructorGuard
}

func NewGetWarehouseQuery(id kernel.ID) GetWarehouseQuery {
	return GetWarehouseQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseQueryIsNotConstructed)
}

func (q GetWarehouseQuery) ID() kernel.ID {
	return q.id
}

// GetWarehouseQueryResponse is the warehouse read model. StoredPackages keeps
// assignment order.
type GetWarehouseQueryResponse struct {
	ID             kernel.ID
	Location       string
	Capacity       int
	StoredPackages []kernel.ID
}

func newGetWarehouseQueryResponse(w *warehouse.Warehouse) *GetWarehouseQueryResponse {
	return &GetWarehouseQueryResponse{
		ID:             w.ID(),
		Location:       w.Location().Name(),
		Capacity:       w.Capacity(),
		StoredPackages: w.StoredPackages(),
	}
}
