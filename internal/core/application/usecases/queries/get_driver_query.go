package queries

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

type GetDriverQuery struct {
	id    kernel.ID
	guard guard.ConstructorGuard
}

func NewGetDriverQuery(id kernel.ID) GetDriverQuery {
	return GetDriverQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) ID() kernel.ID {
	return q.id
}

// GetDriverQueryResponse is the driver read model.
type GetDriverQueryResponse struct {
	ID              kernel.ID
	Name            string
	VehicleType     driver.VehicleType
	IsAvailable     bool
	CurrentRoute    *kernel.ID
	CompletedRoutes []kernel.ID
}

func newGetDriverQueryResponse(d *driver.Driver) *GetDriverQueryResponse {
	return &GetDriverQueryResponse{
		ID:              d.ID(),
		Name:            d.Name(),
		VehicleType:     d.VehicleType(),
		IsAvailable:     d.IsAvailable(),
		CurrentRoute:    d.CurrentRoute(),
		CompletedRoutes: d.CompletedRoutes(),
	}
}
