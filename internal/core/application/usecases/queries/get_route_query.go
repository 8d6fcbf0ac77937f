package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

type GetRouteQuery struct {
	id    kernel.ID
	guard guard.ConstructorGuard
}

func NewGetRouteQuery(id kernel.ID) GetRouteQuery {
	return GetRouteQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

func (q GetRouteQuery) ID() kernel.ID {
	return q.id
}

// GetRouteQueryResponse is the route read model. EstimatedDuration is in
// minutes.
type GetRouteQueryResponse struct {
	ID                kernel.ID
	Origin            string
	Destination       string
	DistanceKm        float64
	AssignedDriver    *kernel.ID
	EstimatedDuration int
	State             route.State
	StartTime         *time.Time
	EndTime           *time.Time
}

func newGetRouteQueryResponse(r *route.Route) *GetRouteQueryResponse {
	return &GetRouteQueryResponse{
		ID:                r.ID(),
		Origin:            r.Origin().Name(),
		Destination:       r.Destination().Name(),
		DistanceKm:        r.DistanceKm(),
		AssignedDriver:    r.AssignedDriver(),
		EstimatedDuration: r.EstimatedDuration(),
		State:             r.State(),
		StartTime:         r.StartTime(),
		EndTime:           r.EndTime(),
	}
}
