package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for delivery routes.
type RouteRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)
	Add(ctx context.Context, aggregate *route.Route) error
	Update(ctx context.Context, aggregate *route.Route) error

	// Get returns the route with id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*route.Route, error)

	// GetAll returns every route, ordered by id.
	GetAll(ctx context.Context) ([]*route.Route, error)
}
