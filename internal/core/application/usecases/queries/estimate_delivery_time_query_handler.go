package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// EstimateDeliveryTimeQueryHandler turns the estimated duration of the route
// carrying a package into seconds, shortened for Express packages.
//
// Example:
//
//	seconds, err := handler.Handle(ctx, NewEstimateDeliveryTimeQuery(id))
//	switch {
//	case errors.Is(err, errs.ErrNoRoute):
//	    // package is not on a route yet
//	case err != nil:
//	    return err
//	}
type EstimateDeliveryTimeQueryHandler struct {
	reader ParcelRouteReader
}

func NewEstimateDeliveryTimeQueryHandler(reader ParcelRouteReader) EstimateDeliveryTimeQueryHandler {
	return EstimateDeliveryTimeQueryHandler{reader: reader}
}

// Handle returns an ObjectNotFoundError for an unknown package or a dangling
// route id, and a NoRouteError for a package without a route.
func (h EstimateDeliveryTimeQueryHandler) Handle(ctx context.Context, query EstimateDeliveryTimeQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	p, err := h.reader.ParcelRepository().Get(ctx, query.PackageID())
	if err != nil {
		return 0, err
	}

	routeID := p.RouteID()
	if routeID == nil {
		return 0, errs.NewNoRouteError(p.ID())
	}

	r, err := h.reader.RouteRepository().Get(ctx, *routeID)
	if err != nil {
		return 0, err
	}

	return services.NewDeliveryEstimator().Estimate(p, r)
}
