package services

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// Express parcels take ExpressPercent percent of the standard delivery time.
const ExpressPercent = 70

// DeliveryEstimator derives a parcel's delivery time from the route carrying it.
type DeliveryEstimator struct{}

func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// Estimate returns the delivery time in seconds: the route's estimated
// duration converted to seconds, cut to ExpressPercent for Express parcels
// and truncated toward zero.
//
// Returns:
//   - NoRouteError when p is not on any route
//   - InvalidStateError when p is on a different route than r
func (DeliveryEstimator) Estimate(p *parcel.Parcel, r *route.Route) (int64, error) {
	if err := errors.Join(p.Validate(), r.Validate()); err != nil {
		return 0, err
	}

	if p.RouteID() == nil {
		return 0, errs.NewNoRouteError(p.ID())
	}
	if !p.IsOnRoute(r.ID()) {
		return 0, errs.NewInvalidStateErrorWithCause("package", p.Status().String(), "estimate",
			fmt.Errorf("package is on route %s, not %s", *p.RouteID(), r.ID()))
	}

	seconds := int64(r.EstimatedDuration()) * 60
	if p.Priority() == parcel.Express {
		seconds = seconds * ExpressPercent / 100
	}

	return seconds, nil
}
