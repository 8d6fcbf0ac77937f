package services

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// RouteDispatcher moves a route through its lifecycle together with the
// driver assigned to it.
//
// Business rules:
//   - Only a Created route with an assigned driver can start
//   - The driver must be the one assigned to the route and must be free
//   - Completing a route frees its driver and delivers every package on it
//
// Example usage:
//
//	dispatcher := services.NewRouteDispatcher()
//	if err := dispatcher.Start(r, d, clock.Now()); err != nil {
//	    return err
//	}
type RouteDispatcher struct{}

func NewRouteDispatcher() RouteDispatcher {
	return RouteDispatcher{}
}

// Start stamps the route's start time and makes the driver busy with it.
//
// Returns:
//   - InvalidStateError when the route is not Created, has no driver, or d is not its driver
//   - DriverOccupiedError when the driver is driving another route
func (RouteDispatcher) Start(r *route.Route, d *driver.Driver, at time.Time) error {
	if err := errors.Join(r.Validate(), d.Validate()); err != nil {
		return err
	}

	if err := r.ValidateStart(); err != nil {
		return err
	}
	if err := checkAssigned(r, d); err != nil {
		return err
	}
	if err := d.ValidateTakeRoute(); err != nil {
		return err
	}

	if err := r.Start(at); err != nil {
		return err
	}
	return d.TakeRoute(r.ID())
}

// Complete stamps the route's end time, frees the driver and marks every
// parcel carried by the route as delivered. Parcels not on the route are
// ignored. The delivered parcels are returned in input order.
func (RouteDispatcher) Complete(
	r *route.Route,
	d *driver.Driver,
	parcels []*parcel.Parcel,
	at time.Time,
) ([]*parcel.Parcel, error) {
	if err := errors.Join(r.Validate(), d.Validate()); err != nil {
		return nil, err
	}
	for _, p := range parcels {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	if err := r.ValidateComplete(); err != nil {
		return nil, err
	}
	if err := checkAssigned(r, d); err != nil {
		return nil, err
	}
	if err := d.ValidateFinishRoute(r.ID()); err != nil {
		return nil, err
	}

	if err := r.Complete(at); err != nil {
		return nil, err
	}
	if err := d.FinishRoute(r.ID()); err != nil {
		return nil, err
	}

	delivered := make([]*parcel.Parcel, 0, len(parcels))
	for _, p := range parcels {
		if !p.IsOnRoute(r.ID()) {
			continue
		}
		p.MarkDelivered(at)
		delivered = append(delivered, p)
	}

	return delivered, nil
}

func checkAssigned(r *route.Route, d *driver.Driver) error {
	assigned := r.AssignedDriver()
	if assigned == nil || *assigned != d.ID() {
		return errs.NewInvalidStateErrorWithCause("route", r.State().String(), "dispatch",
			fmt.Errorf("driver %s is not assigned to route %s", d.ID(), r.ID()))
	}
	return nil
}
