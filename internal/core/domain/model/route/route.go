// Package route provides the Route aggregate: a delivery trip between two
// places, driven by one driver, with a duration estimated from its distance.
package route

import (
	"errors"
	"fmt"
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// AverageSpeedKmh is the speed every route is estimated at. At 60 km/h the
// number of minutes equals the number of kilometres.
const AverageSpeedKmh = 60

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route is a delivery trip.
//
// Route follows these invariants:
//   - Distance is finite and not negative
//   - Estimated duration is the distance rounded to whole minutes
//   - The assigned driver can only change while the route is Created
//   - Start requires an assigned driver; Complete requires a started route
type Route struct {
	id                kernel.ID
	origin            kernel.Place
	destination       kernel.Place
	distanceKm        float64
	assignedDriver    *kernel.ID
	estimatedDuration int
	startTime         *time.Time
	endTime           *time.Time
	guard             guard.ConstructorGuard
}

// NewRoute creates a route in the Created state and derives its estimated
// duration from distanceKm.
//
// Example:
//
//	r, _ := route.NewRoute(0, kernel.NewPlace("Port"), kernel.NewPlace("Airport"), 42.8)
//	r.EstimatedDuration() // 43 minutes
func NewRoute(id kernel.ID, origin, destination kernel.Place, distanceKm float64) (*Route, error) {
	r := &Route{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setOrigin(origin),
		r.setDestination(destination),
		r.setDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	r.estimatedDuration = EstimateMinutes(r.distanceKm)
	return r, nil
}

// RestoreRoute rebuilds a route from persisted state. The estimated duration
// is recomputed from the distance; an end time without a start time is rejected.
func RestoreRoute(
	id kernel.ID,
	origin, destination kernel.Place,
	distanceKm float64,
	assignedDriver *kernel.ID,
	startTime, endTime *time.Time,
) (*Route, error) {
	r, err := NewRoute(id, origin, destination, distanceKm)
	if err != nil {
		return nil, err
	}

	if endTime != nil && startTime == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("endTime", errors.New("route ended without starting"))
	}

	if assignedDriver != nil {
		d := *assignedDriver
		r.assignedDriver = &d
	}
	r.startTime = copyTime(startTime)
	r.endTime = copyTime(endTime)

	return r, nil
}

// EstimateMinutes converts a distance into whole minutes at AverageSpeedKmh.
func EstimateMinutes(distanceKm float64) int {
	// distance / AverageSpeedKmh * 60 is the identity at 60 km/h; rounding the
	// distance directly avoids the float error of the round trip.
	return int(math.Round(distanceKm))
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.ID {
	return r.id
}

func (r *Route) Origin() kernel.Place {
	return r.origin
}

func (r *Route) Destination() kernel.Place {
	return r.destination
}

func (r *Route) DistanceKm() float64 {
	return r.distanceKm
}

// AssignedDriver returns the driver assigned to the route, or nil.
func (r *Route) AssignedDriver() *kernel.ID {
	if r.assignedDriver == nil {
		return nil
	}
	d := *r.assignedDriver
	return &d
}

// EstimatedDuration returns the estimated travel time in minutes.
func (r *Route) EstimatedDuration() int {
	return r.estimatedDuration
}

func (r *Route) StartTime() *time.Time {
	return copyTime(r.startTime)
}

func (r *Route) EndTime() *time.Time {
	return copyTime(r.endTime)
}

func (r *Route) State() State {
	switch {
	case r.endTime != nil:
		return Completed
	case r.startTime != nil:
		return Started
	default:
		return Created
	}
}

// AssignDriver sets the driver who will drive the route. Reassignment is
// allowed until the route starts.
func (r *Route) AssignDriver(driverID kernel.ID) error {
	if r.State() != Created {
		return errs.NewInvalidStateError("route", r.State().String(), "assign driver to")
	}

	r.assignedDriver = &driverID
	return nil
}

// ValidateStart checks that the route can start without changing it.
func (r *Route) ValidateStart() error {
	if r.State() != Created {
		return errs.NewInvalidStateError("route", r.State().String(), "start")
	}
	if r.assignedDriver == nil {
		return errs.NewInvalidStateErrorWithCause("route", r.State().String(), "start",
			errors.New("no driver assigned"))
	}
	return nil
}

// Start stamps the start time.
func (r *Route) Start(at time.Time) error {
	if err := r.ValidateStart(); err != nil {
		return err
	}

	r.startTime = &at
	return nil
}

// ValidateComplete checks that the route can complete without changing it.
func (r *Route) ValidateComplete() error {
	if r.State() != Started {
		return errs.NewInvalidStateError("route", r.State().String(), "complete")
	}
	return nil
}

// Complete stamps the end time.
func (r *Route) Complete(at time.Time) error {
	if err := r.ValidateComplete(); err != nil {
		return err
	}

	r.endTime = &at
	return nil
}

// ChangeDestination moves the route's destination. Distance and estimated
// duration are left unchanged.
func (r *Route) ChangeDestination(destination kernel.Place) error {
	return r.setDestination(destination)
}

func (r *Route) setOrigin(origin kernel.Place) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	r.origin = origin
	return nil
}

func (r *Route) setDestination(destination kernel.Place) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Route) setDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm", fmt.Errorf("%v is not a non-negative number", distanceKm))
	}
	r.distanceKm = distanceKm
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
