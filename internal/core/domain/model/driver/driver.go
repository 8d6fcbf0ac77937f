package driver

import (
	"errors"
	"fmt"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver operates delivery routes.
type Driver struct {
	id              kernel.ID
	name            string
	vehicleType     VehicleType
	currentRoute    *kernel.ID
	completedRoutes []kernel.ID
	guard           guard.ConstructorGuard
}

// NewDriver registers an available driver with no routes.
func NewDriver(id kernel.ID, name string, vehicleType VehicleType) (*Driver, error) {
	d := &Driver{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	d.name = name

	if err := d.setVehicleType(vehicleType); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from persisted state. isAvailable must agree
// with currentRoute: a driver with a current route is never available.
func RestoreDriver(
	id kernel.ID,
	name string,
	vehicleType VehicleType,
	isAvailable bool,
	currentRoute *kernel.ID,
	completedRoutes []kernel.ID,
) (*Driver, error) {
	d, err := NewDriver(id, name, vehicleType)
	if err != nil {
		return nil, err
	}

	if isAvailable != (currentRoute == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"isAvailable",
			fmt.Errorf("availability %t contradicts current route %v", isAvailable, currentRoute),
		)
	}

	if currentRoute != nil {
		r := *currentRoute
		d.currentRoute = &r
	}
	d.completedRoutes = slices.Clone(completedRoutes)

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.ID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) VehicleType() VehicleType {
	return d.vehicleType
}

// IsAvailable reports whether the driver can take a route.
func (d *Driver) IsAvailable() bool {
	return d.currentRoute == nil
}

// CurrentRoute returns the route being driven, or nil.
func (d *Driver) CurrentRoute() *kernel.ID {
	if d.currentRoute == nil {
		return nil
	}
	r := *d.currentRoute
	return &r
}

// CompletedRoutes returns the finished routes in completion order.
func (d *Driver) CompletedRoutes() []kernel.ID {
	return slices.Clone(d.completedRoutes)
}

// ValidateTakeRoute checks that the driver is free without changing it.
func (d *Driver) ValidateTakeRoute() error {
	if !d.IsAvailable() {
		return errs.NewDriverOccupiedErrorWithCause(d.id, fmt.Errorf("driving route %s", *d.currentRoute))
	}
	return nil
}

// TakeRoute makes the driver unavailable and records routeID as current.
func (d *Driver) TakeRoute(routeID kernel.ID) error {
	if err := d.ValidateTakeRoute(); err != nil {
		return err
	}

	d.currentRoute = &routeID
	return nil
}

// ValidateFinishRoute checks that routeID is the route being driven.
func (d *Driver) ValidateFinishRoute(routeID kernel.ID) error {
	if d.currentRoute == nil || *d.currentRoute != routeID {
		return errs.NewInvalidStateError(
			"driver",
			fmt.Sprintf("not driving route %s", routeID),
			"finish route for",
		)
	}
	return nil
}

// FinishRoute frees the driver and appends routeID to the completed routes.
// routeID must be the current route.
func (d *Driver) FinishRoute(routeID kernel.ID) error {
	if err := d.ValidateFinishRoute(routeID); err != nil {
		return err
	}

	d.currentRoute = nil
	d.completedRoutes = append(d.completedRoutes, routeID)
	return nil
}

func (d *Driver) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	d.vehicleType = vehicleType
	return nil
}
