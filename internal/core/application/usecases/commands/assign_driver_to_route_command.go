package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignDriverToRouteCommandIsNotConstructed = errors.New(
	"AssignDriverToRouteCommand must be created via NewAssignDriverToRouteCommand constructor",
)

// AssignDriverToRouteCommand names the driver who will drive a route. The
// driver can be changed until the route starts.
type AssignDriverToRouteCommand struct {
	routeID  kernel.ID
	driverID kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignDriverToRouteCommand(routeID, driverID kernel.ID) AssignDriverToRouteCommand {
	return AssignDriverToRouteCommand{
		routeID:  routeID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c AssignDriverToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverToRouteCommandIsNotConstructed)
}

func (c AssignDriverToRouteCommand) RouteID() kernel.ID {
	return c.routeID
}

func (c AssignDriverToRouteCommand) DriverID() kernel.ID {
	return c.driverID
}
