package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignPackageToRouteCommandIsNotConstructed = errors.New(
	"AssignPackageToRouteCommand must be created via NewAssignPackageToRouteCommand constructor",
)

// AssignPackageToRouteCommand puts a package on a delivery route.
type AssignPackageToRouteCommand struct {
	packageID kernel.ID
	routeID   kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignPackageToRouteCommand(packageID, routeID kernel.ID) AssignPackageToRouteCommand {
	return AssignPackageToRouteCommand{
		packageID: packageID,
		routeID:   routeID,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c AssignPackageToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackageToRouteCommandIsNotConstructed)
}

func (c AssignPackageToRouteCommand) PackageID() kernel.ID {
	return c.packageID
}

func (c AssignPackageToRouteCommand) RouteID() kernel.ID {
	return c.routeID
}
