package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand sends the assigned driver out on a route.
type StartRouteCommand struct {
	routeID kernel.ID

	guard guard.ConstructorGuard
}

func NewStartRouteCommand(routeID kernel.ID) StartRouteCommand {
	return StartRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

func (c StartRouteCommand) RouteID() kernel.ID {
	return c.routeID
}
