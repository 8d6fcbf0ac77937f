package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand finishes a started route and delivers its packages.
type CompleteRouteCommand struct {
	routeID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteRouteCommand(routeID kernel.ID) CompleteRouteCommand {
	return CompleteRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

func (c CompleteRouteCommand) RouteID() kernel.ID {
	return c.routeID
}
