package commands

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand defines a delivery route between two places.
//
// Example:
//
//	cmd, _ := NewCreateRouteCommand("Port", "Airport", 42.8)
//	id, err := handler.Handle(ctx, cmd) // route estimated at 43 minutes
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	origin      kernel.Place
	destination kernel.Place
	distanceKm  float64

	guard guard.ConstructorGuard
}

func NewCreateRouteCommand(origin, destination string, distanceKm float64) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	cmd.setOrigin(origin)
	cmd.setDestination(destination)

	if err := cmd.setDistance(distanceKm); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) Origin() kernel.Place {
	return c.origin
}

func (c CreateRouteCommand) Destination() kernel.Place {
	return c.destination
}

func (c CreateRouteCommand) DistanceKm() float64 {
	return c.distanceKm
}

func (c *CreateRouteCommand) setOrigin(origin string) {
	c.origin = kernel.NewPlace(origin)
}

func (c *CreateRouteCommand) setDestination(destination string) {
	c.destination = kernel.NewPlace(destination)
}

func (c *CreateRouteCommand) setDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm", fmt.Errorf("%v is not a non-negative number", distanceKm))
	}
	c.distanceKm = distanceKm
	return nil
}
