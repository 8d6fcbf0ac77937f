package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CompleteRouteCommandHandler finishes a started route: the route gets its end
// time, the driver becomes available again and every package on the route is
// marked Delivered.
type CompleteRouteCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewCompleteRouteCommandHandler(uowFactory UoWFactory, clock ports.Clock) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	driverRepo := uow.DriverRepository()
	parcelRepo := uow.ParcelRepository()

	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = r.ValidateComplete(); err != nil {
		return err
	}

	// A started route always has a driver.
	d, err := driverRepo.Get(ctx, *r.AssignedDriver())
	if err != nil {
		return err
	}

	parcels, err := parcelRepo.GetAllByRoute(ctx, r.ID())
	if err != nil {
		return err
	}

	delivered, err := services.NewRouteDispatcher().Complete(r, d, parcels, h.clock.Now())
	if err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	for _, p := range delivered {
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
