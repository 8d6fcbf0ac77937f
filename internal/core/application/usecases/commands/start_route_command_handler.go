package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// StartRouteCommandHandler starts a route with the driver assigned to it.
//
// Example:
//
//	handler := NewStartRouteCommandHandler(uowFactory, clock)
//	err := handler.Handle(ctx, NewStartRouteCommand(routeID))
//	switch {
//	case errors.Is(err, errs.ErrDriverOccupied):
//	    log.Println("driver is on another route")
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("route already started or has no driver")
//	}
type StartRouteCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewStartRouteCommandHandler(uowFactory UoWFactory, clock ports.Clock) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle resolves the driver through the route's assignment and hands both to
// RouteDispatcher. Route and driver are updated together or not at all.
func (h StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) error {
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

	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = r.ValidateStart(); err != nil {
		return err
	}

	d, err := driverRepo.Get(ctx, *r.AssignedDriver())
	if err != nil {
		return err
	}

	if err = services.NewRouteDispatcher().Start(r, d, h.clock.Now()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
