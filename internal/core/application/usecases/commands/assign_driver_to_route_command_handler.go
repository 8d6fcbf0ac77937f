package commands

import (
	"context"
)

type AssignDriverToRouteCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignDriverToRouteCommandHandler(uowFactory UoWFactory) AssignDriverToRouteCommandHandler {
	return AssignDriverToRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks that both the route and the driver exist and records the
// driver on the route. Driver availability is checked when the route starts.
func (h AssignDriverToRouteCommandHandler) Handle(ctx context.Context, cmd AssignDriverToRouteCommand) error {
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

	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = r.AssignDriver(d.ID()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
