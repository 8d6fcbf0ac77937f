package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// AssignPackageToRouteCommandHandler attaches a package to a route so that it
// can be estimated and is delivered when the route completes.
type AssignPackageToRouteCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignPackageToRouteCommandHandler(uowFactory UoWFactory) AssignPackageToRouteCommandHandler {
	return AssignPackageToRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an InvalidStateError when the route is already completed or
// the package is already delivered.
func (h AssignPackageToRouteCommandHandler) Handle(ctx context.Context, cmd AssignPackageToRouteCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if r.State() == route.Completed {
		return errs.NewInvalidStateError("route", r.State().String(), "assign package to")
	}

	if err = p.AssignToRoute(r.ID()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
