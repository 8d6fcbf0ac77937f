package commands

import (
	"context"
)

// ReroutePackageCommandHandler changes a package's destination. When the
// package is on a route, the route's destination follows it; the route's
// distance and estimated duration are not recomputed.
type ReroutePackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewReroutePackageCommandHandler(uowFactory UoWFactory) ReroutePackageCommandHandler {
	return ReroutePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReroutePackageCommandHandler) Handle(ctx context.Context, cmd ReroutePackageCommand) error {
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

	if err = p.Reroute(cmd.Destination()); err != nil {
		return err
	}

	if routeID := p.RouteID(); routeID != nil {
		routeRepo := uow.RouteRepository()

		r, getErr := routeRepo.Get(ctx, *routeID)
		if getErr != nil {
			return getErr
		}

		if err = r.ChangeDestination(cmd.Destination()); err != nil {
			return err
		}

		if err = routeRepo.Update(ctx, r); err != nil {
			return err
		}
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
