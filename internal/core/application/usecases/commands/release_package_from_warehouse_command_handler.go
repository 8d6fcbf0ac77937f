package commands

import (
	"context"
)

type ReleasePackageFromWarehouseCommandHandler struct {
	uowFactory UoWFactory
}

func NewReleasePackageFromWarehouseCommandHandler(uowFactory UoWFactory) ReleasePackageFromWarehouseCommandHandler {
	return ReleasePackageFromWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle drops the package from the warehouse's stored list. The package's
// warehouse reference is cleared only when it points at this warehouse, so a
// stale listing left behind by a later assignment can still be released.
// Returns an InvalidStateError when the warehouse does not list the package.
func (h ReleasePackageFromWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd ReleasePackageFromWarehouseCommand,
) error {
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
	warehouseRepo := uow.WarehouseRepository()

	p, err := parcelRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	w, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	if err = w.Release(p.ID()); err != nil {
		return err
	}

	if current := p.WarehouseID(); current != nil && *current == w.ID() {
		if err = p.LeaveWarehouse(w.ID()); err != nil {
			return err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = warehouseRepo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
