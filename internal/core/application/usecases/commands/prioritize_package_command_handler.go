package commands

import (
	"context"
)

// PrioritizePackageCommandHandler upgrades packages to Express. Prioritizing
// an Express package succeeds and changes nothing.
type PrioritizePackageCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewPrioritizePackageCommandHandler(uowFactory ParcelUoWFactory) PrioritizePackageCommandHandler {
	return PrioritizePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h PrioritizePackageCommandHandler) Handle(ctx context.Context, cmd PrioritizePackageCommand) error {
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

	repo := uow.ParcelRepository()

	p, err := repo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	p.Prioritize()

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
