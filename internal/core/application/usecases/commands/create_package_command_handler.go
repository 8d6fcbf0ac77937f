package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/ports"
)

// CreatePackageCommandHandler registers packages stamped with the registry
// clock. New packages have no warehouse and no route.
type CreatePackageCommandHandler struct {
	uowFactory ParcelUoWFactory
	clock      ports.Clock
}

func NewCreatePackageCommandHandler(uowFactory ParcelUoWFactory, clock ports.Clock) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	id, err := repo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	p, err := parcel.NewParcel(
		id,
		cmd.Weight(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Status(),
		cmd.Priority(),
		cmd.CustomerPhone(),
		h.clock.Now(),
	)
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, p); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
