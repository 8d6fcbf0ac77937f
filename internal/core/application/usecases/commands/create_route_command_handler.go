package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// CreateRouteCommandHandler creates routes in the Created state with no driver.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (kernel.ID, error) {
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

	repo := uow.RouteRepository()

	id, err := repo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	r, err := route.NewRoute(id, cmd.Origin(), cmd.Destination(), cmd.DistanceKm())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, r); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
