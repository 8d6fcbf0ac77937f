package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// AddWarehouse handles POST /warehouses.
func (s *Server) AddWarehouse(ctx echo.Context) error {
	var body servers.AddWarehouseJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddWarehouseCommand(body.Location, body.Capacity)
	if err != nil {
		return errorResponse(ctx, err)
	}

	id, err := s.h.AddWarehouseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return created(ctx, id)
}

// GetWarehouse handles GET /warehouses/{warehouseId}.
func (s *Server) GetWarehouse(ctx echo.Context, warehouseId servers.WarehouseId) error {
	id, err := toID("warehouseId", warehouseId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	w, err := s.h.GetWarehouseHandler.Handle(ctx.Request().Context(), queries.NewGetWarehouseQuery(id))
	if err != nil {
		return errorResponse(ctx, err)
	}
	if w == nil {
		return notFound(ctx, "warehouse")
	}

	return ctx.JSON(http.StatusOK, servers.Warehouse{
		Id:             fromID(w.ID),
		Location:       w.Location,
		Capacity:       w.Capacity,
		StoredPackages: fromIDs(w.StoredPackages),
	})
}

// AssignPackageToWarehouse handles POST /warehouses/{warehouseId}/packages.
func (s *Server) AssignPackageToWarehouse(ctx echo.Context, warehouseId servers.WarehouseId) error {
	var body servers.AssignPackageToWarehouseJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	whID, err := toID("warehouseId", warehouseId)
	if err != nil {
		return errorResponse(ctx, err)
	}
	pkgID, err := toID("packageId", body.PackageId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd := commands.NewAssignPackageToWarehouseCommand(pkgID, whID)
	if err = s.h.AssignPackageToWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleasePackageFromWarehouse handles DELETE /warehouses/{warehouseId}/packages/{packageId}.
func (s *Server) ReleasePackageFromWarehouse(
	ctx echo.Context,
	warehouseId servers.WarehouseId,
	packageId servers.PackageId,
) error {
	whID, err := toID("warehouseId", warehouseId)
	if err != nil {
		return errorResponse(ctx, err)
	}
	pkgID, err := toID("packageId", packageId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd := commands.NewReleasePackageFromWarehouseCommand(pkgID, whID)
	if err = s.h.ReleasePackageFromWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
