package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterDriver handles POST /drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body servers.RegisterDriverJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	vehicleType, err := driver.ParseVehicleType(string(body.VehicleType))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterDriverCommand(body.Name, vehicleType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	id, err := s.h.RegisterDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return created(ctx, id)
}

// GetDriver handles GET /drivers/{driverId}.
func (s *Server) GetDriver(ctx echo.Context, driverId servers.DriverId) error {
	id, err := toID("driverId", driverId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	d, err := s.h.GetDriverHandler.Handle(ctx.Request().Context(), queries.NewGetDriverQuery(id))
	if err != nil {
		return errorResponse(ctx, err)
	}
	if d == nil {
		return notFound(ctx, "driver")
	}

	return ctx.JSON(http.StatusOK, servers.Driver{
		Id:              fromID(d.ID),
		Name:            d.Name,
		VehicleType:     servers.VehicleType(d.VehicleType.String()),
		IsAvailable:     d.IsAvailable,
		CurrentRoute:    fromOptionalID(d.CurrentRoute),
		CompletedRoutes: fromIDs(d.CompletedRoutes),
	})
}
