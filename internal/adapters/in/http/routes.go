package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRoute handles POST /routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body servers.CreateRouteJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRouteCommand(body.Origin, body.Destination, body.DistanceKm)
	if err != nil {
		return errorResponse(ctx, err)
	}

	id, err := s.h.CreateRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return created(ctx, id)
}

// GetRoute handles GET /routes/{routeId}.
func (s *Server) GetRoute(ctx echo.Context, routeId servers.RouteId) error {
	id, err := toID("routeId", routeId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	r, err := s.h.GetRouteHandler.Handle(ctx.Request().Context(), queries.NewGetRouteQuery(id))
	if err != nil {
		return errorResponse(ctx, err)
	}
	if r == nil {
		return notFound(ctx, "route")
	}

	return ctx.JSON(http.StatusOK, servers.Route{
		Id:                fromID(r.ID),
		Origin:            r.Origin,
		Destination:       r.Destination,
		DistanceKm:        r.DistanceKm,
		AssignedDriver:    fromOptionalID(r.AssignedDriver),
		EstimatedDuration: r.EstimatedDuration,
		State:             servers.RouteState(r.State.String()),
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
	})
}

// AssignDriverToRoute handles PUT /routes/{routeId}/driver.
func (s *Server) AssignDriverToRoute(ctx echo.Context, routeId servers.RouteId) error {
	var body servers.AssignDriverToRouteJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	rID, err := toID("routeId", routeId)
	if err != nil {
		return errorResponse(ctx, err)
	}
	dID, err := toID("driverId", body.DriverId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd := commands.NewAssignDriverToRouteCommand(rID, dID)
	if err = s.h.AssignDriverToRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartRoute handles POST /routes/{routeId}/start.
func (s *Server) StartRoute(ctx echo.Context, routeId servers.RouteId) error {
	id, err := toID("routeId", routeId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.h.StartRouteHandler.Handle(ctx.Request().Context(), commands.NewStartRouteCommand(id)); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteRoute handles POST /routes/{routeId}/complete.
func (s *Server) CompleteRoute(ctx echo.Context, routeId servers.RouteId) error {
	id, err := toID("routeId", routeId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.h.CompleteRouteHandler.Handle(ctx.Request().Context(), commands.NewCompleteRouteCommand(id)); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
