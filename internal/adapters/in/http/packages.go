package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreatePackage handles POST /packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var body servers.CreatePackageJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	status, err := parcel.ParseStatus(string(body.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}
	priority, err := parcel.ParsePriority(string(body.Priority))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreatePackageCommand(
		body.Weight,
		body.Origin,
		body.Destination,
		status,
		priority,
		body.CustomerPhone,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	id, err := s.h.CreatePackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return created(ctx, id)
}

// GetPackage handles GET /packages/{packageId}.
func (s *Server) GetPackage(ctx echo.Context, packageId servers.PackageId) error {
	id, err := toID("packageId", packageId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	p, err := s.h.GetPackageHandler.Handle(ctx.Request().Context(), queries.NewGetPackageQuery(id))
	if err != nil {
		return errorResponse(ctx, err)
	}
	if p == nil {
		return notFound(ctx, "package")
	}

	return ctx.JSON(http.StatusOK, servers.Package{
		Id:            fromID(p.ID),
		Weight:        p.Weight,
		Origin:        p.Origin,
		Destination:   p.Destination,
		Status:        servers.PackageStatus(p.Status.String()),
		Priority:      servers.Priority(p.Priority.String()),
		WarehouseId:   fromOptionalID(p.WarehouseID),
		RouteId:       fromOptionalID(p.RouteID),
		CustomerPhone: p.CustomerPhone,
		CreatedTime:   p.CreatedAt,
		DeliveredTime: p.DeliveredAt,
	})
}

// PrioritizePackage handles POST /packages/{packageId}/prioritize.
func (s *Server) PrioritizePackage(ctx echo.Context, packageId servers.PackageId) error {
	id, err := toID("packageId", packageId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd := commands.NewPrioritizePackageCommand(id)
	if err = s.h.PrioritizePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReroutePackage handles POST /packages/{packageId}/reroute.
func (s *Server) ReroutePackage(ctx echo.Context, packageId servers.PackageId) error {
	var body servers.ReroutePackageJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	id, err := toID("packageId", packageId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd := commands.NewReroutePackageCommand(id, body.Destination)

	if err = s.h.ReroutePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPackageToRoute handles PUT /packages/{packageId}/route.
func (s *Server) AssignPackageToRoute(ctx echo.Context, packageId servers.PackageId) error {
	var body servers.AssignPackageToRouteJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return err
	}

	pkgID, err := toID("packageId", packageId)
	if err != nil {
		return errorResponse(ctx, err)
	}
	routeID, err := toID("routeId", body.RouteId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd := commands.NewAssignPackageToRouteCommand(pkgID, routeID)
	if err = s.h.AssignPackageToRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EstimateDeliveryTime handles GET /packages/{packageId}/estimate.
func (s *Server) EstimateDeliveryTime(ctx echo.Context, packageId servers.PackageId) error {
	id, err := toID("packageId", packageId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	seconds, err := s.h.EstimateDeliveryTimeHandler.Handle(
		ctx.Request().Context(),
		queries.NewEstimateDeliveryTimeQuery(id),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Estimate{
		PackageId: packageId,
		Seconds:   seconds,
	})
}

// SendDeliveryNotification handles POST /packages/{packageId}/notifications.
func (s *Server) SendDeliveryNotification(ctx echo.Context, packageId servers.PackageId) error {
	id, err := toID("packageId", packageId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	notificationID, err := s.h.SendDeliveryNotificationHandler.Handle(
		ctx.Request().Context(),
		commands.NewSendDeliveryNotificationCommand(id),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, servers.NotificationReceipt{
		Id: notificationID.Bytes(),
	})
}
