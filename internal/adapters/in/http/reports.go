package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GenerateDeliveryReport handles GET /reports/deliveries?month=&year=.
func (s *Server) GenerateDeliveryReport(ctx echo.Context, params servers.GenerateDeliveryReportParams) error {
	query, err := queries.NewGenerateDeliveryReportQuery(params.Month, params.Year)
	if err != nil {
		return errorResponse(ctx, err)
	}

	entries, err := s.h.GenerateDeliveryReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.DeliveryReportEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, servers.DeliveryReportEntry{
			PackageId:     fromID(e.PackageID),
			DeliveredTime: e.DeliveredTime,
			CompletedTime: e.CompletedTime,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
