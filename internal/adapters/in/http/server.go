package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers is the set of use cases the HTTP server exposes.
type Handlers struct {
	AddWarehouseHandler                commands.AddWarehouseCommandHandler
	AssignPackageToWarehouseHandler    commands.AssignPackageToWarehouseCommandHandler
	ReleasePackageFromWarehouseHandler commands.ReleasePackageFromWarehouseCommandHandler
	RegisterDriverHandler              commands.RegisterDriverCommandHandler
	CreateRouteHandler                 commands.CreateRouteCommandHandler
	AssignDriverToRouteHandler         commands.AssignDriverToRouteCommandHandler
	StartRouteHandler                  commands.StartRouteCommandHandler
	CompleteRouteHandler               commands.CompleteRouteCommandHandler
	CreatePackageHandler               commands.CreatePackageCommandHandler
	PrioritizePackageHandler           commands.PrioritizePackageCommandHandler
	ReroutePackageHandler              commands.ReroutePackageCommandHandler
	AssignPackageToRouteHandler        commands.AssignPackageToRouteCommandHandler
	SendDeliveryNotificationHandler    commands.SendDeliveryNotificationCommandHandler

	GetWarehouseHandler           queries.GetWarehouseQueryHandler
	GetDriverHandler              queries.GetDriverQueryHandler
	GetRouteHandler               queries.GetRouteQueryHandler
	GetPackageHandler             queries.GetPackageQueryHandler
	EstimateDeliveryTimeHandler   queries.EstimateDeliveryTimeQueryHandler
	GenerateDeliveryReportHandler queries.GenerateDeliveryReportQueryHandler
	GetRegistryStatsHandler       queries.GetRegistryStatsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetRegistryStats handles GET /stats.
func (s *Server) GetRegistryStats(ctx echo.Context) error {
	stats, err := s.h.GetRegistryStatsHandler.Handle(ctx.Request().Context(), queries.NewGetRegistryStatsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.RegistryStats{
		Packages:          stats.Packages,
		PackagesByStatus:  make(map[string]int, len(stats.PackagesByStatus)),
		Warehouses:        stats.Warehouses,
		WarehouseCapacity: stats.WarehouseCapacity,
		StoredPackages:    stats.StoredPackages,
		Drivers:           stats.Drivers,
		AvailableDrivers:  stats.AvailableDrivers,
		Routes:            stats.Routes,
		RoutesByState:     make(map[string]int, len(stats.RoutesByState)),
	}
	for status, n := range stats.PackagesByStatus {
		response.PackagesByStatus[status.String()] = n
	}
	for state, n := range stats.RoutesByState {
		response.RoutesByState[state.String()] = n
	}

	return ctx.JSON(http.StatusOK, response)
}

// toID converts a path or body id. The document already rejects negative ids;
// this guards handlers called without the validation middleware.
func toID(param string, v servers.Id) (kernel.ID, error) {
	if v < 0 {
		return 0, errs.NewValueIsOutOfRangeError(param, v, 0, "max int64")
	}
	return kernel.ID(v), nil
}

func fromID(id kernel.ID) servers.Id {
	return servers.Id(id)
}

func fromOptionalID(id *kernel.ID) *servers.Id {
	if id == nil {
		return nil
	}
	v := fromID(*id)
	return &v
}

func fromIDs(ids []kernel.ID) []servers.Id {
	out := make([]servers.Id, 0, len(ids))
	for _, id := range ids {
		out = append(out, fromID(id))
	}
	return out
}

func created(ctx echo.Context, id kernel.ID) error {
	return ctx.JSON(http.StatusCreated, servers.Created{Id: fromID(id)})
}
