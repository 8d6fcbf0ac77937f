package cmd

import (
	"log/slog"

	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/clock"
	"logistics/internal/adapters/out/notify"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		clock:      clock.NewSystemClock(),
		notifier:   notify.NewLoggingNotifier(logger),
		logger:     logger,
	}
}

// WithClock returns a copy of the root that stamps times with c.
func (c *CompositionRoot) WithClock(clk ports.Clock) CompositionRoot {
	root := *c
	root.clock = clk
	return root
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoW() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) warehouseUoW() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoW() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoW() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

// reader serves queries outside a transaction.
func (c *CompositionRoot) reader() queries.Reader {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateAddWarehouseCommandHandler() commands.AddWarehouseCommandHandler {
	return commands.NewAddWarehouseCommandHandler(c.warehouseUoW())
}

func (c *CompositionRoot) CreateAssignPackageToWarehouseCommandHandler() commands.AssignPackageToWarehouseCommandHandler {
	return commands.NewAssignPackageToWarehouseCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateReleasePackageFromWarehouseCommandHandler() commands.ReleasePackageFromWarehouseCommandHandler {
	return commands.NewReleasePackageFromWarehouseCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoW())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoW())
}

func (c *CompositionRoot) CreateAssignDriverToRouteCommandHandler() commands.AssignDriverToRouteCommandHandler {
	return commands.NewAssignDriverToRouteCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	return commands.NewStartRouteCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.parcelUoW(), c.clock)
}

func (c *CompositionRoot) CreatePrioritizePackageCommandHandler() commands.PrioritizePackageCommandHandler {
	return commands.NewPrioritizePackageCommandHandler(c.parcelUoW())
}

func (c *CompositionRoot) CreateReroutePackageCommandHandler() commands.ReroutePackageCommandHandler {
	return commands.NewReroutePackageCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignPackageToRouteCommandHandler() commands.AssignPackageToRouteCommandHandler {
	return commands.NewAssignPackageToRouteCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSendDeliveryNotificationCommandHandler() commands.SendDeliveryNotificationCommandHandler {
	return commands.NewSendDeliveryNotificationCommandHandler(c.parcelUoW(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateGetWarehouseQueryHandler() queries.GetWarehouseQueryHandler {
	return queries.NewGetWarehouseQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateEstimateDeliveryTimeQueryHandler() queries.EstimateDeliveryTimeQueryHandler {
	return queries.NewEstimateDeliveryTimeQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateGenerateDeliveryReportQueryHandler() queries.GenerateDeliveryReportQueryHandler {
	return queries.NewGenerateDeliveryReportQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateGetRegistryStatsQueryHandler() queries.GetRegistryStatsQueryHandler {
	return queries.NewGetRegistryStatsQueryHandler(c.reader())
}

// CreateHTTPServer wires every use case into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		AddWarehouseHandler:                c.CreateAddWarehouseCommandHandler(),
		AssignPackageToWarehouseHandler:    c.CreateAssignPackageToWarehouseCommandHandler(),
		ReleasePackageFromWarehouseHandler: c.CreateReleasePackageFromWarehouseCommandHandler(),
		RegisterDriverHandler:              c.CreateRegisterDriverCommandHandler(),
		CreateRouteHandler:                 c.CreateCreateRouteCommandHandler(),
		AssignDriverToRouteHandler:         c.CreateAssignDriverToRouteCommandHandler(),
		StartRouteHandler:                  c.CreateStartRouteCommandHandler(),
		CompleteRouteHandler:               c.CreateCompleteRouteCommandHandler(),
		CreatePackageHandler:               c.CreateCreatePackageCommandHandler(),
		PrioritizePackageHandler:           c.CreatePrioritizePackageCommandHandler(),
		ReroutePackageHandler:              c.CreateReroutePackageCommandHandler(),
		AssignPackageToRouteHandler:        c.CreateAssignPackageToRouteCommandHandler(),
		SendDeliveryNotificationHandler:    c.CreateSendDeliveryNotificationCommandHandler(),

		GetWarehouseHandler:           c.CreateGetWarehouseQueryHandler(),
		GetDriverHandler:              c.CreateGetDriverQueryHandler(),
		GetRouteHandler:               c.CreateGetRouteQueryHandler(),
		GetPackageHandler:             c.CreateGetPackageQueryHandler(),
		EstimateDeliveryTimeHandler:   c.CreateEstimateDeliveryTimeQueryHandler(),
		GenerateDeliveryReportHandler: c.CreateGenerateDeliveryReportQueryHandler(),
		GetRegistryStatsHandler:       c.CreateGetRegistryStatsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGenerateDeliveryReportQueryHandler(),
		c.CreateGetRegistryStatsQueryHandler(),
		c.clock,
		jobs.Schedules{
			DeliveryReport: c.config.ReportSchedule,
			RegistryStats:  c.config.StatsSchedule,
		},
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}
