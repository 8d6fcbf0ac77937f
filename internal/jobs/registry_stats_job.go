package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RegistryStatsSchedule fires at the start of every minute.
const RegistryStatsSchedule = "0 * * * * *"

// RegistryStatsJob periodically logs how many entities the registry holds.
type RegistryStatsJob struct {
	handler  queries.GetRegistryStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewRegistryStatsJob(
	handler queries.GetRegistryStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *RegistryStatsJob {
	return &RegistryStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "registry_stats_job"),
	}
}

// Run reads and logs the statistics once.
func (j *RegistryStatsJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetRegistryStatsQuery())
	if err != nil {
		return err
	}

	packages := make(map[string]int, len(stats.PackagesByStatus))
	for status, n := range stats.PackagesByStatus {
		packages[status.String()] = n
	}
	routes := make(map[string]int, len(stats.RoutesByState))
	for state, n := range stats.RoutesByState {
		routes[state.String()] = n
	}

	j.logger.InfoContext(ctx, "Registry stats",
		"packages", stats.Packages,
		"packages_by_status", packages,
		"warehouses", stats.Warehouses,
		"stored_packages", stats.StoredPackages,
		"warehouse_capacity", stats.WarehouseCapacity,
		"drivers", stats.Drivers,
		"available_drivers", stats.AvailableDrivers,
		"routes", stats.Routes,
		"routes_by_state", routes,
	)
	return nil
}

func (j *RegistryStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Registry stats job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Registry stats job started", "schedule", j.schedule)
	return nil
}

func (j *RegistryStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Registry stats job stopped")
}
