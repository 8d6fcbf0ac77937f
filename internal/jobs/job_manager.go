package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
)

// Schedules holds the cron expressions of the scheduled jobs.
type Schedules struct {
	DeliveryReport string
	RegistryStats  string
}

// DefaultSchedules runs the report monthly and the stats every minute.
func DefaultSchedules() Schedules {
	return Schedules{
		DeliveryReport: DeliveryReportSchedule,
		RegistryStats:  RegistryStatsSchedule,
	}
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryReportJob *DeliveryReportJob
	registryStatsJob  *RegistryStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reportHandler queries.GenerateDeliveryReportQueryHandler,
	statsHandler queries.GetRegistryStatsQueryHandler,
	clock ports.Clock,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryReportJob: NewDeliveryReportJob(reportHandler, clock, schedules.DeliveryReport, logger),
		registryStatsJob:  NewRegistryStatsJob(statsHandler, schedules.RegistryStats, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.registryStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start registry stats job: %w", err)
	}

	if err := jm.deliveryReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.registryStatsJob.Stop()
		return fmt.Errorf("failed to start delivery report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryReportJob.Stop()
	jm.registryStatsJob.Stop()
}
