package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryReportSchedule fires at midnight on the first day of every month.
const DeliveryReportSchedule = "0 0 0 1 * *"

// DeliveryReportJob logs the delivery report of the previous calendar month.
type DeliveryReportJob struct {
	handler  queries.GenerateDeliveryReportQueryHandler
	clock    ports.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryReportJob creates a report job running on schedule, a six-field
// cron expression with seconds.
func NewDeliveryReportJob(
	handler queries.GenerateDeliveryReportQueryHandler,
	clock ports.Clock,
	schedule string,
	logger *slog.Logger,
) *DeliveryReportJob {
	return &DeliveryReportJob{
		handler:  handler,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_report_job"),
	}
}

// Run generates and logs the report once.
func (j *DeliveryReportJob) Run(ctx context.Context) error {
	query, err := queries.NewPreviousMonthDeliveryReportQuery(j.clock.Now())
	if err != nil {
		return err
	}

	entries, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	period := query.Period()
	j.logger.InfoContext(ctx, "Delivery report generated",
		"month", period.Month(),
		"year", period.Year(),
		"from", period.Start(),
		"to", period.End(),
		"delivered", len(entries),
	)
	for _, e := range entries {
		attrs := []any{"package_id", uint64(e.PackageID), "delivered_time", e.DeliveredTime}
		if e.CompletedTime != nil {
			attrs = append(attrs, "completed_time", *e.CompletedTime)
		}
		j.logger.DebugContext(ctx, "Delivered package", attrs...)
	}

	return nil
}

// Start schedules the job.
func (j *DeliveryReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running report to finish.
func (j *DeliveryReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery report job stopped")
}
