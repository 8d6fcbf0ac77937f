package jobs_test

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// records decodes every JSON log line written to buf.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		out = append(out, record)
	}
	return out
}

func find(records []map[string]any, msg string) map[string]any {
	for _, r := range records {
		if r["msg"] == msg {
			return r
		}
	}
	return nil
}

func newReader(t *testing.T, parcels ...*parcel.Parcel) ports.UnitOfWork {
	t.Helper()

	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewRegistry())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, p := range parcels {
		require.NoError(t, uow.ParcelRepository().Add(ctx, p))
	}
	require.NoError(t, uow.Commit(ctx))

	return factory.Create()
}

func newParcel(t *testing.T, id kernel.ID, status parcel.Status, createdAt time.Time) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(id, 3, kernel.NewPlace("Depot"), kernel.NewPlace("Harbour"),
		status, parcel.Standard, "+15550100", createdAt)
	require.NoError(t, err)
	return p
}

func TestDeliveryReportJob_RunReportsPreviousMonth(t *testing.T) {
	// Given
	march, err := services.NewReportPeriod(3, 2024)
	require.NoError(t, err)

	reader := newReader(t,
		newParcel(t, 0, parcel.Delivered, march.Start().Add(time.Hour)),
		newParcel(t, 1, parcel.InTransit, march.Start().Add(time.Hour)),
		newParcel(t, 2, parcel.Delivered, march.End()),
	)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	job := jobs.NewDeliveryReportJob(
		queries.NewGenerateDeliveryReportQueryHandler(reader),
		fixedClock{now: time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)},
		jobs.DeliveryReportSchedule,
		logger,
	)

	// When
	err = job.Run(context.Background())

	// Then
	require.NoError(t, err)

	logs := records(t, &buf)
	summary := find(logs, "Delivery report generated")
	require.NotNil(t, summary)
	assert.Equal(t, "delivery_report_job", summary["component"])
	assert.InDelta(t, 3, summary["month"], 0)
	assert.InDelta(t, 2024, summary["year"], 0)
	assert.InDelta(t, 1, summary["delivered"], 0)

	line := find(logs, "Delivered package")
	require.NotNil(t, line)
	assert.InDelta(t, 0, line["package_id"], 0)
}

func TestRegistryStatsJob_RunLogsCounts(t *testing.T) {
	// Given
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reader := newReader(t,
		newParcel(t, 0, parcel.Delivered, at),
		newParcel(t, 1, parcel.InTransit, at),
		newParcel(t, 2, parcel.InTransit, at),
	)

	var buf bytes.Buffer
	job := jobs.NewRegistryStatsJob(
		queries.NewGetRegistryStatsQueryHandler(reader),
		jobs.RegistryStatsSchedule,
		slog.New(slog.NewJSONHandler(&buf, nil)),
	)

	// When
	err := job.Run(context.Background())

	// Then
	require.NoError(t, err)

	stats := find(records(t, &buf), "Registry stats")
	require.NotNil(t, stats)
	assert.InDelta(t, 3, stats["packages"], 0)
	assert.Equal(t, map[string]any{
		"InWarehouse": float64(0),
		"InTransit":   float64(2),
		"Delivered":   float64(1),
	}, stats["packages_by_status"])
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	// Given
	reader := newReader(t)
	var buf bytes.Buffer
	manager := jobs.NewJobManager(
		queries.NewGenerateDeliveryReportQueryHandler(reader),
		queries.NewGetRegistryStatsQueryHandler(reader),
		fixedClock{now: time.Now()},
		jobs.DefaultSchedules(),
		slog.New(slog.NewJSONHandler(&buf, nil)),
	)

	// When
	err := manager.StartAll()
	manager.StopAll()

	// Then
	require.NoError(t, err)
	logs := records(t, &buf)
	assert.NotNil(t, find(logs, "Registry stats job started"))
	assert.NotNil(t, find(logs, "Delivery report job started"))
	assert.NotNil(t, find(logs, "Delivery report job stopped"))
	assert.NotNil(t, find(logs, "Registry stats job stopped"))
}

func TestJobManager_StartAllStopsStartedJobsOnInvalidSchedule(t *testing.T) {
	// Given
	reader := newReader(t)
	var buf bytes.Buffer
	manager := jobs.NewJobManager(
		queries.NewGenerateDeliveryReportQueryHandler(reader),
		queries.NewGetRegistryStatsQueryHandler(reader),
		fixedClock{now: time.Now()},
		jobs.Schedules{DeliveryReport: "not a schedule", RegistryStats: jobs.RegistryStatsSchedule},
		slog.New(slog.NewJSONHandler(&buf, nil)),
	)

	// When
	err := manager.StartAll()

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery report job")

	logs := records(t, &buf)
	assert.NotNil(t, find(logs, "Registry stats job started"))
	assert.NotNil(t, find(logs, "Registry stats job stopped"))
	assert.Nil(t, find(logs, "Delivery report job started"))
}
