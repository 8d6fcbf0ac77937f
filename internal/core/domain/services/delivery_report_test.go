package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func TestNewReportPeriod(t *testing.T) {
	t.Run("uses approximate calendar", func(t *testing.T) {
		period, err := services.NewReportPeriod(3, 1971)

		require.NoError(t, err)
		assert.Equal(t, time.Unix(0, 0).UTC().Add((365+60)*day), period.Start())
		assert.Equal(t, period.Start().Add(30*day), period.End())
		assert.Equal(t, 3, period.Month())
		assert.Equal(t, 1971, period.Year())
	})

	t.Run("is half open", func(t *testing.T) {
		period, err := services.NewReportPeriod(1, 1970)
		require.NoError(t, err)

		assert.True(t, period.Contains(period.Start()))
		assert.True(t, period.Contains(period.End().Add(-time.Nanosecond)))
		assert.False(t, period.Contains(period.End()))
		assert.False(t, period.Contains(period.Start().Add(-time.Nanosecond)))
	})

	t.Run("rejects out of range input", func(t *testing.T) {
		for _, tc := range []struct{ month, year int }{{0, 2024}, {13, 2024}, {1, 1969}, {1, 10000}} {
			_, err := services.NewReportPeriod(tc.month, tc.year)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "%d/%d", tc.month, tc.year)
		}
	})
}

func TestPreviousReportPeriod(t *testing.T) {
	period, err := services.PreviousReportPeriod(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 12, period.Month())
	assert.Equal(t, 2023, period.Year())
}

func TestDeliveryReporter_Report(t *testing.T) {
	// Given
	period, err := services.NewReportPeriod(2, 2024)
	require.NoError(t, err)
	inside := period.Start().Add(day)
	completed := inside.Add(time.Hour)

	build := func(id kernel.ID, status parcel.Status, createdAt time.Time) *parcel.Parcel {
		p, err := parcel.NewParcel(id, 1, kernel.NewPlace("A"), kernel.NewPlace("B"),
			status, parcel.Standard, "5550100", createdAt)
		require.NoError(t, err)
		return p
	}

	deliveredLate := build(5, parcel.InTransit, inside)
	deliveredLate.MarkDelivered(completed)
	deliveredEarly := build(2, parcel.Delivered, inside)
	notDelivered := build(3, parcel.InTransit, inside)
	outside := build(4, parcel.Delivered, period.End())

	// When
	entries := services.NewDeliveryReporter().Report(period,
		[]*parcel.Parcel{deliveredLate, notDelivered, outside, deliveredEarly})

	// Then
	require.Len(t, entries, 2)
	assert.Equal(t, kernel.ID(2), entries[0].PackageID)
	assert.Equal(t, inside, entries[0].DeliveredTime)
	assert.Nil(t, entries[0].CompletedTime)
	assert.Equal(t, kernel.ID(5), entries[1].PackageID)
	assert.Equal(t, inside, entries[1].DeliveredTime)
	require.NotNil(t, entries[1].CompletedTime)
	assert.Equal(t, completed, *entries[1].CompletedTime)
}

func TestDeliveryReporter_EmptyReport(t *testing.T) {
	period, err := services.NewReportPeriod(2, 2024)
	require.NoError(t, err)

	entries := services.NewDeliveryReporter().Report(period, nil)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
