package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.April, 2, 9, 30, 0, 0, time.UTC)

func newRoute(t *testing.T, id kernel.ID, distanceKm float64) *route.Route {
	t.Helper()
	r, err := route.NewRoute(id, kernel.NewPlace("Port"), kernel.NewPlace("Airport"), distanceKm)
	require.NoError(t, err)
	return r
}

func newDriver(t *testing.T, id kernel.ID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, "Ann", driver.Van)
	require.NoError(t, err)
	return d
}

func newParcel(t *testing.T, id kernel.ID, priority parcel.Priority) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(id, 1.5, kernel.NewPlace("Port"), kernel.NewPlace("Airport"),
		parcel.InTransit, priority, "+15550100", now)
	require.NoError(t, err)
	return p
}

func TestRouteDispatcher_Start(t *testing.T) {
	dispatcher := services.NewRouteDispatcher()

	t.Run("should start route and occupy driver", func(t *testing.T) {
		r := newRoute(t, 1, 10)
		d := newDriver(t, 0)
		require.NoError(t, r.AssignDriver(d.ID()))

		err := dispatcher.Start(r, d, now)

		require.NoError(t, err)
		assert.Equal(t, route.Started, r.State())
		assert.Equal(t, now, *r.StartTime())
		assert.False(t, d.IsAvailable())
		assert.Equal(t, r.ID(), *d.CurrentRoute())
	})

	t.Run("should reject busy driver and leave route untouched", func(t *testing.T) {
		d := newDriver(t, 0)
		first := newRoute(t, 1, 10)
		second := newRoute(t, 2, 20)
		require.NoError(t, first.AssignDriver(d.ID()))
		require.NoError(t, second.AssignDriver(d.ID()))
		require.NoError(t, dispatcher.Start(first, d, now))

		err := dispatcher.Start(second, d, now)

		require.ErrorIs(t, err, errs.ErrDriverOccupied)
		assert.Equal(t, route.Created, second.State())
		assert.Equal(t, first.ID(), *d.CurrentRoute())
	})

	t.Run("should reject route without driver", func(t *testing.T) {
		r := newRoute(t, 1, 10)
		d := newDriver(t, 0)

		err := dispatcher.Start(r, d, now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.True(t, d.IsAvailable())
	})

	t.Run("should reject driver not assigned to route", func(t *testing.T) {
		r := newRoute(t, 1, 10)
		require.NoError(t, r.AssignDriver(5))
		d := newDriver(t, 0)

		err := dispatcher.Start(r, d, now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, route.Created, r.State())
		assert.True(t, d.IsAvailable())
	})

	t.Run("should reject unconstructed inputs", func(t *testing.T) {
		err := dispatcher.Start(nil, newDriver(t, 0), now)
		require.ErrorIs(t, err, route.ErrRouteIsNotConstructed)
	})
}

func TestRouteDispatcher_Complete(t *testing.T) {
	dispatcher := services.NewRouteDispatcher()

	t.Run("should deliver parcels on the route and free the driver", func(t *testing.T) {
		// Given
		r := newRoute(t, 3, 10)
		d := newDriver(t, 0)
		require.NoError(t, r.AssignDriver(d.ID()))
		require.NoError(t, dispatcher.Start(r, d, now))

		onRoute := newParcel(t, 0, parcel.Standard)
		require.NoError(t, onRoute.AssignToRoute(r.ID()))
		elsewhere := newParcel(t, 1, parcel.Standard)
		require.NoError(t, elsewhere.AssignToRoute(9))
		unrouted := newParcel(t, 2, parcel.Standard)

		endedAt := now.Add(time.Hour)

		// When
		delivered, err := dispatcher.Complete(r, d, []*parcel.Parcel{onRoute, elsewhere, unrouted}, endedAt)

		// Then
		require.NoError(t, err)
		require.Len(t, delivered, 1)
		assert.Equal(t, onRoute.ID(), delivered[0].ID())

		assert.Equal(t, route.Completed, r.State())
		assert.Equal(t, endedAt, *r.EndTime())
		assert.True(t, d.IsAvailable())
		assert.Equal(t, []kernel.ID{3}, d.CompletedRoutes())

		assert.Equal(t, parcel.Delivered, onRoute.Status())
		assert.Equal(t, endedAt, *onRoute.DeliveredAt())
		assert.Equal(t, parcel.InTransit, elsewhere.Status())
		assert.Equal(t, parcel.InTransit, unrouted.Status())
	})

	t.Run("should reject route that has not started", func(t *testing.T) {
		r := newRoute(t, 3, 10)
		d := newDriver(t, 0)
		require.NoError(t, r.AssignDriver(d.ID()))
		p := newParcel(t, 0, parcel.Standard)
		require.NoError(t, p.AssignToRoute(r.ID()))

		delivered, err := dispatcher.Complete(r, d, []*parcel.Parcel{p}, now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, delivered)
		assert.Equal(t, parcel.InTransit, p.Status())
	})

	t.Run("should reject completed route", func(t *testing.T) {
		r := newRoute(t, 3, 10)
		d := newDriver(t, 0)
		require.NoError(t, r.AssignDriver(d.ID()))
		require.NoError(t, dispatcher.Start(r, d, now))
		_, err := dispatcher.Complete(r, d, nil, now)
		require.NoError(t, err)

		_, err = dispatcher.Complete(r, d, nil, now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, []kernel.ID{3}, d.CompletedRoutes())
	})
}
