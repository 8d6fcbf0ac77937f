package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeFixture struct {
	parcels *MockParcelRepository
	drivers *MockDriverRepository
	routes  *MockRouteRepository
	uow     *MockUoW
	factory *MockUoWFactory
}

func newRouteFixture(t *testing.T) routeFixture {
	t.Helper()

	f := routeFixture{
		parcels: new(MockParcelRepository),
		drivers: new(MockDriverRepository),
		routes:  new(MockRouteRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}

	ctx := t.Context()
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ParcelRepository").Return(f.parcels).Maybe()
	f.uow.On("DriverRepository").Return(f.drivers).Maybe()
	f.uow.On("RouteRepository").Return(f.routes).Maybe()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	return f
}

func TestRegisterDriverCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterDriverCommand("Ann", driver.Van)
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockDriverUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(repo).Once()
	repo.On("NextID", ctx).Return(kernel.ID(0), nil).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(d *driver.Driver) bool {
		return d.ID() == 0 && d.Name() == "Ann" && d.IsAvailable() && len(d.CompletedRoutes()) == 0
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	id, err := commands.NewRegisterDriverCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(0), id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRouteCommand("Port", "Airport", 42.8)
	require.NoError(t, err)

	repo := new(MockRouteRepository)
	uow := new(MockUoW)
	factory := new(MockRouteUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(repo).Once()
	repo.On("NextID", ctx).Return(kernel.ID(7), nil).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(r *route.Route) bool {
		return r.ID() == 7 && r.EstimatedDuration() == 43 && r.State() == route.Created
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	id, err := commands.NewCreateRouteCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(7), id)
	repo.AssertExpectations(t)
}

func TestAssignDriverToRouteCommandHandler_Handle(t *testing.T) {
	t.Run("records driver on route", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)
		r := mustRoute(1)

		f.routes.On("Get", ctx, kernel.ID(1)).Return(r, nil).Once()
		f.drivers.On("Get", ctx, kernel.ID(2)).Return(mustDriver(2), nil).Once()
		f.routes.On("Update", ctx, r).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		err := commands.NewAssignDriverToRouteCommandHandler(f.factory).
			Handle(ctx, commands.NewAssignDriverToRouteCommand(1, 2))

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(2), *r.AssignedDriver())
		f.routes.AssertExpectations(t)
		f.uow.AssertExpectations(t)
	})

	t.Run("unknown driver", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)
		r := mustRoute(1)

		f.routes.On("Get", ctx, kernel.ID(1)).Return(r, nil).Once()
		f.drivers.On("Get", ctx, kernel.ID(9999)).
			Return(nil, errs.NewObjectNotFoundError("driver", kernel.ID(9999))).Once()

		err := commands.NewAssignDriverToRouteCommandHandler(f.factory).
			Handle(ctx, commands.NewAssignDriverToRouteCommand(1, 9999))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, r.AssignedDriver())
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestStartRouteCommandHandler_Handle(t *testing.T) {
	clock := fixedClock{now: testNow}

	t.Run("starts route with assigned driver", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)
		r := mustRoute(1)
		d := mustDriver(2)
		require.NoError(t, r.AssignDriver(d.ID()))

		f.routes.On("Get", ctx, kernel.ID(1)).Return(r, nil).Once()
		f.drivers.On("Get", ctx, kernel.ID(2)).Return(d, nil).Once()
		f.routes.On("Update", ctx, r).Return(nil).Once()
		f.drivers.On("Update", ctx, d).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		err := commands.NewStartRouteCommandHandler(f.factory, clock).Handle(ctx, commands.NewStartRouteCommand(1))

		require.NoError(t, err)
		assert.Equal(t, route.Started, r.State())
		assert.Equal(t, testNow, *r.StartTime())
		assert.False(t, d.IsAvailable())
		f.drivers.AssertExpectations(t)
		f.routes.AssertExpectations(t)
	})

	t.Run("route without driver", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)

		f.routes.On("Get", ctx, kernel.ID(1)).Return(mustRoute(1), nil).Once()

		err := commands.NewStartRouteCommandHandler(f.factory, clock).Handle(ctx, commands.NewStartRouteCommand(1))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		f.drivers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("driver busy elsewhere", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)
		r := mustRoute(1)
		d := mustDriver(2)
		require.NoError(t, d.TakeRoute(0))
		require.NoError(t, r.AssignDriver(d.ID()))

		f.routes.On("Get", ctx, kernel.ID(1)).Return(r, nil).Once()
		f.drivers.On("Get", ctx, kernel.ID(2)).Return(d, nil).Once()

		err := commands.NewStartRouteCommandHandler(f.factory, clock).Handle(ctx, commands.NewStartRouteCommand(1))

		require.ErrorIs(t, err, errs.ErrDriverOccupied)
		assert.Equal(t, route.Created, r.State())
		f.routes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing route", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)
		f.routes.On("Get", ctx, kernel.ID(9999)).
			Return(nil, errs.NewObjectNotFoundError("route", kernel.ID(9999))).Once()

		err := commands.NewStartRouteCommandHandler(f.factory, clock).Handle(ctx, commands.NewStartRouteCommand(9999))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCompleteRouteCommandHandler_Handle(t *testing.T) {
	endedAt := testNow.Add(time.Hour)
	clock := fixedClock{now: endedAt}

	t.Run("frees driver and delivers packages", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)
		r := mustRoute(1)
		d := mustDriver(2)
		require.NoError(t, r.AssignDriver(d.ID()))
		require.NoError(t, r.Start(testNow))
		require.NoError(t, d.TakeRoute(r.ID()))
		p1 := mustParcel(3, parcel.Standard)
		p2 := mustParcel(4, parcel.Express)
		require.NoError(t, p1.AssignToRoute(r.ID()))
		require.NoError(t, p2.AssignToRoute(r.ID()))

		f.routes.On("Get", ctx, kernel.ID(1)).Return(r, nil).Once()
		f.drivers.On("Get", ctx, kernel.ID(2)).Return(d, nil).Once()
		f.parcels.On("GetAllByRoute", ctx, kernel.ID(1)).Return([]*parcel.Parcel{p1, p2}, nil).Once()
		f.routes.On("Update", ctx, r).Return(nil).Once()
		f.drivers.On("Update", ctx, d).Return(nil).Once()
		f.parcels.On("Update", ctx, p1).Return(nil).Once()
		f.parcels.On("Update", ctx, p2).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		err := commands.NewCompleteRouteCommandHandler(f.factory, clock).
			Handle(ctx, commands.NewCompleteRouteCommand(1))

		require.NoError(t, err)
		assert.Equal(t, route.Completed, r.State())
		assert.True(t, d.IsAvailable())
		assert.Equal(t, []kernel.ID{1}, d.CompletedRoutes())
		assert.Equal(t, parcel.Delivered, p1.Status())
		assert.Equal(t, parcel.Delivered, p2.Status())
		assert.Equal(t, endedAt, *p1.DeliveredAt())
		f.parcels.AssertExpectations(t)
		f.uow.AssertExpectations(t)
	})

	t.Run("route not started", func(t *testing.T) {
		ctx := t.Context()
		f := newRouteFixture(t)
		f.routes.On("Get", ctx, kernel.ID(1)).Return(mustRoute(1), nil).Once()

		err := commands.NewCompleteRouteCommandHandler(f.factory, clock).
			Handle(ctx, commands.NewCompleteRouteCommand(1))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		f.parcels.AssertNotCalled(t, "GetAllByRoute", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
