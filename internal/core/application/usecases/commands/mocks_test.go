package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllByRoute(ctx context.Context, routeID kernel.ID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllDelivered(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.ID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

// MockUoW satisfies every unit of work interface in the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)

func mustParcel(id kernel.ID, priority parcel.Priority) *parcel.Parcel {
	p, err := parcel.NewParcel(id, 2, kernel.NewPlace("Port"), kernel.NewPlace("Airport"),
		parcel.InWarehouse, priority, "+15550100", testNow)
	if err != nil {
		panic(err)
	}
	return p
}

func mustWarehouse(id kernel.ID, capacity int) *warehouse.Warehouse {
	w, err := warehouse.NewWarehouse(id, kernel.NewPlace("Depot"), capacity)
	if err != nil {
		panic(err)
	}
	return w
}

func mustDriver(id kernel.ID) *driver.Driver {
	d, err := driver.NewDriver(id, "Ann", driver.Truck)
	if err != nil {
		panic(err)
	}
	return d
}

func mustRoute(id kernel.ID) *route.Route {
	r, err := route.NewRoute(id, kernel.NewPlace("Port"), kernel.NewPlace("Airport"), 42.8)
	if err != nil {
		panic(err)
	}
	return r
}
