package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/cmd"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// RegistryScenarioTestSuite drives the use cases wired by the composition
// root against the in-memory backend.
type RegistryScenarioTestSuite struct {
	suite.Suite
	ctx     context.Context
	root    cmd.CompositionRoot
	backend cmd.Backend
}

func (s *RegistryScenarioTestSuite) SetupTest() {
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	config := cmd.Config{Backend: cmd.BackendMemory, HTTPPort: "0"}

	backend, err := cmd.OpenBackend(config, logger)
	s.Require().NoError(err)
	s.backend = backend

	root := cmd.NewCompositionRoot(config, backend.UoWFactory, logger)
	s.root = root.WithClock(fixedClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)})
}

func (s *RegistryScenarioTestSuite) TearDownTest() {
	s.Require().NoError(s.backend.Close())
}

func (s *RegistryScenarioTestSuite) addWarehouse(capacity int) kernel.ID {
	cmd, err := commands.NewAddWarehouseCommand("Lyon", capacity)
	s.Require().NoError(err)
	id, err := s.root.CreateAddWarehouseCommandHandler().Handle(s.ctx, cmd)
	s.Require().NoError(err)
	return id
}

func (s *RegistryScenarioTestSuite) createPackage(priority parcel.Priority) kernel.ID {
	cmd, err := commands.NewCreatePackageCommand(1.2, "Lyon", "Paris", parcel.InWarehouse, priority, "+33155501000")
	s.Require().NoError(err)
	id, err := s.root.CreateCreatePackageCommandHandler().Handle(s.ctx, cmd)
	s.Require().NoError(err)
	return id
}

func (s *RegistryScenarioTestSuite) createRoute(km float64) kernel.ID {
	cmd, err := commands.NewCreateRouteCommand("Lyon", "Paris", km)
	s.Require().NoError(err)
	id, err := s.root.CreateCreateRouteCommandHandler().Handle(s.ctx, cmd)
	s.Require().NoError(err)
	return id
}

func (s *RegistryScenarioTestSuite) registerDriver() kernel.ID {
	cmd, err := commands.NewRegisterDriverCommand("Camille", driver.Truck)
	s.Require().NoError(err)
	id, err := s.root.CreateRegisterDriverCommandHandler().Handle(s.ctx, cmd)
	s.Require().NoError(err)
	return id
}

func (s *RegistryScenarioTestSuite) assignToRoute(pkgID, routeID kernel.ID) {
	err := s.root.CreateAssignPackageToRouteCommandHandler().Handle(s.ctx,
		commands.NewAssignPackageToRouteCommand(pkgID, routeID))
	s.Require().NoError(err)
}

func (s *RegistryScenarioTestSuite) TestIDsAreSequentialPerEntity() {
	s.Equal(kernel.ID(0), s.createPackage(parcel.Standard))
	s.Equal(kernel.ID(1), s.createPackage(parcel.Standard))
	s.Equal(kernel.ID(0), s.addWarehouse(1))
	s.Equal(kernel.ID(0), s.createRoute(1))
	s.Equal(kernel.ID(0), s.registerDriver())
	s.Equal(kernel.ID(2), s.createPackage(parcel.Express))
}

func (s *RegistryScenarioTestSuite) TestWarehouseRejectsPackageOverCapacity() {
	// Given
	whID := s.addWarehouse(2)
	ids := []kernel.ID{s.createPackage(parcel.Standard), s.createPackage(parcel.Standard), s.createPackage(parcel.Standard)}
	handler := s.root.CreateAssignPackageToWarehouseCommandHandler()

	// When
	s.Require().NoError(handler.Handle(s.ctx, commands.NewAssignPackageToWarehouseCommand(ids[0], whID)))
	s.Require().NoError(handler.Handle(s.ctx, commands.NewAssignPackageToWarehouseCommand(ids[1], whID)))
	err := handler.Handle(s.ctx, commands.NewAssignPackageToWarehouseCommand(ids[2], whID))

	// Then
	s.Require().ErrorIs(err, errs.ErrCapacityExceeded)

	wh, err := s.root.CreateGetWarehouseQueryHandler().Handle(s.ctx, queries.NewGetWarehouseQuery(whID))
	s.Require().NoError(err)
	s.Equal([]kernel.ID{ids[0], ids[1]}, wh.StoredPackages)

	third, err := s.root.CreateGetPackageQueryHandler().Handle(s.ctx, queries.NewGetPackageQuery(ids[2]))
	s.Require().NoError(err)
	s.Nil(third.WarehouseID)
}

func (s *RegistryScenarioTestSuite) TestRepeatedWarehouseAssignmentAppends() {
	// Given
	whID := s.addWarehouse(2)
	pkgID := s.createPackage(parcel.Standard)
	handler := s.root.CreateAssignPackageToWarehouseCommandHandler()

	// When
	s.Require().NoError(handler.Handle(s.ctx, commands.NewAssignPackageToWarehouseCommand(pkgID, whID)))
	s.Require().NoError(handler.Handle(s.ctx, commands.NewAssignPackageToWarehouseCommand(pkgID, whID)))
	err := handler.Handle(s.ctx, commands.NewAssignPackageToWarehouseCommand(pkgID, whID))

	// Then
	s.Require().ErrorIs(err, errs.ErrCapacityExceeded)

	wh, err := s.root.CreateGetWarehouseQueryHandler().Handle(s.ctx, queries.NewGetWarehouseQuery(whID))
	s.Require().NoError(err)
	s.Equal([]kernel.ID{pkgID, pkgID}, wh.StoredPackages)
}

func (s *RegistryScenarioTestSuite) TestCreationAcceptsAnyNamesAndValues() {
	// Given
	addWarehouse, err := commands.NewAddWarehouseCommand("", 3)
	s.Require().NoError(err)
	registerDriver, err := commands.NewRegisterDriverCommand("", driver.Bike)
	s.Require().NoError(err)
	createPackage, err := commands.NewCreatePackageCommand(0, "", "", parcel.InWarehouse, parcel.Standard, "n/a")
	s.Require().NoError(err)

	// When
	whID, err := s.root.CreateAddWarehouseCommandHandler().Handle(s.ctx, addWarehouse)
	s.Require().NoError(err)
	driverID, err := s.root.CreateRegisterDriverCommandHandler().Handle(s.ctx, registerDriver)
	s.Require().NoError(err)
	pkgID, err := s.root.CreateCreatePackageCommandHandler().Handle(s.ctx, createPackage)
	s.Require().NoError(err)

	// Then
	wh, err := s.root.CreateGetWarehouseQueryHandler().Handle(s.ctx, queries.NewGetWarehouseQuery(whID))
	s.Require().NoError(err)
	s.Empty(wh.Location)

	d, err := s.root.CreateGetDriverQueryHandler().Handle(s.ctx, queries.NewGetDriverQuery(driverID))
	s.Require().NoError(err)
	s.Empty(d.Name)
	s.True(d.IsAvailable)

	p, err := s.root.CreateGetPackageQueryHandler().Handle(s.ctx, queries.NewGetPackageQuery(pkgID))
	s.Require().NoError(err)
	s.Zero(p.Weight)
	s.Equal("n/a", p.CustomerPhone)
}

func (s *RegistryScenarioTestSuite) TestPrioritizeIsIdempotent() {
	id := s.createPackage(parcel.Standard)
	handler := s.root.CreatePrioritizePackageCommandHandler()

	s.Require().NoError(handler.Handle(s.ctx, commands.NewPrioritizePackageCommand(id)))
	s.Require().NoError(handler.Handle(s.ctx, commands.NewPrioritizePackageCommand(id)))

	p, err := s.root.CreateGetPackageQueryHandler().Handle(s.ctx, queries.NewGetPackageQuery(id))
	s.Require().NoError(err)
	s.Equal(parcel.Express, p.Priority)
}

func (s *RegistryScenarioTestSuite) TestRerouteMovesRouteDestination() {
	// Given
	pkgID := s.createPackage(parcel.Standard)
	routeID := s.createRoute(12.4)
	s.assignToRoute(pkgID, routeID)

	// When
	cmd := commands.NewReroutePackageCommand(pkgID, "Marseille")
	s.Require().NoError(s.root.CreateReroutePackageCommandHandler().Handle(s.ctx, cmd))

	// Then
	r, err := s.root.CreateGetRouteQueryHandler().Handle(s.ctx, queries.NewGetRouteQuery(routeID))
	s.Require().NoError(err)
	s.Equal("Marseille", r.Destination)
	s.InDelta(12.4, r.DistanceKm, 0)
	s.Equal(12, r.EstimatedDuration)
}

func (s *RegistryScenarioTestSuite) TestRouteLifecycle() {
	// Given
	pkgID := s.createPackage(parcel.Standard)
	routeID := s.createRoute(30)
	driverID := s.registerDriver()
	s.assignToRoute(pkgID, routeID)

	// When
	s.Require().NoError(s.root.CreateAssignDriverToRouteCommandHandler().Handle(s.ctx,
		commands.NewAssignDriverToRouteCommand(routeID, driverID)))
	s.Require().NoError(s.root.CreateStartRouteCommandHandler().Handle(s.ctx, commands.NewStartRouteCommand(routeID)))

	busy, err := s.root.CreateGetDriverQueryHandler().Handle(s.ctx, queries.NewGetDriverQuery(driverID))
	s.Require().NoError(err)

	s.Require().NoError(s.root.CreateCompleteRouteCommandHandler().Handle(s.ctx, commands.NewCompleteRouteCommand(routeID)))

	// Then
	s.False(busy.IsAvailable)
	s.Require().NotNil(busy.CurrentRoute)
	s.Equal(routeID, *busy.CurrentRoute)

	d, err := s.root.CreateGetDriverQueryHandler().Handle(s.ctx, queries.NewGetDriverQuery(driverID))
	s.Require().NoError(err)
	s.True(d.IsAvailable)
	s.Nil(d.CurrentRoute)
	s.Equal([]kernel.ID{routeID}, d.CompletedRoutes)

	r, err := s.root.CreateGetRouteQueryHandler().Handle(s.ctx, queries.NewGetRouteQuery(routeID))
	s.Require().NoError(err)
	s.Equal(route.Completed, r.State)

	p, err := s.root.CreateGetPackageQueryHandler().Handle(s.ctx, queries.NewGetPackageQuery(pkgID))
	s.Require().NoError(err)
	s.Equal(parcel.Delivered, p.Status)

	err = s.root.CreateCompleteRouteCommandHandler().Handle(s.ctx, commands.NewCompleteRouteCommand(routeID))
	s.Require().ErrorIs(err, errs.ErrInvalidState)
}

func (s *RegistryScenarioTestSuite) TestExpressIsEstimatedFasterThanStandard() {
	routeID := s.createRoute(43)
	standard := s.createPackage(parcel.Standard)
	express := s.createPackage(parcel.Express)
	s.assignToRoute(standard, routeID)
	s.assignToRoute(express, routeID)
	handler := s.root.CreateEstimateDeliveryTimeQueryHandler()

	standardSeconds, err := handler.Handle(s.ctx, queries.NewEstimateDeliveryTimeQuery(standard))
	s.Require().NoError(err)
	expressSeconds, err := handler.Handle(s.ctx, queries.NewEstimateDeliveryTimeQuery(express))
	s.Require().NoError(err)

	s.Equal(int64(2580), standardSeconds)
	s.Equal(int64(1806), expressSeconds)
}

func (s *RegistryScenarioTestSuite) TestUnknownIDs() {
	const unknown kernel.ID = 9999

	s.ErrorIs(s.root.CreatePrioritizePackageCommandHandler().Handle(s.ctx,
		commands.NewPrioritizePackageCommand(unknown)), errs.ErrObjectNotFound)
	s.ErrorIs(s.root.CreateStartRouteCommandHandler().Handle(s.ctx,
		commands.NewStartRouteCommand(unknown)), errs.ErrObjectNotFound)

	_, err := s.root.CreateEstimateDeliveryTimeQueryHandler().Handle(s.ctx, queries.NewEstimateDeliveryTimeQuery(unknown))
	s.ErrorIs(err, errs.ErrObjectNotFound)

	p, err := s.root.CreateGetPackageQueryHandler().Handle(s.ctx, queries.NewGetPackageQuery(unknown))
	s.Require().NoError(err)
	s.Nil(p)
}

func (s *RegistryScenarioTestSuite) TestCreateHTTPServerAndJobManager() {
	s.NotNil(s.root.CreateHTTPServer())
	s.NotNil(s.root.CreateJobManager())
}

func TestRegistryScenarioSuite(t *testing.T) {
	suite.Run(t, new(RegistryScenarioTestSuite))
}

func TestOpenBackend_UnknownBackend(t *testing.T) {
	_, err := cmd.OpenBackend(cmd.Config{Backend: "sqlite"}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestRequireSharedBackend(t *testing.T) {
	err := cmd.RequireSharedBackend(cmd.Config{Backend: cmd.BackendMemory})
	require.ErrorIs(t, err, cmd.ErrBackendNotShared)
	assert.Contains(t, err.Error(), "BACKEND=postgres")

	assert.NoError(t, cmd.RequireSharedBackend(cmd.Config{Backend: cmd.BackendPostgres}))
}
