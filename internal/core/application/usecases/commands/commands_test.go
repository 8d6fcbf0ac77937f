package commands_test

import (
	"math"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddWarehouseCommand(t *testing.T) {
	cmd, err := commands.NewAddWarehouseCommand("North Depot", 0)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "North Depot", cmd.Location().Name())
	assert.Equal(t, 0, cmd.Capacity())

	cmd, err = commands.NewAddWarehouseCommand("", 1)
	require.NoError(t, err)
	assert.Empty(t, cmd.Location().Name())

	_, err = commands.NewAddWarehouseCommand("Depot", -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRegisterDriverCommand(t *testing.T) {
	cmd, err := commands.NewRegisterDriverCommand("Ann", driver.Bike)

	require.NoError(t, err)
	assert.Equal(t, "Ann", cmd.Name())
	assert.Equal(t, driver.Bike, cmd.VehicleType())

	cmd, err = commands.NewRegisterDriverCommand("", driver.Van)
	require.NoError(t, err)
	assert.Empty(t, cmd.Name())

	_, err = commands.NewRegisterDriverCommand("Ann", driver.UnknownVehicle)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateRouteCommand(t *testing.T) {
	cmd, err := commands.NewCreateRouteCommand("Port", "Airport", 42.8)

	require.NoError(t, err)
	assert.Equal(t, "Port", cmd.Origin().Name())
	assert.Equal(t, "Airport", cmd.Destination().Name())
	assert.InDelta(t, 42.8, cmd.DistanceKm(), 1e-9)

	for _, d := range []float64{-0.1, math.NaN(), math.Inf(-1)} {
		_, err = commands.NewCreateRouteCommand("Port", "Airport", d)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewCreatePackageCommand(t *testing.T) {
	t.Run("keeps input", func(t *testing.T) {
		cmd, err := commands.NewCreatePackageCommand(2.5, "Port", "Airport",
			parcel.InTransit, parcel.Express, "+15550100")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.InDelta(t, 2.5, cmd.Weight(), 1e-9)
		assert.Equal(t, parcel.InTransit, cmd.Status())
		assert.Equal(t, parcel.Express, cmd.Priority())
		assert.Equal(t, "+15550100", cmd.CustomerPhone())
	})

	t.Run("accepts any weight, place and phone", func(t *testing.T) {
		cmd, err := commands.NewCreatePackageCommand(0, "", "Airport",
			parcel.InWarehouse, parcel.Standard, "n/a")

		require.NoError(t, err)
		assert.Zero(t, cmd.Weight())
		assert.Empty(t, cmd.Origin().Name())
		assert.Equal(t, "n/a", cmd.CustomerPhone())
	})

	t.Run("joins every enumeration error", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(1, "Port", "Airport",
			parcel.UnknownStatus, parcel.UnknownPriority, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewReroutePackageCommand(t *testing.T) {
	cmd := commands.NewReroutePackageCommand(3, "Harbour")

	require.NoError(t, cmd.Validate())
	assert.Equal(t, kernel.ID(3), cmd.PackageID())
	assert.Equal(t, "Harbour", cmd.Destination().Name())
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	testCases := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"AddWarehouse", commands.AddWarehouseCommand{}.Validate, commands.ErrAddWarehouseCommandIsNotConstructed},
		{"AssignPackageToWarehouse", commands.AssignPackageToWarehouseCommand{}.Validate,
			commands.ErrAssignPackageToWarehouseCommandIsNotConstructed},
		{"ReleasePackageFromWarehouse", commands.ReleasePackageFromWarehouseCommand{}.Validate,
			commands.ErrReleasePackageFromWarehouseCommandIsNotConstructed},
		{"RegisterDriver", commands.RegisterDriverCommand{}.Validate, commands.ErrRegisterDriverCommandIsNotConstructed},
		{"CreateRoute", commands.CreateRouteCommand{}.Validate, commands.ErrCreateRouteCommandIsNotConstructed},
		{"AssignDriverToRoute", commands.AssignDriverToRouteCommand{}.Validate,
			commands.ErrAssignDriverToRouteCommandIsNotConstructed},
		{"StartRoute", commands.StartRouteCommand{}.Validate, commands.ErrStartRouteCommandIsNotConstructed},
		{"CompleteRoute", commands.CompleteRouteCommand{}.Validate, commands.ErrCompleteRouteCommandIsNotConstructed},
		{"CreatePackage", commands.CreatePackageCommand{}.Validate, commands.ErrCreatePackageCommandIsNotConstructed},
		{"PrioritizePackage", commands.PrioritizePackageCommand{}.Validate,
			commands.ErrPrioritizePackageCommandIsNotConstructed},
		{"ReroutePackage", commands.ReroutePackageCommand{}.Validate, commands.ErrReroutePackageCommandIsNotConstructed},
		{"AssignPackageToRoute", commands.AssignPackageToRouteCommand{}.Validate,
			commands.ErrAssignPackageToRouteCommandIsNotConstructed},
		{"SendDeliveryNotification", commands.SendDeliveryNotificationCommand{}.Validate,
			commands.ErrSendDeliveryNotificationCommandIsNotConstructed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.validate(), tc.expected)
		})
	}
}

func TestIDCommands_KeepIDs(t *testing.T) {
	assert.Equal(t, kernel.ID(4), commands.NewStartRouteCommand(4).RouteID())
	assert.Equal(t, kernel.ID(4), commands.NewCompleteRouteCommand(4).RouteID())
	assert.Equal(t, kernel.ID(4), commands.NewPrioritizePackageCommand(4).PackageID())
	assert.Equal(t, kernel.ID(4), commands.NewSendDeliveryNotificationCommand(4).PackageID())

	assign := commands.NewAssignDriverToRouteCommand(1, 2)
	require.NoError(t, assign.Validate())
	assert.Equal(t, kernel.ID(1), assign.RouteID())
	assert.Equal(t, kernel.ID(2), assign.DriverID())
}
