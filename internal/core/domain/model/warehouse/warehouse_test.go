package warehouse_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	t.Run("creates_empty_warehouse", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(0, kernel.NewPlace("Depot"), 2)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, "Depot", w.Location().Name())
		assert.Equal(t, 2, w.Capacity())
		assert.Empty(t, w.StoredPackages())
		assert.Equal(t, 2, w.FreeSlots())
	})

	t.Run("rejects_negative_capacity", func(t *testing.T) {
		_, err := warehouse.NewWarehouse(0, kernel.NewPlace("Depot"), -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_zero_location", func(t *testing.T) {
		_, err := warehouse.NewWarehouse(0, kernel.Place{}, 1)
		require.ErrorIs(t, err, kernel.ErrPlaceIsNotConstructed)
	})
}

func TestWarehouse_Store_EnforcesCapacity(t *testing.T) {
	// Given
	w, err := warehouse.NewWarehouse(1, kernel.NewPlace("Depot"), 2)
	require.NoError(t, err)

	// When
	require.NoError(t, w.Store(10))
	require.NoError(t, w.Store(11))
	err = w.Store(12)

	// Then
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	assert.Equal(t, []kernel.ID{10, 11}, w.StoredPackages())
	assert.Equal(t, 0, w.FreeSlots())
}

func TestWarehouse_Store_ZeroCapacity(t *testing.T) {
	w, err := warehouse.NewWarehouse(1, kernel.NewPlace("Depot"), 0)
	require.NoError(t, err)

	require.ErrorIs(t, w.Store(10), errs.ErrCapacityExceeded)
}

func TestWarehouse_Store_RepeatedPackageTakesAnotherSlot(t *testing.T) {
	// Given
	w, err := warehouse.NewWarehouse(1, kernel.NewPlace("Depot"), 2)
	require.NoError(t, err)
	require.NoError(t, w.Store(10))

	// When
	err = w.Store(10)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []kernel.ID{10, 10}, w.StoredPackages())
	assert.Equal(t, 0, w.FreeSlots())
	require.ErrorIs(t, w.Store(10), errs.ErrCapacityExceeded)
}

func TestWarehouse_Release(t *testing.T) {
	w, err := warehouse.NewWarehouse(1, kernel.NewPlace("Depot"), 2)
	require.NoError(t, err)
	require.NoError(t, w.Store(10))
	require.NoError(t, w.Store(11))

	require.NoError(t, w.Release(10))

	assert.Equal(t, []kernel.ID{11}, w.StoredPackages())
	assert.NotContains(t, w.StoredPackages(), kernel.ID(10))
	require.NoError(t, w.Store(12), "released slot is reusable")
	require.ErrorIs(t, w.Release(10), errs.ErrInvalidState)
}

func TestWarehouse_StoredPackagesIsACopy(t *testing.T) {
	w, err := warehouse.NewWarehouse(1, kernel.NewPlace("Depot"), 2)
	require.NoError(t, err)
	require.NoError(t, w.Store(10))

	stored := w.StoredPackages()
	stored[0] = 99

	assert.Equal(t, []kernel.ID{10}, w.StoredPackages())
}

func TestRestoreWarehouse_AcceptsOverfullList(t *testing.T) {
	w, err := warehouse.RestoreWarehouse(1, kernel.NewPlace("Depot"), 1, []kernel.ID{1, 2})

	require.NoError(t, err)
	assert.Len(t, w.StoredPackages(), 2)
	assert.Equal(t, 0, w.FreeSlots())
	require.ErrorIs(t, w.Store(3), errs.ErrCapacityExceeded)
}
