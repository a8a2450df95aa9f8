package model_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
)

const testDate = "2026-10-01"

func TestInventoryLazyMaterialization(t *testing.T) {
	inv := model.NewInventory(100, 3)

	t.Run("first reference fills with capacity", func(t *testing.T) {
		assert.Equal(t, 100, inv.Available(testDate, 0, 3))
	})

	t.Run("release before any reference is a no-op", func(t *testing.T) {
		assert.False(t, inv.Release("2026-12-31", 0, 3, 1))
		// The no-op must not have materialized the date at a wrong level.
		assert.Equal(t, 100, inv.Available("2026-12-31", 0, 3))
	})
}

func TestInventoryReserve(t *testing.T) {
	t.Run("decrements every segment in range", func(t *testing.T) {
		inv := model.NewInventory(100, 3)
		require.True(t, inv.Reserve(testDate, 0, 3, 2))
		assert.Equal(t, 98, inv.Available(testDate, 0, 3))
	})

	t.Run("failure leaves all segments untouched", func(t *testing.T) {
		inv := model.NewInventory(5, 3)
		require.True(t, inv.Reserve(testDate, 1, 2, 5)) // exhaust the middle segment
		require.False(t, inv.Reserve(testDate, 0, 3, 1))
		assert.Equal(t, 5, inv.Available(testDate, 0, 1))
		assert.Equal(t, 0, inv.Available(testDate, 1, 2))
		assert.Equal(t, 5, inv.Available(testDate, 2, 3))
	})

	t.Run("ranges on the same date are independent outside overlap", func(t *testing.T) {
		inv := model.NewInventory(10, 3)
		require.True(t, inv.Reserve(testDate, 0, 1, 10))
		assert.True(t, inv.Reserve(testDate, 1, 3, 10))
	})
}

func TestInventoryRelease(t *testing.T) {
	t.Run("credits back a matching reservation", func(t *testing.T) {
		inv := model.NewInventory(100, 3)
		require.True(t, inv.Reserve(testDate, 0, 3, 1))
		require.True(t, inv.Release(testDate, 0, 3, 1))
		assert.Equal(t, 100, inv.Available(testDate, 0, 3))
	})

	t.Run("clamps at capacity on unmatched release", func(t *testing.T) {
		inv := model.NewInventory(100, 3)
		require.True(t, inv.Reserve(testDate, 0, 1, 1))
		require.True(t, inv.Release(testDate, 0, 3, 50))
		assert.Equal(t, 100, inv.Available(testDate, 0, 3))
	})
}

func TestInventoryNoDoubleSell(t *testing.T) {
	// Availability 1 on the segment; many concurrent reservations for one
	// seat each must resolve to exactly one success.
	inv := model.NewInventory(1, 3)

	const callers = 32
	var wg sync.WaitGroup
	results := make(chan bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- inv.Reserve(testDate, 0, 3, 1)
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 0, inv.Available(testDate, 0, 3))
}

func TestInventoryDatesAreIndependent(t *testing.T) {
	inv := model.NewInventory(1, 2)

	const days = 8
	var wg sync.WaitGroup
	oks := make(chan bool, days)
	for i := 0; i < days; i++ {
		date := "2026-10-0" + string(rune('1'+i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			oks <- inv.Reserve(date, 0, 2, 1)
		}()
	}
	wg.Wait()
	close(oks)

	for ok := range oks {
		assert.True(t, ok, "each date has its own seat vector")
	}
}
