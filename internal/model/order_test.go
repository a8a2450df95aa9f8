package model_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
)

func TestNewOrder(t *testing.T) {
	o := model.NewOrder("user1", "G101", "Beijing", "Shanghai", testDate, "08:00", 55300, 1)

	assert.Equal(t, model.OrderPaid, o.Status)
	assert.NotEmpty(t, o.ID)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestOrderStatusFinalized(t *testing.T) {
	assert.False(t, model.OrderPaid.Finalized())
	assert.True(t, model.OrderCancelled.Finalized())
	assert.True(t, model.OrderCompleted.Finalized())
}

func TestOrderIDsUniqueUnderConcurrency(t *testing.T) {
	const n = 200

	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := model.NewOrder("user1", "G101", "Beijing", "Jinan", testDate, "08:00", 15000, 1)
			ids <- o.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate order id %s", id)
		seen[id] = struct{}{}
	}
}
