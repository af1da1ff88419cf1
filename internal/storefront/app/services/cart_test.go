package services

import (
	"context"
	"testing"

	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id int, name string, price int) models.CatalogItem {
	return models.CatalogItem{
		ID:       id,
		Name:     name,
		Category: models.CategoryPizza,
		Price:    price,
		Image:    "https://example.com/item.png",
	}
}

// checkInvariants asserts the cart never holds a non-positive quantity or a
// duplicate id.
func checkInvariants(t *testing.T, lines []models.CartLine) {
	t.Helper()
	seen := map[int]bool{}
	for _, line := range lines {
		assert.Greater(t, line.Qty, 0, "line %d has non-positive qty", line.ID)
		assert.False(t, seen[line.ID], "duplicate line for id %d", line.ID)
		seen[line.ID] = true
	}
}

func TestCartAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("new item creates a line with qty 1", func(t *testing.T) {
		cart := NewCartService(nil, logger.Discard())
		cart.Add(ctx, testItem(1, "Margherita Pizza", 250))

		snapshot := cart.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, 1, snapshot[0].ID)
		assert.Equal(t, "Margherita Pizza", snapshot[0].Name)
		assert.Equal(t, 250, snapshot[0].Price)
		assert.Equal(t, 1, snapshot[0].Qty)
	})

	t.Run("adding twice equals add then increment", func(t *testing.T) {
		added := NewCartService(nil, logger.Discard())
		added.Add(ctx, testItem(1, "Margherita Pizza", 250))
		added.Add(ctx, testItem(1, "Margherita Pizza", 250))

		incremented := NewCartService(nil, logger.Discard())
		incremented.Add(ctx, testItem(1, "Margherita Pizza", 250))
		incremented.Increment(1)

		assert.Equal(t, added.Snapshot(), incremented.Snapshot())
		require.Len(t, added.Snapshot(), 1)
		assert.Equal(t, 2, added.Snapshot()[0].Qty)
	})

	t.Run("snapshot copies the item fields at add time", func(t *testing.T) {
		cart := NewCartService(nil, logger.Discard())
		item := testItem(3, "Paneer Tikka Roll", 160)
		cart.Add(ctx, item)

		// A later catalog price change must not reach the line.
		item.Price = 999
		assert.Equal(t, 160, cart.Snapshot()[0].Price)
	})

	t.Run("insertion order is preserved across quantity changes", func(t *testing.T) {
		cart := NewCartService(nil, logger.Discard())
		cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
		cart.Add(ctx, testItem(2, "Chicken Zinger Burger", 180))
		cart.Add(ctx, testItem(3, "Paneer Tikka Roll", 160))
		cart.Increment(3)
		cart.Increment(3)
		cart.Add(ctx, testItem(1, "Margherita Pizza", 250))

		snapshot := cart.Snapshot()
		require.Len(t, snapshot, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{snapshot[0].ID, snapshot[1].ID, snapshot[2].ID})
	})
}

func TestCartDecrement(t *testing.T) {
	ctx := context.Background()

	t.Run("qty 1 line is removed entirely", func(t *testing.T) {
		cart := NewCartService(nil, logger.Discard())
		cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
		cart.Decrement(1)

		assert.Empty(t, cart.Snapshot())
	})

	t.Run("qty above 1 just drops by one", func(t *testing.T) {
		cart := NewCartService(nil, logger.Discard())
		cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
		cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
		cart.Decrement(1)

		snapshot := cart.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, 1, snapshot[0].Qty)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		cart := NewCartService(nil, logger.Discard())
		cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
		cart.Decrement(42)

		require.Len(t, cart.Snapshot(), 1)
	})
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()

	cart := NewCartService(nil, logger.Discard())
	cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
	cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
	cart.Add(ctx, testItem(2, "Chicken Zinger Burger", 180))

	cart.Remove(1)
	snapshot := cart.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, 2, snapshot[0].ID)

	// removing an absent id is a no-op
	cart.Remove(1)
	assert.Len(t, cart.Snapshot(), 1)
}

func TestCartClearAndCount(t *testing.T) {
	ctx := context.Background()

	cart := NewCartService(nil, logger.Discard())
	cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
	cart.Add(ctx, testItem(2, "Chicken Zinger Burger", 180))
	cart.Increment(2)

	assert.Equal(t, 3, cart.Count())

	cart.Clear()
	assert.Empty(t, cart.Snapshot())
	assert.Equal(t, 0, cart.Count())
}

// TestCartInvariantsUnderOperationSequence drives a mixed sequence of
// mutations and checks the invariants after every step.
func TestCartInvariantsUnderOperationSequence(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(nil, logger.Discard())

	ops := []func(){
		func() { cart.Add(ctx, testItem(1, "Margherita Pizza", 250)) },
		func() { cart.Add(ctx, testItem(2, "Chicken Zinger Burger", 180)) },
		func() { cart.Decrement(1) },
		func() { cart.Decrement(1) }, // already gone, no-op
		func() { cart.Add(ctx, testItem(1, "Margherita Pizza", 250)) },
		func() { cart.Increment(2) },
		func() { cart.Remove(7) }, // never added
		func() { cart.Decrement(2) },
		func() { cart.Remove(2) },
		func() { cart.Increment(1) },
	}

	for _, op := range ops {
		op()
		checkInvariants(t, cart.Snapshot())
	}

	snapshot := cart.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, 1, snapshot[0].ID)
	assert.Equal(t, 2, snapshot[0].Qty)
}

func TestCartSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(nil, logger.Discard())
	cart.Add(ctx, testItem(1, "Margherita Pizza", 250))

	snapshot := cart.Snapshot()
	snapshot[0].Qty = 99

	assert.Equal(t, 1, cart.Snapshot()[0].Qty)
}

func TestCartAddEmitsEvent(t *testing.T) {
	ctx := context.Background()
	fn := &fakeNotifier{}
	cart := NewCartService(fn, logger.Discard())

	cart.Add(ctx, testItem(1, "Margherita Pizza", 250))
	cart.Add(ctx, testItem(1, "Margherita Pizza", 250))

	require.Len(t, fn.events, 2)
	assert.Equal(t, models.EventItemAdded, fn.events[0].Type)
	assert.Equal(t, "Margherita Pizza", fn.events[0].ItemName)
	assert.Equal(t, 1, fn.events[0].Qty)
	assert.Equal(t, 2, fn.events[1].Qty)

	// Increment and Remove are silent.
	cart.Increment(1)
	cart.Remove(1)
	assert.Len(t, fn.events, 2)
}
