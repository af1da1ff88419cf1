package services

import (
	"context"
	"testing"

	"aurora-grand/internal/storefront/adapter/catalog"
	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByCategory(t *testing.T) {
	items := []models.CatalogItem{
		{ID: 1, Category: models.CategoryPizza},
		{ID: 2, Category: models.CategoryBurger},
		{ID: 3, Category: models.CategoryRolls},
		{ID: 4, Category: models.CategoryPizza},
		{ID: 5, Category: models.CategoryDrinks},
	}

	t.Run("All returns every item in original order", func(t *testing.T) {
		filtered := FilterByCategory(items, models.CategoryAll)
		assert.Equal(t, items, filtered)
	})

	t.Run("category returns the order-preserving subsequence", func(t *testing.T) {
		filtered := FilterByCategory(items, models.CategoryPizza)
		require.Len(t, filtered, 2)
		assert.Equal(t, 1, filtered[0].ID)
		assert.Equal(t, 4, filtered[1].ID)
	})

	t.Run("unknown category yields empty, not an error", func(t *testing.T) {
		filtered := FilterByCategory(items, "Sushi")
		assert.Empty(t, filtered)
	})
}

func TestMenuService(t *testing.T) {
	ctx := context.Background()
	menu, err := NewMenuService(ctx, catalog.NewStatic(0), logger.Discard())
	require.NoError(t, err)

	t.Run("loads the reference catalog", func(t *testing.T) {
		items := menu.Items()
		require.Len(t, items, 9)
		assert.Equal(t, "Margherita Pizza", items[0].Name)
		assert.Equal(t, 250, items[0].Price)
	})

	t.Run("looks up items by id", func(t *testing.T) {
		item, err := menu.Item(6)
		require.NoError(t, err)
		assert.Equal(t, "Cold Coffee", item.Name)
	})

	t.Run("unknown id is an error", func(t *testing.T) {
		_, err := menu.Item(42)
		assert.ErrorIs(t, err, core.ErrUnknownItem)
	})

	t.Run("catalog ids are unique", func(t *testing.T) {
		seen := map[int]bool{}
		for _, item := range menu.Items() {
			assert.False(t, seen[item.ID])
			seen[item.ID] = true
		}
	})
}
