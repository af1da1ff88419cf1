package services

import (
	"context"
	"fmt"

	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/logger"
)

// MenuService loads the catalog once and serves category-filtered views of
// it. The catalog is read-only for the life of the process.
type MenuService struct {
	items []models.CatalogItem
	byID  map[int]models.CatalogItem
	mylog logger.Logger
}

func NewMenuService(ctx context.Context, source core.ICatalogSource, mylog logger.Logger) (*MenuService, error) {
	items, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	byID := make(map[int]models.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	mylog.Action("catalog_loaded").Info("Catalog loaded", "items", len(items))
	return &MenuService{
		items: items,
		byID:  byID,
		mylog: mylog,
	}, nil
}

// Items returns the full catalog in load order.
func (ms *MenuService) Items() []models.CatalogItem {
	return ms.items
}

// Item looks up a catalog entry by id.
func (ms *MenuService) Item(id int) (models.CatalogItem, error) {
	item, ok := ms.byID[id]
	if !ok {
		return models.CatalogItem{}, core.ErrUnknownItem
	}
	return item, nil
}

// FilterByCategory selects the order-preserving subsequence matching the
// category. "All" is the identity filter; an unknown category yields an
// empty result, not an error.
func FilterByCategory(items []models.CatalogItem, selected string) []models.CatalogItem {
	if selected == models.CategoryAll || selected == "" {
		return items
	}

	filtered := []models.CatalogItem{}
	for _, item := range items {
		if item.Category == selected {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
