package db

import (
	"context"
	"fmt"

	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/db"
)

// CatalogRepo reads the menu from the menu_items table. The storefront
// treats it exactly like the static source: loaded once, never written.
type CatalogRepo struct {
	db *db.DB
}

func NewCatalogRepo(database *db.DB) *CatalogRepo {
	return &CatalogRepo{db: database}
}

func (cr *CatalogRepo) Load(ctx context.Context) ([]models.CatalogItem, error) {
	rows, err := cr.db.Pool.Query(ctx, `
		SELECT id, name, category, price, image, description
		FROM menu_items
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Image, &item.Description); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read menu items: %w", err)
	}

	return items, nil
}
