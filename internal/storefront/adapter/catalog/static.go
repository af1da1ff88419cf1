package catalog

import (
	"context"
	"time"

	"aurora-grand/internal/storefront/domain/models"
)

// Static serves the embedded Aurora Grand menu. FetchDelay imitates the
// upstream catalog fetch; zero means load immediately.
type Static struct {
	FetchDelay time.Duration
}

func NewStatic(fetchDelay time.Duration) *Static {
	return &Static{FetchDelay: fetchDelay}
}

func (s *Static) Load(ctx context.Context) ([]models.CatalogItem, error) {
	if s.FetchDelay > 0 {
		select {
		case <-time.After(s.FetchDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	items := make([]models.CatalogItem, len(menu))
	copy(items, menu)
	return items, nil
}

var menu = []models.CatalogItem{
	{
		ID:          1,
		Name:        "Margherita Pizza",
		Category:    models.CategoryPizza,
		Price:       250,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Pizza",
		Description: "Classic delight with 100% real mozzarella cheese.",
	},
	{
		ID:          2,
		Name:        "Chicken Zinger Burger",
		Category:    models.CategoryBurger,
		Price:       180,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Burger",
		Description: "Crispy chicken patty with a spicy sauce.",
	},
	{
		ID:          3,
		Name:        "Paneer Tikka Roll",
		Category:    models.CategoryRolls,
		Price:       160,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Roll",
		Description: "Smoky paneer wrapped in soft rumali roti.",
	},
	{
		ID:          4,
		Name:        "Veggie Supreme Pizza",
		Category:    models.CategoryPizza,
		Price:       320,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Pizza",
		Description: "Loaded with fresh veggies and signature sauce.",
	},
	{
		ID:          5,
		Name:        "Double Cheese Burger",
		Category:    models.CategoryBurger,
		Price:       210,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Burger",
		Description: "Two patties with melted cheese and house sauce.",
	},
	{
		ID:          6,
		Name:        "Cold Coffee",
		Category:    models.CategoryDrinks,
		Price:       120,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Drink",
		Description: "Chilled, creamy, perfectly sweetened.",
	},
	{
		ID:          7,
		Name:        "Pepsi (500ml)",
		Category:    models.CategoryDrinks,
		Price:       60,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Drink",
		Description: "Classic fizz to pair with your meal.",
	},
	{
		ID:          8,
		Name:        "Chicken Kathi Roll",
		Category:    models.CategoryRolls,
		Price:       190,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Roll",
		Description: "Juicy chicken, onions, and tangy chutney.",
	},
	{
		ID:          9,
		Name:        "Pepperoni Pizza",
		Category:    models.CategoryPizza,
		Price:       350,
		Image:       "https://placehold.co/600x400/222/FFD700?text=Pizza",
		Description: "Pepperoni, mozzarella, and rich tomato sauce.",
	},
}
