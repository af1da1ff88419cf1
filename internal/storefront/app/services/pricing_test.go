package services

import (
	"testing"

	"aurora-grand/internal/storefront/domain/models"

	"github.com/stretchr/testify/assert"
)

func lines(priceQty ...int) []models.CartLine {
	var out []models.CartLine
	for i := 0; i+1 < len(priceQty); i += 2 {
		out = append(out, models.CartLine{
			ID:    i/2 + 1,
			Price: priceQty[i],
			Qty:   priceQty[i+1],
		})
	}
	return out
}

func TestComputeTotals(t *testing.T) {
	pricing := DefaultPricing()

	t.Run("empty cart yields all zeros", func(t *testing.T) {
		totals := pricing.ComputeTotals(nil)
		assert.Equal(t, models.Totals{}, totals)
	})

	t.Run("single line with rounding up on the half", func(t *testing.T) {
		// 250 * 0.05 = 12.5, rounds away from zero to 13
		totals := pricing.ComputeTotals(lines(250, 1))
		assert.Equal(t, 250, totals.Subtotal)
		assert.Equal(t, 13, totals.Taxes)
		assert.Equal(t, 40, totals.Delivery)
		assert.Equal(t, 303, totals.Total)
	})

	t.Run("boundary value rounding", func(t *testing.T) {
		// 251 * 0.05 = 12.55 -> 13
		totals := pricing.ComputeTotals(lines(251, 1))
		assert.Equal(t, 13, totals.Taxes)

		// 240 * 0.05 = 12 exactly
		totals = pricing.ComputeTotals(lines(240, 1))
		assert.Equal(t, 12, totals.Taxes)
	})

	t.Run("delivery fee applies mid-range", func(t *testing.T) {
		totals := pricing.ComputeTotals(lines(500, 1))
		assert.Equal(t, 40, totals.Delivery)
	})

	t.Run("delivery charged just below the threshold", func(t *testing.T) {
		totals := pricing.ComputeTotals(lines(999, 1))
		assert.Equal(t, 999, totals.Subtotal)
		assert.Equal(t, 40, totals.Delivery)
	})

	t.Run("delivery waived at the threshold", func(t *testing.T) {
		totals := pricing.ComputeTotals(lines(250, 4))
		assert.Equal(t, 1000, totals.Subtotal)
		assert.Equal(t, 0, totals.Delivery)
		assert.Equal(t, 1050, totals.Total)
	})

	t.Run("delivery waived above the threshold", func(t *testing.T) {
		totals := pricing.ComputeTotals(lines(350, 2, 320, 1))
		assert.Equal(t, 1020, totals.Subtotal)
		assert.Equal(t, 0, totals.Delivery)
	})

	t.Run("multiple lines sum price times qty", func(t *testing.T) {
		// 250*2 + 60*3 = 680; taxes round(34) = 34; delivery 40
		totals := pricing.ComputeTotals(lines(250, 2, 60, 3))
		assert.Equal(t, 680, totals.Subtotal)
		assert.Equal(t, 34, totals.Taxes)
		assert.Equal(t, 40, totals.Delivery)
		assert.Equal(t, 754, totals.Total)
	})
}
