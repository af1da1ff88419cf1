package services

import (
	"math"

	"aurora-grand/internal/storefront/domain/models"
)

// Pricing derives totals from a cart snapshot. Rates default to the
// storefront's reference values: 5% tax, flat 40 delivery waived on an empty
// cart or a subtotal of 1000 and above.
type Pricing struct {
	TaxRate               float64
	DeliveryFee           int
	FreeDeliveryThreshold int
}

func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0.05,
		DeliveryFee:           40,
		FreeDeliveryThreshold: 1000,
	}
}

// ComputeTotals is pure; it tolerates an empty snapshot (all fields zero)
// and must be re-invoked whenever the cart changes. Taxes round half away
// from zero.
func (p Pricing) ComputeTotals(lines []models.CartLine) models.Totals {
	subtotal := 0
	for _, line := range lines {
		subtotal += line.Price * line.Qty
	}

	taxes := int(math.Round(float64(subtotal) * p.TaxRate))

	// Nothing to deliver on an empty cart; large orders ship free.
	delivery := p.DeliveryFee
	if subtotal == 0 || subtotal >= p.FreeDeliveryThreshold {
		delivery = 0
	}

	return models.Totals{
		Subtotal: subtotal,
		Taxes:    taxes,
		Delivery: delivery,
		Total:    subtotal + taxes + delivery,
	}
}
