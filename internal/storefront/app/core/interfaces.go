package core

import (
	"context"

	"aurora-grand/internal/storefront/domain/dto"
	"aurora-grand/internal/storefront/domain/models"
)

// ICatalogSource supplies the read-only menu. Loaded once at startup; items
// are assumed validated with unique ids.
type ICatalogSource interface {
	Load(ctx context.Context) ([]models.CatalogItem, error)
}

// INotifier receives cart and order events for the presentation layer.
// Delivery is best effort; a notifier failure never fails the operation that
// produced the event.
type INotifier interface {
	Notify(ctx context.Context, event models.Event) error
	Close() error
}

// IPaymentGateway processes an order payload and resolves to an order id.
// The mock implementation resolves after a fixed delay; a real one may fail,
// in which case the checkout workflow returns to editing with the cart
// intact.
type IPaymentGateway interface {
	Process(ctx context.Context, payload dto.OrderPayload) (orderID int, err error)
}
