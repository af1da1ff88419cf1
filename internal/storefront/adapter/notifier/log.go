package notifier

import (
	"context"

	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/logger"
)

// Log writes events to the structured log. Used when no message broker is
// configured.
type Log struct {
	mylog logger.Logger
}

func NewLog(mylog logger.Logger) *Log {
	return &Log{mylog: mylog.Action("storefront_event")}
}

func (n *Log) Notify(_ context.Context, event models.Event) error {
	switch event.Type {
	case models.EventItemAdded:
		n.mylog.Info("Item added to cart", "item_id", event.ItemID, "item_name", event.ItemName, "qty", event.Qty)
	case models.EventOrderConfirmed:
		n.mylog.Info("Order confirmed", "order_id", event.OrderID, "total", event.Total)
	default:
		n.mylog.Debug("Storefront event", "type", event.Type)
	}
	return nil
}

func (n *Log) Close() error { return nil }
