package services

import (
	"context"
	"sync"

	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/logger"
)

// CartService owns the active order's lines. Lines are kept in insertion
// order with at most one line per catalog id, and every mutation is applied
// under the lock so no two mutations interleave. Observers only ever get
// copies.
type CartService struct {
	mu       sync.Mutex
	lines    []models.CartLine
	notifier core.INotifier
	mylog    logger.Logger
}

func NewCartService(notifier core.INotifier, mylog logger.Logger) *CartService {
	return &CartService{
		notifier: notifier,
		mylog:    mylog,
	}
}

// Add puts one unit of the catalog item into the cart. If a line for the id
// already exists its quantity grows by one; otherwise a new line is appended
// with the item's name, price and image snapshotted at this instant. An
// item_added event is emitted so the presentation layer can reveal the cart.
func (cs *CartService) Add(ctx context.Context, item models.CatalogItem) {
	cs.mu.Lock()
	qty := 1
	if i := cs.indexOf(item.ID); i >= 0 {
		cs.lines[i].Qty++
		qty = cs.lines[i].Qty
	} else {
		cs.lines = append(cs.lines, models.CartLine{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Image: item.Image,
			Qty:   1,
		})
	}
	cs.mu.Unlock()

	cs.emit(ctx, models.Event{
		Type:     models.EventItemAdded,
		ItemID:   item.ID,
		ItemName: item.Name,
		Qty:      qty,
	})
}

// Increment raises the quantity of the line with the given id by one. Absent
// ids are a no-op, not an error.
func (cs *CartService) Increment(id int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if i := cs.indexOf(id); i >= 0 {
		cs.lines[i].Qty++
	}
}

// Decrement lowers the quantity by one; a line reaching zero is removed
// rather than retained. Absent ids are a no-op.
func (cs *CartService) Decrement(id int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	i := cs.indexOf(id)
	if i < 0 {
		return
	}
	cs.lines[i].Qty--
	if cs.lines[i].Qty <= 0 {
		cs.lines = append(cs.lines[:i], cs.lines[i+1:]...)
	}
}

// Remove drops the line with the given id regardless of quantity.
func (cs *CartService) Remove(id int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if i := cs.indexOf(id); i >= 0 {
		cs.lines = append(cs.lines[:i], cs.lines[i+1:]...)
	}
}

// Clear empties the cart. Invoked exactly once when an order is confirmed.
func (cs *CartService) Clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.lines = nil
}

// Snapshot returns a copy of the lines in insertion order.
func (cs *CartService) Snapshot() []models.CartLine {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	out := make([]models.CartLine, len(cs.lines))
	copy(out, cs.lines)
	return out
}

// Count reports the total quantity across all lines.
func (cs *CartService) Count() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	count := 0
	for _, line := range cs.lines {
		count += line.Qty
	}
	return count
}

// indexOf must be called with the lock held.
func (cs *CartService) indexOf(id int) int {
	for i, line := range cs.lines {
		if line.ID == id {
			return i
		}
	}
	return -1
}

func (cs *CartService) emit(ctx context.Context, event models.Event) {
	if cs.notifier == nil {
		return
	}
	if err := cs.notifier.Notify(ctx, event); err != nil {
		cs.mylog.Action("notify_failed").Error("Failed to publish cart event", err)
	}
}
