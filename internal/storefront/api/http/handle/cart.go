package handle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"aurora-grand/internal/storefront/app/services"
	"aurora-grand/internal/storefront/domain/dto"
	"aurora-grand/internal/xpkg/logger"
)

type CartHandler struct {
	cart    *services.CartService
	menu    *services.MenuService
	pricing services.Pricing
	mylog   logger.Logger
}

func NewCartHandler(cart *services.CartService, menu *services.MenuService, pricing services.Pricing, mylog logger.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		menu:    menu,
		pricing: pricing,
		mylog:   mylog,
	}
}

// Get returns the cart snapshot with freshly computed totals.
func (ch *CartHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, ch.cartResponse())
	}
}

// AddItem puts one unit of a catalog item into the cart.
func (ch *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.AddItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ch.mylog.Action("parse_failed").Error("Failed to parse add-item request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		item, err := ch.menu.Item(req.ID)
		if err != nil {
			jsonError(w, http.StatusNotFound, err)
			return
		}

		ch.cart.Add(r.Context(), item)
		ch.mylog.Action("item_added").Debug("Item added to cart", "item_id", item.ID, "item_name", item.Name)
		jsonResponse(w, http.StatusOK, ch.cartResponse())
	}
}

// Increment raises a line's quantity; absent lines are a no-op.
func (ch *CartHandler) Increment() http.HandlerFunc {
	return ch.mutation("incremented", ch.cart.Increment)
}

// Decrement lowers a line's quantity, removing the line at zero.
func (ch *CartHandler) Decrement() http.HandlerFunc {
	return ch.mutation("decremented", ch.cart.Decrement)
}

// Remove drops a line unconditionally.
func (ch *CartHandler) Remove() http.HandlerFunc {
	return ch.mutation("removed", ch.cart.Remove)
}

func (ch *CartHandler) mutation(action string, op func(id int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("item id must be an integer"))
			return
		}

		op(id)
		ch.mylog.Action("cart_" + action).Debug("Cart mutated", "item_id", id)
		jsonResponse(w, http.StatusOK, ch.cartResponse())
	}
}

func (ch *CartHandler) cartResponse() dto.CartResponse {
	snapshot := ch.cart.Snapshot()
	totals := ch.pricing.ComputeTotals(snapshot)

	items := make([]dto.CartItem, 0, len(snapshot))
	count := 0
	for _, line := range snapshot {
		items = append(items, dto.CartItem{
			ID:    line.ID,
			Name:  line.Name,
			Price: line.Price,
			Image: line.Image,
			Qty:   line.Qty,
		})
		count += line.Qty
	}

	return dto.CartResponse{
		Items: items,
		Totals: dto.TotalsView{
			Subtotal: totals.Subtotal,
			Taxes:    totals.Taxes,
			Delivery: totals.Delivery,
			Total:    totals.Total,
		},
		Count: count,
	}
}
