package models

// Menu categories recognized by the storefront. CategoryAll is the filter
// wildcard, not a category an item can carry.
const (
	CategoryAll    = "All"
	CategoryPizza  = "Pizza"
	CategoryBurger = "Burgers"
	CategoryRolls  = "Rolls"
	CategoryDrinks = "Cool Drinks"
)

// CatalogItem is a sellable menu entry. Prices are whole rupees. Items are
// immutable once the catalog is loaded.
type CatalogItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// CartLine is a quantity-bearing snapshot of a catalog item. Name, price and
// image are copied at add time, so later catalog changes never reach lines
// already in the cart. Qty is always >= 1; a line that would drop to zero is
// removed instead.
type CartLine struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
	Qty   int    `json:"qty"`
}

// Totals is derived from a cart snapshot and never stored.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Taxes    int `json:"taxes"`
	Delivery int `json:"delivery"`
	Total    int `json:"total"`
}

// Payment methods accepted at checkout.
const (
	PaymentOnline = "ONLINE"
	PaymentCOD    = "COD"
)

// Checkout workflow states.
type CheckoutState string

const (
	StateEditing    CheckoutState = "EDITING"
	StateSubmitting CheckoutState = "SUBMITTING"
	StateConfirmed  CheckoutState = "CONFIRMED"
)

// OrderConfirmation is the terminal record of a placed order, the only data
// retained after the workflow completes.
type OrderConfirmation struct {
	OrderID int `json:"order_id"`
	Total   int `json:"total"`
}

// Event types emitted for the presentation layer.
const (
	EventItemAdded      = "item_added"
	EventOrderConfirmed = "order_confirmed"
)

// Event is a notification about a cart or order change. ItemID/ItemName are
// set for item_added, OrderID/Total for order_confirmed.
type Event struct {
	Type     string `json:"type"`
	ItemID   int    `json:"item_id,omitempty"`
	ItemName string `json:"item_name,omitempty"`
	Qty      int    `json:"qty,omitempty"`
	OrderID  int    `json:"order_id,omitempty"`
	Total    int    `json:"total,omitempty"`
}
