package dto

// CheckoutRequest carries the customer-supplied fields for order submission.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// OrderPayload mirrors a standard order-creation request so a real backend
// can replace the mock gateway without reshaping the wire format.
type OrderPayload struct {
	PaymentMethod string     `json:"payment_method"`
	Billing       Billing    `json:"billing"`
	LineItems     []LineItem `json:"line_items"`
	MetaData      []Meta     `json:"meta_data"`
}

type Billing struct {
	FirstName string `json:"first_name"`
	Phone     string `json:"phone"`
	Address1  string `json:"address_1"`
}

type LineItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type Meta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CheckoutResponse is returned when an order is confirmed.
type CheckoutResponse struct {
	OrderID int `json:"order_id"`
	Total   int `json:"total"`
}

// CartResponse is the read-only view of the cart handed to the display layer.
type CartResponse struct {
	Items  []CartItem `json:"items"`
	Totals TotalsView `json:"totals"`
	Count  int        `json:"count"`
}

type CartItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
	Qty   int    `json:"qty"`
}

type TotalsView struct {
	Subtotal int `json:"subtotal"`
	Taxes    int `json:"taxes"`
	Delivery int `json:"delivery"`
	Total    int `json:"total"`
}

type AddItemRequest struct {
	ID int `json:"id"`
}
