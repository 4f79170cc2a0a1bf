package models

// OrderItem is a single line in a purchase request: which product and how many
// units of it.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest represents an incoming checkout submission. Lines are processed
// in the order they appear.
type OrderRequest struct {
	OrderDetails []OrderItem `json:"orderDetails"`
}

// Confirmation is returned when every line of an order was applied.
// Inventory decrement is the only durable side effect; no order record is
// persisted.
type Confirmation struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}
