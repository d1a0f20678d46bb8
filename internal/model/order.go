package model

import "time"

// Order statuses. Unknown codes are stored as-is and displayed as
// "Unknown Status".
const (
	OrderStatusCancelled = 0
	OrderStatusPlacing   = 1
	OrderStatusProcessed = 2
	OrderStatusShipped   = 3
	OrderStatusDelivery  = 4
	OrderStatusDelivered = 5
)

// Order represents a customer order.
type Order struct {
	ID              int64     `json:"id"`
	OrderName       string    `json:"order_name"`
	CustomerName    string    `json:"customer_name"`
	ShippingAddress string    `json:"shipping_address,omitempty"`
	OrderStatus     int       `json:"order_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderSummary is the projection returned by the order listing.
type OrderSummary struct {
	ID           int64  `json:"id"`
	OrderName    string `json:"order_name"`
	CustomerName string `json:"customer_name"`
}

// OrderPatch is a partial update of an order. Nil fields are left untouched.
// Fields counts every key named in the request, including ones this backend
// does not model, so that "exactly one field" checks see what the caller sent.
type OrderPatch struct {
	OrderName       *string
	CustomerName    *string
	ShippingAddress *string
	OrderStatus     *int
	Fields          int
}

// IsCustomerCancel reports whether the patch is exactly a single-field
// status change to cancelled, the only update a customer may make.
func (p OrderPatch) IsCustomerCancel() bool {
	return p.Fields == 1 && p.OrderStatus != nil && *p.OrderStatus == OrderStatusCancelled
}

var statusMessages = map[int]string{
	OrderStatusCancelled: "Order is Cancelled",
	OrderStatusPlacing:   "Placing Order",
	OrderStatusProcessed: "Order Processed",
	OrderStatusShipped:   "Order Shipped",
	OrderStatusDelivery:  "Order is out for delivery",
	OrderStatusDelivered: "Order has been Delivered",
}

// StatusMessage returns the display message for an order status code.
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "Unknown Status"
}
