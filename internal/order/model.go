package order

import (
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is immutable once finalized; only status transitions performed
// by operational tooling touch it afterwards.
type Order struct {
	ID          int64                `json:"id"`
	Reference   string               `json:"reference"`
	CustomerID  int64                `json:"customer_id"`
	Status      OrderStatus          `json:"status"`
	Fulfillment cart.FulfillmentType `json:"fulfillment"`
	Total       float64              `json:"total"`
	FulfillAt   *time.Time           `json:"fulfill_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	ConfirmedAt *time.Time           `json:"confirmed_at,omitempty"`
	Items       []OrderItem          `json:"items"`
}

// OrderItem freezes the unit price at the moment of finalization,
// unlike the cart-stage price which tracks the live catalog.
type OrderItem struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (i OrderItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
