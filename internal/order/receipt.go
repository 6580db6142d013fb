package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
	"github.com/saim-honey388/BAKERY-CHAT/internal/payment"
)

type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Receipt is the structured record handed to the response-formatting
// collaborator. A zero OrderID marks a pre-commit preview.
type Receipt struct {
	OrderID       int64           `json:"order_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	PlacedAt      time.Time       `json:"placed_at"`
	Lines         []ReceiptLine   `json:"lines"`
	Total         float64         `json:"total"`
	Fulfillment   cart.FulfillmentType `json:"fulfillment"`
	Branch        string          `json:"branch,omitempty"`
	Address       string          `json:"address,omitempty"`
	FulfillAt     *time.Time      `json:"fulfill_at,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Payment       payment.Method  `json:"payment,omitempty"`
	Instructions  []string        `json:"instructions,omitempty"`
}

// Preview builds a receipt-shaped view of the cart before finalize,
// priced from the advisory add-time prices.
func Preview(c *cart.Cart) *Receipt {
	r := &Receipt{
		PlacedAt:      time.Now(),
		Fulfillment:   c.Fulfillment,
		Branch:        c.Branch,
		Address:       c.Address,
		FulfillAt:     c.FulfillAt,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		Payment:       c.Payment,
	}
	for _, l := range c.Lines {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
		r.Total += l.Subtotal()
	}
	return r
}

// buildReceipt pairs the committed order with the cart's fulfillment
// details, which are not persisted per-field on the order row.
func buildReceipt(o *Order, c *cart.Cart) *Receipt {
	r := &Receipt{
		OrderID:       o.ID,
		Reference:     o.Reference,
		PlacedAt:      o.CreatedAt,
		Total:         o.Total,
		Fulfillment:   o.Fulfillment,
		Branch:        c.Branch,
		Address:       c.Address,
		FulfillAt:     o.FulfillAt,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		Payment:       c.Payment,
	}
	for _, item := range o.Items {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	r.Instructions = payment.Instructions(c.Payment, fmt.Sprintf("$%.2f", o.Total))
	return r
}

// Render produces the human-readable fallback text.
func (r *Receipt) Render() string {
	var b strings.Builder

	b.WriteString("Sunrise Bakery\n")
	if r.OrderID != 0 {
		fmt.Fprintf(&b, "%s  Order #%d (%s)\n", r.PlacedAt.Format("2006-01-02 15:04"), r.OrderID, r.Reference)
	} else {
		fmt.Fprintf(&b, "%s  Order Preview\n", r.PlacedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString("\nItems:\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "- %d x %s @ $%.2f = $%.2f\n", l.Quantity, l.Name, l.UnitPrice, l.Subtotal)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", r.Total)

	switch r.Fulfillment {
	case cart.FulfillmentPickup:
		b.WriteString("Fulfillment: Pickup\n")
		if r.Branch != "" {
			fmt.Fprintf(&b, "Branch: %s\n", r.Branch)
		}
	case cart.FulfillmentDelivery:
		b.WriteString("Fulfillment: Delivery\n")
		if r.Address != "" {
			fmt.Fprintf(&b, "Address: %s\n", r.Address)
		}
	}
	if r.FulfillAt != nil {
		fmt.Fprintf(&b, "Time: %s\n", r.FulfillAt.Format("2006-01-02 15:04"))
	}
	if r.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", r.CustomerName)
	}
	if r.CustomerPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", r.CustomerPhone)
	}
	if r.Payment != "" {
		fmt.Fprintf(&b, "Payment: %s\n", r.Payment.Display())
	}
	for _, line := range r.Instructions {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	return b.String()
}
