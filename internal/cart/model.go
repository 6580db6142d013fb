package cart

import (
	"fmt"
	"strings"
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/payment"
)

type FulfillmentType string

const (
	FulfillmentUnset    FulfillmentType = ""
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

// Field names one slot of customer/fulfillment detail that must be
// filled before an order can be confirmed.
type Field string

const (
	FieldItems   Field = "items"
	FieldName    Field = "name"
	FieldPhone   Field = "phone"
	FieldBranch  Field = "branch"
	FieldAddress Field = "address"
	FieldTime    Field = "time"
	FieldPayment Field = "payment"
)

// Line is one (product, quantity) entry. UnitPrice is the catalog price
// at add-time; it is advisory only and is frozen again inside the
// finalize transaction.
type Line struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is the per-session staging area for an order being built. It is
// owned by exactly one conversation and never shared, so it carries no
// locking. It is never persisted before finalize; the session store
// keeps a serialized copy between turns.
type Cart struct {
	Lines         []Line          `json:"lines"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Fulfillment   FulfillmentType `json:"fulfillment,omitempty"`
	Branch        string          `json:"branch,omitempty"`
	Address       string          `json:"address,omitempty"`
	FulfillAt     *time.Time      `json:"fulfill_at,omitempty"`
	Payment       payment.Method  `json:"payment,omitempty"`
}

// AddLine merges the line into an existing entry for the same product
// or appends it, preserving insertion order for receipt display.
func (c *Cart) AddLine(l Line) error {
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == l.ProductID {
			c.Lines[i].Quantity += l.Quantity
			c.Lines[i].UnitPrice = l.UnitPrice
			return nil
		}
	}
	c.Lines = append(c.Lines, l)
	return nil
}

// Quantity returns the quantity already held for a product, zero when
// the cart has no line for it.
func (c *Cart) Quantity(productID int64) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return c.Lines[i].Quantity
		}
	}
	return 0
}

func (c *Cart) RemoveLine(productID int64) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// SetQuantity replaces the quantity of an existing line.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) SetFulfillment(ft FulfillmentType) error {
	if ft != FulfillmentPickup && ft != FulfillmentDelivery {
		return ErrInvalidFulfillment
	}
	c.Fulfillment = ft
	return nil
}

// SetCustomer fills one customer detail slot.
func (c *Cart) SetCustomer(field Field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		c.CustomerName = value
	case FieldPhone:
		c.CustomerPhone = value
	case FieldBranch:
		c.Branch = value
	case FieldAddress:
		c.Address = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (c *Cart) SetTime(t time.Time) {
	c.FulfillAt = &t
}

func (c *Cart) SetPayment(m payment.Method) error {
	if !m.Valid() {
		return cartPaymentError(m)
	}
	c.Payment = m
	return nil
}

func cartPaymentError(m payment.Method) error {
	return fmt.Errorf("%w: payment %q", ErrUnknownField, m)
}

func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Clear resets the cart to its zero state.
func (c *Cart) Clear() {
	*c = Cart{}
}

// Summary renders the cart contents for previews.
func (c *Cart) Summary() string {
	var b strings.Builder
	for _, l := range c.Lines {
		fmt.Fprintf(&b, "- %dx %s: $%.2f\n", l.Quantity, l.Name, l.Subtotal())
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f", c.Total())
	return b.String()
}
