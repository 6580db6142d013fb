// Package rules holds the pure validation checks consulted by the order
// state machine. Nothing here touches storage or mutates its inputs.
package rules

import (
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/branch"
	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
)

// SufficientStock reports whether an advisory stock level covers the
// requested quantity.
func SufficientStock(available, requested int) bool {
	return requested > 0 && available >= requested
}

// WithinHours reports whether t falls inside the branch's open window
// on that date. A nil branch falls back to the default window.
func WithinHours(b *branch.Branch, t time.Time) bool {
	if b == nil {
		return branch.DefaultWindow.Contains(t)
	}
	return b.WindowOn(t).Contains(t)
}

// MissingFields computes the ordered set of detail slots still required
// before the cart may move to confirmation. Items come first: an empty
// cart short-circuits everything else.
func MissingFields(c *cart.Cart) []cart.Field {
	if c.Empty() {
		return []cart.Field{cart.FieldItems}
	}

	var missing []cart.Field
	if c.CustomerName == "" {
		missing = append(missing, cart.FieldName)
	}
	if c.CustomerPhone == "" {
		missing = append(missing, cart.FieldPhone)
	}
	switch c.Fulfillment {
	case cart.FulfillmentPickup:
		if c.Branch == "" {
			missing = append(missing, cart.FieldBranch)
		}
	case cart.FulfillmentDelivery:
		if c.Address == "" {
			missing = append(missing, cart.FieldAddress)
		}
	}
	if c.FulfillAt == nil {
		missing = append(missing, cart.FieldTime)
	}
	if !c.Payment.Valid() {
		missing = append(missing, cart.FieldPayment)
	}
	return missing
}

// Complete reports whether every required detail slot is filled.
func Complete(c *cart.Cart) bool {
	return c.Fulfillment != cart.FulfillmentUnset && len(MissingFields(c)) == 0
}
