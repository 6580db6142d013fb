package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity    = errors.New("invalid cart quantity")
	ErrInvalidFulfillment = errors.New("invalid fulfillment type")
	ErrUnknownField       = errors.New("unknown cart field")

	// -- Resource State --
	ErrLineNotFound = errors.New("cart line not found")
	ErrCartEmpty    = errors.New("cart is empty")
)
