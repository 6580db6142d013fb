package catalog

import (
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")

// StockInsufficientError is the advisory add-time shortfall: the cart is
// left unchanged and the customer is told how many are available. The
// authoritative check happens again inside the finalize transaction.
type StockInsufficientError struct {
	Product   string
	Available int
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available", e.Product, e.Available)
}
