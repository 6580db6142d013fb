package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cannot finalize an empty cart")

	// ErrStorageUnavailable is the only hard failure the finalize path
	// surfaces. It is retryable and guarantees no partial effects.
	ErrStorageUnavailable = errors.New("order storage unavailable")
)

// StockExhaustedError aborts the finalize transaction: stock moved
// between add-time and confirm. The cart stays untouched so the
// customer can reduce the quantity or substitute.
type StockExhaustedError struct {
	Product   string
	Available int
}

func (e *StockExhaustedError) Error() string {
	return fmt.Sprintf("stock exhausted for %s: %d available", e.Product, e.Available)
}
