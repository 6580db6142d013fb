package catalog

// Product is one purchasable menu item. Stock is mutated only by the
// finalize transaction and by restocking tooling outside this core.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"quantity_in_stock"`
}
