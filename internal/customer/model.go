package customer

// Customer is created lazily on first finalized order. Phone is unique
// when present and is the preferred lookup key.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone_number,omitempty"`
}
