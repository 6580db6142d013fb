package conversation

import (
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
)

type State string

const (
	StateCollectingItems     State = "COLLECTING_ITEMS"
	StateFulfillmentPending  State = "FULFILLMENT_PENDING"
	StateDetailsPending      State = "DETAILS_PENDING"
	StateConfirmationPending State = "CONFIRMATION_PENDING"
	StateModifying           State = "MODIFYING"
	StateCancelled           State = "CANCELLED"
)

// Session is the per-conversation record the machine mutates in place.
// It serializes to JSON so the session store can persist it between
// turns.
type Session struct {
	ID          string    `json:"id"`
	Cart        cart.Cart `json:"cart"`
	State       State     `json:"state"`
	LastOrderID int64     `json:"last_order_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		State:     StateCollectingItems,
		UpdatedAt: time.Now(),
	}
}

// Flags reports the coarse awaiting-X view of the state, kept for
// callers that only need to know what the machine is waiting on.
type Flags struct {
	AwaitingFulfillment  bool `json:"awaiting_fulfillment"`
	AwaitingDetails      bool `json:"awaiting_details"`
	AwaitingConfirmation bool `json:"awaiting_confirmation"`
}

func (s *Session) Flags() Flags {
	return Flags{
		AwaitingFulfillment:  s.State == StateFulfillmentPending,
		AwaitingDetails:      s.State == StateDetailsPending,
		AwaitingConfirmation: s.State == StateConfirmationPending || s.State == StateModifying,
	}
}
