package conversation

import (
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
	"github.com/saim-honey388/BAKERY-CHAT/internal/payment"
)

type IntentKind string

const (
	IntentAddItem        IntentKind = "add-item"
	IntentSetFulfillment IntentKind = "set-fulfillment"
	IntentSetDetail      IntentKind = "set-detail"
	IntentRequestModify  IntentKind = "request-modify"
	IntentConfirm        IntentKind = "confirm"
	IntentCancel         IntentKind = "cancel"
)

// Intent is the already-classified, entity-extracted representation of
// a user turn. The intent/entity layer upstream owns all natural
// language understanding; the machine never parses free text except to
// run the confirmation vocabulary over Text.
type Intent struct {
	Kind IntentKind `json:"kind"`
	Text string     `json:"text,omitempty"`

	// add-item payload
	Product  string `json:"product,omitempty"`
	Quantity int    `json:"quantity,omitempty"`

	// set-fulfillment payload
	Fulfillment cart.FulfillmentType `json:"fulfillment,omitempty"`

	// set-detail payload; only the named fields are applied
	Details Details `json:"details,omitempty"`
}

// Details carries the typed entities extracted from one turn. Zero
// values mean "not mentioned this turn".
type Details struct {
	Name    string         `json:"name,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Branch  string         `json:"branch,omitempty"`
	Address string         `json:"address,omitempty"`
	Time    *time.Time     `json:"time,omitempty"`
	Payment payment.Method `json:"payment,omitempty"`
}

func (d Details) empty() bool {
	return d.Name == "" && d.Phone == "" && d.Branch == "" &&
		d.Address == "" && d.Time == nil && d.Payment == ""
}
