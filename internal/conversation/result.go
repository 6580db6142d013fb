package conversation

import (
	"fmt"
	"strings"

	"github.com/saim-honey388/BAKERY-CHAT/internal/branch"
	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
	"github.com/saim-honey388/BAKERY-CHAT/internal/order"
)

type MessageTag string

const (
	TagAskDetails     MessageTag = "ask-details"
	TagModifyPreview  MessageTag = "modify-preview"
	TagConfirmPreview MessageTag = "confirm-preview"
	TagReceipt        MessageTag = "receipt"
	TagError          MessageTag = "error"
)

// Result is the structured outcome of one turn. The rendering layer in
// front of the machine decides final phrasing; Message is a usable
// default.
type Result struct {
	Tag     MessageTag `json:"tag"`
	Message string     `json:"message"`
	State   State      `json:"state"`

	// Reason carries the error taxonomy name when the turn was
	// rejected locally, so the rendering layer can branch on it.
	Reason string `json:"reason,omitempty"`

	Missing []cart.Field          `json:"missing,omitempty"`
	Prompts map[cart.Field]string `json:"prompts,omitempty"`

	Candidates   []string `json:"candidates,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
	Available    *int     `json:"available,omitempty"`

	Preview string         `json:"preview,omitempty"`
	Receipt *order.Receipt `json:"receipt,omitempty"`
	OrderID int64          `json:"order_id,omitempty"`
}

var fieldPrompts = map[cart.Field]string{
	cart.FieldItems:   "What would you like to order today?",
	cart.FieldName:    "Can I get a name for the order?",
	cart.FieldPhone:   "What's the best phone number to reach you?",
	cart.FieldBranch:  "Which branch would you like to pick up from?",
	cart.FieldAddress: "What's the delivery address?",
	cart.FieldTime:    "What time works best for you?",
	cart.FieldPayment: "How would you like to pay? We take cash, card, or digital wallet.",
}

func promptsFor(fields []cart.Field) map[cart.Field]string {
	p := make(map[cart.Field]string, len(fields))
	for _, f := range fields {
		p[f] = fieldPrompts[f]
	}
	return p
}

// askDetails builds the one-question-at-a-time detail request. The
// full missing list rides along so the caller can show progress.
func askDetails(state State, missing []cart.Field) *Result {
	msg := "What else can I help you with?"
	if len(missing) > 0 {
		msg = fieldPrompts[missing[0]]
	}
	return &Result{
		Tag:     TagAskDetails,
		Message: msg,
		State:   state,
		Missing: missing,
		Prompts: promptsFor(missing),
	}
}

func confirmPreview(state State, tag MessageTag, c *cart.Cart) *Result {
	preview := order.Preview(c).Render()
	return &Result{
		Tag:     tag,
		Message: preview + "\n\nShall I place the order?",
		State:   state,
		Preview: preview,
	}
}

func localError(state State, err error, msg string) *Result {
	if msg == "" && err != nil {
		msg = err.Error()
	}
	res := &Result{Tag: TagError, Message: msg, State: state}
	if err != nil {
		res.Reason = err.Error()
	}
	return res
}

// outOfHours rejects a fulfillment time and asks for another one inside
// the branch's window.
func outOfHours(state State, w branch.Window) *Result {
	res := localError(state, ErrOutOfHours,
		fmt.Sprintf("We're open %s that day. Could you pick a time inside those hours?", w))
	res.Missing = []cart.Field{cart.FieldTime}
	res.Prompts = promptsFor(res.Missing)
	return res
}

func listOptions(opts []string) string {
	return strings.Join(opts, ", ")
}

func intPtr(n int) *int { return &n }

func stockShortMessage(name string, available int) string {
	if available <= 0 {
		return fmt.Sprintf("I'm sorry, %s is sold out right now.", name)
	}
	return fmt.Sprintf("We only have %d of %s available right now.", available, name)
}
