package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saim-honey388/BAKERY-CHAT/internal/branch"
	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
	"github.com/saim-honey388/BAKERY-CHAT/internal/catalog"
	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"
	"github.com/saim-honey388/BAKERY-CHAT/internal/metrics"
	"github.com/saim-honey388/BAKERY-CHAT/internal/order"
	"github.com/saim-honey388/BAKERY-CHAT/internal/payment"
	"github.com/saim-honey388/BAKERY-CHAT/internal/rules"
)

// Handler consumes one classified turn for a session and returns the
// structured result of applying it.
type Handler interface {
	Handle(ctx context.Context, sess *Session, intent Intent) (*Result, error)
}

// Machine is the order state machine. It mutates the session in place;
// persistence between turns belongs to the caller.
type Machine struct {
	catalog  catalog.Service
	orders   order.Service
	branches *branch.Registry
}

func NewMachine(catalogSvc catalog.Service, orderSvc order.Service, branches *branch.Registry) *Machine {
	return &Machine{catalog: catalogSvc, orders: orderSvc, branches: branches}
}

func (m *Machine) Handle(ctx context.Context, sess *Session, intent Intent) (*Result, error) {
	metrics.TurnsProcessed.Inc()
	log := logger.FromCtx(ctx)

	// A cancelled session restarts transparently on the next turn.
	if sess.State == "" || sess.State == StateCancelled {
		sess.Cart.Clear()
		sess.State = StateCollectingItems
	}
	defer func() { sess.UpdatedAt = time.Now() }()

	log.Debug("handling turn",
		zap.String("intent", string(intent.Kind)),
		zap.String("state", string(sess.State)),
	)

	switch intent.Kind {
	case IntentAddItem:
		return m.handleAddItem(ctx, sess, intent)
	case IntentSetFulfillment:
		return m.handleSetFulfillment(ctx, sess, intent)
	case IntentSetDetail:
		return m.handleSetDetail(ctx, sess, intent)
	case IntentRequestModify:
		return m.handleRequestModify(sess)
	case IntentConfirm:
		return m.handleConfirm(ctx, sess, intent)
	case IntentCancel:
		return m.handleCancel(sess), nil
	default:
		return localError(sess.State, nil, "Sorry, I didn't catch that. Could you rephrase?"), nil
	}
}

func (m *Machine) handleAddItem(ctx context.Context, sess *Session, intent Intent) (*Result, error) {
	if intent.Quantity <= 0 {
		return localError(sess.State, ErrInvalidQuantity,
			"How many would you like? I need a whole number of at least one."), nil
	}

	products, err := m.catalog.Resolve(ctx, intent.Product)
	if err != nil && !errors.Is(err, catalog.ErrProductNotFound) {
		return nil, err
	}
	switch len(products) {
	case 0:
		res := localError(sess.State, ErrProductNotFound,
			fmt.Sprintf("I couldn't find %q on our menu. Could you try another name?", intent.Product))
		return res, nil
	case 1:
	default:
		names := make([]string, len(products))
		for i, p := range products {
			names[i] = p.Name
		}
		res := localError(sess.State, ErrAmbiguousProduct,
			fmt.Sprintf("We have a few items like that: %s. Which one did you mean?", listOptions(names)))
		res.Candidates = names
		return res, nil
	}
	p := products[0]

	// The advisory check covers what the cart already holds for this
	// product, not just the new request.
	wanted := intent.Quantity + sess.Cart.Quantity(p.ID)
	if err := m.catalog.CheckStock(ctx, &p, wanted); err != nil {
		var insufficient *catalog.StockInsufficientError
		if !errors.As(err, &insufficient) {
			return nil, err
		}
		res := localError(sess.State, insufficient, stockShortMessage(p.Name, insufficient.Available))
		res.Available = intPtr(insufficient.Available)
		if alts, altErr := m.catalog.Alternatives(ctx, &p); altErr == nil {
			for _, a := range alts {
				res.Alternatives = append(res.Alternatives, a.Name)
			}
			if len(res.Alternatives) > 0 {
				res.Message += fmt.Sprintf(" Could I interest you in %s instead?", listOptions(res.Alternatives))
			}
		}
		return res, nil
	}

	if err := sess.Cart.AddLine(cart.Line{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.Price,
		Quantity:  intent.Quantity,
	}); err != nil {
		return localError(sess.State, err, ""), nil
	}

	if sess.State == StateModifying || sess.State == StateConfirmationPending {
		sess.State = StateConfirmationPending
		return confirmPreview(sess.State, TagModifyPreview, &sess.Cart), nil
	}
	return m.advance(sess), nil
}

func (m *Machine) handleSetFulfillment(ctx context.Context, sess *Session, intent Intent) (*Result, error) {
	if sess.Cart.Empty() {
		return askDetails(StateCollectingItems, []cart.Field{cart.FieldItems}), nil
	}
	if err := sess.Cart.SetFulfillment(intent.Fulfillment); err != nil {
		return localError(sess.State, err, "Will that be pickup or delivery?"), nil
	}
	if !intent.Details.empty() {
		if res := m.applyDetails(ctx, sess, intent.Details); res != nil {
			return res, nil
		}
	}
	if sess.State == StateModifying {
		sess.State = StateConfirmationPending
		return confirmPreview(sess.State, TagModifyPreview, &sess.Cart), nil
	}
	return m.advance(sess), nil
}

func (m *Machine) handleSetDetail(ctx context.Context, sess *Session, intent Intent) (*Result, error) {
	fromModify := sess.State == StateModifying
	if intent.Details.empty() {
		if fromModify {
			return localError(sess.State, ErrAmbiguousModifyTarget,
				"What would you like to change? You can update items, pickup or delivery, time, branch, your details, or payment."), nil
		}
		return m.advance(sess), nil
	}
	if res := m.applyDetails(ctx, sess, intent.Details); res != nil {
		return res, nil
	}
	if fromModify {
		sess.State = StateConfirmationPending
		return confirmPreview(sess.State, TagModifyPreview, &sess.Cart), nil
	}
	return m.advance(sess), nil
}

func (m *Machine) handleRequestModify(sess *Session) (*Result, error) {
	switch sess.State {
	case StateConfirmationPending:
		sess.State = StateModifying
		return &Result{
			Tag:     TagModifyPreview,
			Message: "Sure, what would you like to change? Items, pickup or delivery, time, branch, your details, or payment.",
			State:   sess.State,
		}, nil
	case StateModifying:
		return localError(sess.State, ErrAmbiguousModifyTarget,
			"Just tell me the change, for example a new time or a different item."), nil
	default:
		return localError(sess.State, ErrAmbiguousModifyTarget,
			"There's nothing to change yet. What would you like to order?"), nil
	}
}

func (m *Machine) handleConfirm(ctx context.Context, sess *Session, intent Intent) (*Result, error) {
	if sess.State != StateConfirmationPending {
		// Confirming with nothing staged is a no-op, including right
		// after a successful order.
		res := askDetails(sess.State, nil)
		res.Message = "There's no order waiting for confirmation right now. What would you like to order?"
		return res, nil
	}
	if intent.Text != "" && !IsConfirmation(intent.Text) {
		res := confirmPreview(sess.State, TagConfirmPreview, &sess.Cart)
		res.Message = "No problem, nothing has been placed yet.\n\n" + res.Message
		return res, nil
	}

	receipt, err := m.orders.Finalize(ctx, &sess.Cart)
	if err != nil {
		var exhausted *order.StockExhaustedError
		if errors.As(err, &exhausted) {
			res := localError(sess.State, exhausted, stockShortMessage(exhausted.Product, exhausted.Available))
			res.Available = intPtr(exhausted.Available)
			res.Message += " Would you like to adjust the order?"
			return res, nil
		}
		return nil, err
	}

	sess.Cart.Clear()
	sess.State = StateCollectingItems
	sess.LastOrderID = receipt.OrderID

	logger.FromCtx(ctx).Info("order placed",
		zap.Int64("order_id", receipt.OrderID),
		zap.String("reference", receipt.Reference),
	)
	return &Result{
		Tag:     TagReceipt,
		Message: receipt.Render(),
		State:   sess.State,
		Receipt: receipt,
		OrderID: receipt.OrderID,
	}, nil
}

func (m *Machine) handleCancel(sess *Session) *Result {
	sess.Cart.Clear()
	sess.State = StateCancelled
	return &Result{
		Tag:     TagAskDetails,
		Message: "No worries, I've cancelled that order. Come back any time!",
		State:   sess.State,
	}
}

// applyDetails writes the turn's extracted details into the cart. A
// non-nil result means a detail was rejected and the turn should stop
// there with the state unchanged.
func (m *Machine) applyDetails(ctx context.Context, sess *Session, d Details) *Result {
	c := &sess.Cart
	if d.Name != "" {
		if err := c.SetCustomer(cart.FieldName, d.Name); err != nil {
			return localError(sess.State, err, "")
		}
	}
	if d.Phone != "" {
		if err := c.SetCustomer(cart.FieldPhone, d.Phone); err != nil {
			return localError(sess.State, err, "")
		}
	}
	if d.Branch != "" {
		b, ok := m.branches.Find(d.Branch)
		if !ok {
			return localError(sess.State, ErrUnknownBranch,
				fmt.Sprintf("I don't recognize that branch. We have: %s.", listOptions(m.branches.Names())))
		}
		if err := c.SetCustomer(cart.FieldBranch, b.Name); err != nil {
			return localError(sess.State, err, "")
		}
		// A time accepted earlier may not fit this branch's hours.
		if w, stale := m.staleTime(c); stale {
			c.FulfillAt = nil
			res := outOfHours(sess.State, w)
			res.Message = fmt.Sprintf("%s is open %s that day, so the time we had no longer works. What time should we make it?", c.Branch, w)
			return res
		}
	}
	if d.Address != "" {
		if err := c.SetCustomer(cart.FieldAddress, d.Address); err != nil {
			return localError(sess.State, err, "")
		}
	}
	if d.Time != nil {
		var b *branch.Branch
		if c.Branch != "" {
			b, _ = m.branches.Find(c.Branch)
		}
		if !rules.WithinHours(b, *d.Time) {
			w := branch.DefaultWindow
			if b != nil {
				w = b.WindowOn(*d.Time)
			}
			return outOfHours(sess.State, w)
		}
		c.SetTime(*d.Time)
	}
	if d.Payment != "" {
		method, ok := payment.ParseMethod(string(d.Payment))
		if !ok {
			return localError(sess.State, ErrInvalidPayment,
				"We take cash, card, or digital wallet. Which would you prefer?")
		}
		if err := c.SetPayment(method); err != nil {
			return localError(sess.State, err, "")
		}
	}
	return nil
}

// staleTime reports whether a stored fulfillment time no longer falls
// inside the selected branch's hours. That can happen when the branch
// is chosen, or changed, after the time was accepted.
func (m *Machine) staleTime(c *cart.Cart) (branch.Window, bool) {
	if c.FulfillAt == nil {
		return branch.Window{}, false
	}
	var b *branch.Branch
	if c.Branch != "" {
		b, _ = m.branches.Find(c.Branch)
	}
	if rules.WithinHours(b, *c.FulfillAt) {
		return branch.Window{}, false
	}
	w := branch.DefaultWindow
	if b != nil {
		w = b.WindowOn(*c.FulfillAt)
	}
	return w, true
}

// advance recomputes where the conversation stands from the cart and
// moves the state forward, producing the next prompt.
func (m *Machine) advance(sess *Session) *Result {
	c := &sess.Cart
	if c.Empty() {
		sess.State = StateCollectingItems
		return askDetails(sess.State, []cart.Field{cart.FieldItems})
	}
	if c.Fulfillment == "" {
		sess.State = StateFulfillmentPending
		res := askDetails(sess.State, nil)
		res.Message = "Will that be pickup or delivery?"
		return res
	}
	if w, stale := m.staleTime(c); stale {
		c.FulfillAt = nil
		sess.State = StateDetailsPending
		return outOfHours(sess.State, w)
	}
	if missing := rules.MissingFields(c); len(missing) > 0 {
		sess.State = StateDetailsPending
		return askDetails(sess.State, missing)
	}
	sess.State = StateConfirmationPending
	return confirmPreview(sess.State, TagConfirmPreview, c)
}
