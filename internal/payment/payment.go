package payment

import "strings"

// Method is how the customer intends to pay at handoff. Payment
// processing itself happens at the counter or on delivery; the core
// only records the choice and surfaces the matching instructions.
type Method string

const (
	MethodCash          Method = "CASH"
	MethodCard          Method = "CARD"
	MethodDigitalWallet Method = "DIGITAL_WALLET"
)

// synonyms maps the vocabulary the entity layer emits onto a Method.
var synonyms = map[string]Method{
	"cash":           MethodCash,
	"money":          MethodCash,
	"cash on pickup": MethodCash,

	"card":       MethodCard,
	"credit":     MethodCard,
	"debit":      MethodCard,
	"visa":       MethodCard,
	"mastercard": MethodCard,
	"amex":       MethodCard,

	"digital wallet": MethodDigitalWallet,
	"wallet":         MethodDigitalWallet,
	"upi":            MethodDigitalWallet,
	"gpay":           MethodDigitalWallet,
	"google pay":     MethodDigitalWallet,
	"apple pay":      MethodDigitalWallet,
	"paypal":         MethodDigitalWallet,
	"paytm":          MethodDigitalWallet,
	"phonepe":        MethodDigitalWallet,
}

// ParseMethod resolves a raw payment term to a Method. The boolean is
// false when the term is not recognized.
func ParseMethod(raw string) (Method, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	if m, ok := synonyms[key]; ok {
		return m, true
	}
	// already-canonical values pass through
	switch Method(strings.ToUpper(key)) {
	case MethodCash, MethodCard, MethodDigitalWallet:
		return Method(strings.ToUpper(key)), true
	}
	return "", false
}

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodDigitalWallet:
		return true
	}
	return false
}

// Display returns the human label used in previews and receipts.
func (m Method) Display() string {
	switch m {
	case MethodCash:
		return "Cash"
	case MethodCard:
		return "Card"
	case MethodDigitalWallet:
		return "Digital Wallet"
	}
	return string(m)
}
