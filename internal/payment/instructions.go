package payment

import "strings"

// InstructionMap holds the per-method handoff steps rendered into
// receipts. The {{amount}} placeholder is replaced with the order total.
var InstructionMap = map[Method][]string{
	MethodCash: {
		"Have {{amount}} ready at handoff",
		"Exact change is appreciated but not required",
		"Keep the printed receipt as proof of payment",
	},

	MethodCard: {
		"Card is charged at the counter or by the courier",
		"Contactless and chip cards are both accepted",
		"The charge will appear as the bakery on your statement",
	},

	MethodDigitalWallet: {
		"Scan the QR code shown at handoff",
		"Confirm the amount {{amount}} before approving",
		"Show the success screen to the staff member",
	},
}

// Instructions returns the rendered instruction lines for a method.
func Instructions(m Method, amount string) []string {
	raw, ok := InstructionMap[m]
	if !ok {
		return nil
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.ReplaceAll(line, "{{amount}}", amount))
	}
	return lines
}
