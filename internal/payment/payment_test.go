package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	t.Run("Synonyms resolve", func(t *testing.T) {
		cases := map[string]Method{
			"cash":       MethodCash,
			"Visa":       MethodCard,
			"credit":     MethodCard,
			"gpay":       MethodDigitalWallet,
			"Google Pay": MethodDigitalWallet,
			"upi":        MethodDigitalWallet,
		}
		for raw, want := range cases {
			got, ok := ParseMethod(raw)
			assert.True(t, ok, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("Canonical values pass through", func(t *testing.T) {
		got, ok := ParseMethod("digital_wallet")
		assert.True(t, ok)
		assert.Equal(t, MethodDigitalWallet, got)
	})

	t.Run("Unknown rejected", func(t *testing.T) {
		_, ok := ParseMethod("barter")
		assert.False(t, ok)

		_, ok = ParseMethod("")
		assert.False(t, ok)
	})
}

func TestInstructions(t *testing.T) {
	t.Run("Amount substituted", func(t *testing.T) {
		lines := Instructions(MethodCash, "$12.50")
		assert.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "$12.50")
	})

	t.Run("Unknown method yields nothing", func(t *testing.T) {
		assert.Nil(t, Instructions(Method("IOU"), "$1.00"))
	})
}
