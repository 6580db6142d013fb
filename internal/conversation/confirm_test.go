package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfirmation(t *testing.T) {
	t.Run("Affirmatives", func(t *testing.T) {
		for _, text := range []string{
			"yes",
			"Yes please",
			"yep, that's right",
			"confirm",
			"go ahead",
			"ok place the order",
			"sounds good!",
		} {
			assert.True(t, IsConfirmation(text), "expected confirmation: %q", text)
		}
	})

	t.Run("NegationWins", func(t *testing.T) {
		for _, text := range []string{
			"yes, but wait, let me change the time",
			"yes actually make it three",
			"no",
			"hold on",
			"yeah... no",
			"sure, one more thing first",
			"not yet",
		} {
			assert.False(t, IsConfirmation(text), "expected non-confirmation: %q", text)
		}
	})

	t.Run("WholeWordMatching", func(t *testing.T) {
		// "now" must not trip the "no" negation, and "yes" inside
		// another word must not count as affirmative.
		assert.True(t, IsConfirmation("yes do it now"))
		assert.False(t, IsConfirmation("eyes"))
	})

	t.Run("Neutral", func(t *testing.T) {
		assert.False(t, IsConfirmation(""))
		assert.False(t, IsConfirmation("what's in the sourdough?"))
		assert.False(t, IsConfirmation("maybe"))
	})
}
