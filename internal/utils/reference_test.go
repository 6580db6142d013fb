package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderReference(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		ref := GenerateOrderReference()
		// Expected format: ORD-YYYYMMDD-HHMMSS-mmm-RRRR

		assert.True(t, strings.HasPrefix(ref, "ORD-"), "Should start with ORD-")

		parts := strings.Split(ref, "-")
		if assert.Len(t, parts, 5, "Should have 5 parts separated by hyphens") {
			assert.Equal(t, "ORD", parts[0])
			assert.Len(t, parts[1], 8, "Date part YYYYMMDD should be 8 chars")
			assert.Len(t, parts[2], 6, "Time part HHMMSS should be 6 chars")
			assert.Len(t, parts[3], 3, "Milliseconds part should be 3 chars")
			assert.Len(t, parts[4], 4, "Random part should be 4 chars")
		}
	})

	t.Run("Uniqueness", func(t *testing.T) {
		ref1 := GenerateOrderReference()
		ref2 := GenerateOrderReference()
		assert.NotEqual(t, ref1, ref2, "Consecutive references should be different")
	})
}
