package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
	"github.com/saim-honey388/BAKERY-CHAT/internal/conversation"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		sess := conversation.NewSession("sess-1")
		sess.State = conversation.StateDetailsPending
		sess.Cart.Lines = []cart.Line{
			{ProductID: 1, Name: "Sourdough Loaf", UnitPrice: 10.00, Quantity: 2},
		}

		require.NoError(t, store.Save(ctx, sess))

		got, err := store.Load(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, conversation.StateDetailsPending, got.State)
		assert.Len(t, got.Cart.Lines, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Expired", func(t *testing.T) {
		store := NewMemoryStore(10 * time.Millisecond)
		require.NoError(t, store.Save(ctx, conversation.NewSession("sess-1")))

		time.Sleep(20 * time.Millisecond)

		_, err := store.Load(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		require.NoError(t, store.Save(ctx, conversation.NewSession("sess-1")))
		require.NoError(t, store.Delete(ctx, "sess-1"))

		_, err := store.Load(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
