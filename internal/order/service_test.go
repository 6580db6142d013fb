package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FinalizeTx(ctx context.Context, c *cart.Cart) (*Order, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) GetOrderDetail(ctx context.Context, orderID int64) (*Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func TestService_Finalize(t *testing.T) {
	t.Run("Success builds receipt with instructions", func(t *testing.T) {
		c := pickupCart(2)
		now := time.Now()
		committed := &Order{
			ID:          42,
			Reference:   "ORD-20250303-100000-000-0001",
			CustomerID:  7,
			Status:      StatusConfirmed,
			Fulfillment: cart.FulfillmentPickup,
			Total:       20.00,
			CreatedAt:   now,
			ConfirmedAt: &now,
			Items: []OrderItem{
				{ID: 1, OrderID: 42, ProductID: 1, ProductName: "Item X", Quantity: 2, UnitPrice: 10.00},
			},
		}

		repo := new(MockRepository)
		repo.On("FinalizeTx", mock.Anything, c).Return(committed, nil)

		svc := NewService(repo, time.Second)
		receipt, err := svc.Finalize(context.Background(), c)
		require.NoError(t, err)

		assert.Equal(t, int64(42), receipt.OrderID)
		assert.Equal(t, 20.00, receipt.Total)
		require.Len(t, receipt.Lines, 1)
		assert.Equal(t, 2, receipt.Lines[0].Quantity)
		assert.Equal(t, "Downtown Location", receipt.Branch)
		assert.NotEmpty(t, receipt.Instructions)

		text := receipt.Render()
		assert.Contains(t, text, "Order #42")
		assert.Contains(t, text, "2 x Item X")
		assert.Contains(t, text, "Total: $20.00")
		repo.AssertExpectations(t)
	})

	t.Run("Stock exhausted passes through untouched", func(t *testing.T) {
		c := pickupCart(2)
		repo := new(MockRepository)
		repo.On("FinalizeTx", mock.Anything, c).
			Return(nil, &StockExhaustedError{Product: "Item X", Available: 0})

		_, err := NewService(repo, time.Second).Finalize(context.Background(), c)

		var stockErr *StockExhaustedError
		require.ErrorAs(t, err, &stockErr)
		assert.NotErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("Storage failure wrapped as retryable", func(t *testing.T) {
		c := pickupCart(1)
		repo := new(MockRepository)
		repo.On("FinalizeTx", mock.Anything, c).Return(nil, errors.New("connection refused"))

		_, err := NewService(repo, time.Second).Finalize(context.Background(), c)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("Empty cart short-circuits", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewService(repo, time.Second).Finalize(context.Background(), &cart.Cart{})
		assert.ErrorIs(t, err, ErrEmptyCart)
		repo.AssertNotCalled(t, "FinalizeTx")
	})

	t.Run("Timeout context handed to repository", func(t *testing.T) {
		c := pickupCart(1)
		repo := new(MockRepository)
		repo.On("FinalizeTx", mock.Anything, c).
			Run(func(args mock.Arguments) {
				ctx := args.Get(0).(context.Context)
				_, ok := ctx.Deadline()
				assert.True(t, ok, "finalize context should carry a deadline")
			}).
			Return(nil, context.DeadlineExceeded)

		_, err := NewService(repo, 10*time.Millisecond).Finalize(context.Background(), c)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestPreview(t *testing.T) {
	c := pickupCart(2)
	r := Preview(c)

	assert.Zero(t, r.OrderID)
	assert.Equal(t, 20.00, r.Total)
	assert.Contains(t, r.Render(), "Order Preview")
	assert.Contains(t, r.Render(), "Branch: Downtown Location")
}
