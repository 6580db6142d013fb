package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"
	"github.com/saim-honey388/BAKERY-CHAT/internal/metrics"

	"go.uber.org/zap"
)

// Service is the finalize entry point consumed by the state machine.
type Service interface {
	// Finalize runs the whole finalize transaction under a bounded
	// timeout and returns the structured receipt. Errors are either
	// *StockExhaustedError (recoverable, cart untouched) or
	// ErrStorageUnavailable (retryable hard failure).
	Finalize(ctx context.Context, c *cart.Cart) (*Receipt, error)
	GetOrderDetail(ctx context.Context, orderID int64) (*Order, error)
}

type service struct {
	repo    Repository
	timeout time.Duration
}

func NewService(repo Repository, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &service{repo: repo, timeout: timeout}
}

func (s *service) Finalize(ctx context.Context, c *cart.Cart) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "Finalize"))

	if c.Empty() {
		return nil, ErrEmptyCart
	}

	timer := metrics.StartTimer()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	o, err := s.repo.FinalizeTx(ctx, c)
	if err != nil {
		var stockErr *StockExhaustedError
		if errors.As(err, &stockErr) {
			metrics.StockConflicts.Inc()
			return nil, err
		}
		metrics.StorageFailures.Inc()
		log.Error("finalize failed", zap.Error(err), zap.Duration("elapsed", timer.Duration()))
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	metrics.OrdersFinalized.Inc()
	log.Info("finalize committed",
		zap.Int64("order_id", o.ID),
		zap.Duration("elapsed", timer.Duration()),
	)
	return buildReceipt(o, c), nil
}

func (s *service) GetOrderDetail(ctx context.Context, orderID int64) (*Order, error) {
	return s.repo.GetOrderDetail(ctx, orderID)
}
