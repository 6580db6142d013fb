package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/cart"
	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"
	"github.com/saim-honey388/BAKERY-CHAT/internal/rules"
	"github.com/saim-honey388/BAKERY-CHAT/internal/utils"

	"go.uber.org/zap"
)

type Repository interface {
	// FinalizeTx converts the cart into persisted Order/OrderItem rows
	// and decrements stock, all inside one transaction. On any error
	// nothing is committed.
	FinalizeTx(ctx context.Context, c *cart.Cart) (*Order, error)

	GetOrderDetail(ctx context.Context, orderID int64) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status OrderStatus) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FinalizeTx(ctx context.Context, c *cart.Cart) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FinalizeTx"),
		zap.Int("line_count", len(c.Lines)),
	)

	if c.Empty() {
		return nil, ErrEmptyCart
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	// 1. Re-validate every line against live stock. The row lock holds
	// until commit, so two sessions racing for the last unit serialize
	// here. The add-time check was advisory; this one is authoritative.
	frozenPrices := make(map[int64]float64, len(c.Lines))
	for _, line := range c.Lines {
		var available int
		var price float64
		err := tx.QueryRowContext(ctx, `
			SELECT quantity_in_stock, price
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, line.ProductID).Scan(&available, &price)

		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("product disappeared before finalize", zap.Int64("product_id", line.ProductID))
			return nil, &StockExhaustedError{Product: line.Name, Available: 0}
		}
		if err != nil {
			log.Error("failed to lock product row", zap.Error(err))
			return nil, err
		}
		if !rules.SufficientStock(available, line.Quantity) {
			log.Info("stock exhausted at finalize",
				zap.String("product", line.Name),
				zap.Int("available", available),
				zap.Int("requested", line.Quantity),
			)
			return nil, &StockExhaustedError{Product: line.Name, Available: available}
		}
		frozenPrices[line.ProductID] = price
	}

	// 2. Resolve or create the customer, matching by phone when present.
	customerID, err := r.findOrCreateCustomer(ctx, tx, c.CustomerName, c.CustomerPhone)
	if err != nil {
		log.Error("failed to resolve customer", zap.Error(err))
		return nil, err
	}

	var total float64
	for _, line := range c.Lines {
		total += frozenPrices[line.ProductID] * float64(line.Quantity)
	}

	// 3. Insert the order as pending; it flips to confirmed just before
	// commit, mirroring the audit trail of the order lifecycle.
	o := &Order{
		Reference:   utils.GenerateOrderReference(),
		CustomerID:  customerID,
		Status:      StatusPending,
		Fulfillment: c.Fulfillment,
		Total:       total,
		FulfillAt:   c.FulfillAt,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (reference, customer_id, status, fulfillment, total_amount, fulfill_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, o.Reference, o.CustomerID, o.Status, o.Fulfillment, o.Total, o.FulfillAt).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 4. Insert order items with frozen prices and decrement stock.
	for _, line := range c.Lines {
		item := OrderItem{
			OrderID:     o.ID,
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   frozenPrices[line.ProductID],
		}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price_at_time_of_order)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return nil, err
		}
		o.Items = append(o.Items, item)

		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET quantity_in_stock = quantity_in_stock - $1
			WHERE id = $2 AND quantity_in_stock >= $1
		`, line.Quantity, line.ProductID)
		if err != nil {
			log.Error("failed to decrement stock", zap.Error(err))
			return nil, err
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			// unreachable while the row lock holds, but never let the
			// quantity go negative
			return nil, &StockExhaustedError{Product: line.Name, Available: 0}
		}
	}

	// 5. Confirm and commit.
	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, confirmed_at = $2
		WHERE id = $3
	`, StatusConfirmed, now, o.ID)
	if err != nil {
		log.Error("failed to confirm order", zap.Error(err))
		return nil, err
	}
	o.Status = StatusConfirmed
	o.ConfirmedAt = &now

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit finalize transaction", zap.Error(err))
		return nil, err
	}
	committed = true

	log.Info("order finalized",
		zap.Int64("order_id", o.ID),
		zap.String("reference", o.Reference),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

func (r *repository) findOrCreateCustomer(ctx context.Context, tx *sql.Tx, name, phone string) (int64, error) {
	var id int64

	if phone != "" {
		err := tx.QueryRowContext(ctx, `
			SELECT id FROM customers WHERE phone_number = $1
		`, phone).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
	}

	err := tx.QueryRowContext(ctx, `
		INSERT INTO customers (name, phone_number)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id
	`, name, phone).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	return id, nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID int64) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, reference, customer_id, status, fulfillment, total_amount, fulfill_at, created_at, confirmed_at
		FROM orders
		WHERE id = $1
	`, orderID).
		Scan(&o.ID, &o.Reference, &o.CustomerID, &o.Status, &o.Fulfillment, &o.Total, &o.FulfillAt, &o.CreatedAt, &o.ConfirmedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.product_id, oi.quantity, oi.price_at_time_of_order, p.name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item := OrderItem{OrderID: o.ID}
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.ProductName); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) UpdateOrderStatus(ctx context.Context, orderID int64, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
