package customer

import (
	"context"
	"database/sql"
	"errors"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Repository is read-only: customer rows are written exclusively inside
// the order finalize transaction.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Customer, error)
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Customer, error) {
	return r.get(ctx, `
		SELECT id, name, COALESCE(phone_number, '')
		FROM customers
		WHERE id = $1
	`, id)
}

func (r *repository) GetByPhone(ctx context.Context, phone string) (*Customer, error) {
	return r.get(ctx, `
		SELECT id, name, COALESCE(phone_number, '')
		FROM customers
		WHERE phone_number = $1
	`, phone)
}

func (r *repository) get(ctx context.Context, query string, arg any) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Phone)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
