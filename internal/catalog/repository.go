package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Search(ctx context.Context, term string) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	AvailableStock(ctx context.Context, id int64) (int, error)
	InStockByCategory(ctx context.Context, category string, excludeID int64, limit int) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = "id, name, description, price, category, quantity_in_stock"

// Search resolves a term to products: an exact case-insensitive name
// match wins, otherwise substring matches are returned. Fuzzy matching
// beyond this belongs to the retrieval collaborator upstream.
func (r *repository) Search(ctx context.Context, term string) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "Search"),
		zap.String("term", term),
	)

	exact, err := r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE LOWER(name) = LOWER($1)
	`, term)
	if err != nil {
		log.Error("exact product search failed", zap.Error(err))
		return nil, err
	}
	if len(exact) > 0 {
		return exact, nil
	}

	partial, err := r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE name ILIKE $1
		ORDER BY name
	`, "%"+term+"%")
	if err != nil {
		log.Error("partial product search failed", zap.Error(err))
		return nil, err
	}

	log.Debug("product search done", zap.Int("matches", len(partial)))
	return partial, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) AvailableStock(ctx context.Context, id int64) (int, error) {
	var available int
	err := r.db.QueryRowContext(ctx, `
		SELECT quantity_in_stock
		FROM products
		WHERE id = $1
	`, id).Scan(&available)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	return available, nil
}

// InStockByCategory lists substitute candidates for suggestion prompts.
func (r *repository) InStockByCategory(ctx context.Context, category string, excludeID int64, limit int) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE quantity_in_stock > 0
		  AND category = $1
		  AND id <> $2
		ORDER BY name
		LIMIT $3
	`, category, excludeID, limit)
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
