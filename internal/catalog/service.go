package catalog

import (
	"context"

	"github.com/saim-honey388/BAKERY-CHAT/internal/rules"
)

const alternativesLimit = 3

// Service defines catalog lookups as the state machine consumes them.
type Service interface {
	// Resolve returns the products matching an already-extracted term:
	// zero, one, or many.
	Resolve(ctx context.Context, term string) ([]Product, error)
	// CheckStock is the advisory add-time check. It returns nil when the
	// quantity is coverable and *StockInsufficientError when it is not.
	CheckStock(ctx context.Context, p *Product, quantity int) error
	// Alternatives suggests in-stock substitutes from the same category.
	Alternatives(ctx context.Context, p *Product) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Resolve(ctx context.Context, term string) ([]Product, error) {
	if term == "" {
		return nil, ErrProductNotFound
	}
	return s.repo.Search(ctx, term)
}

func (s *service) CheckStock(ctx context.Context, p *Product, quantity int) error {
	available, err := s.repo.AvailableStock(ctx, p.ID)
	if err != nil {
		return err
	}
	if !rules.SufficientStock(available, quantity) {
		return &StockInsufficientError{Product: p.Name, Available: available}
	}
	return nil
}

func (s *service) Alternatives(ctx context.Context, p *Product) ([]Product, error) {
	return s.repo.InStockByCategory(ctx, p.Category, p.ID, alternativesLimit)
}
