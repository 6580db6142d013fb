package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows(products ...Product) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "category", "quantity_in_stock"})
	for _, p := range products {
		rows.AddRow(p.ID, p.Name, p.Description, p.Price, p.Category, p.Stock)
	}
	return rows
}

func TestRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Exact match wins", func(t *testing.T) {
		mock.ExpectQuery("WHERE LOWER\\(name\\) = LOWER\\(\\$1\\)").
			WithArgs("sourdough loaf").
			WillReturnRows(productRows(Product{ID: 1, Name: "Sourdough Loaf", Price: 6.00, Category: "bread", Stock: 10}))

		res, err := repo.Search(context.Background(), "sourdough loaf")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Sourdough Loaf", res[0].Name)
	})

	t.Run("Falls back to substring", func(t *testing.T) {
		mock.ExpectQuery("WHERE LOWER\\(name\\) = LOWER\\(\\$1\\)").
			WithArgs("croissant").
			WillReturnRows(productRows())
		mock.ExpectQuery("WHERE name ILIKE \\$1").
			WithArgs("%croissant%").
			WillReturnRows(productRows(
				Product{ID: 2, Name: "Almond Croissant", Price: 3.50, Category: "pastry", Stock: 5},
				Product{ID: 3, Name: "Butter Croissant", Price: 3.00, Category: "pastry", Stock: 8},
			))

		res, err := repo.Search(context.Background(), "croissant")
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("No matches", func(t *testing.T) {
		mock.ExpectQuery("WHERE LOWER\\(name\\) = LOWER\\(\\$1\\)").
			WillReturnRows(productRows())
		mock.ExpectQuery("WHERE name ILIKE \\$1").
			WillReturnRows(productRows())

		res, err := repo.Search(context.Background(), "pizza")
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("WHERE LOWER\\(name\\) = LOWER\\(\\$1\\)").
			WillReturnError(errors.New("db error"))

		_, err := repo.Search(context.Background(), "bread")
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("FROM products").
			WithArgs(int64(1)).
			WillReturnRows(productRows(Product{ID: 1, Name: "Sourdough Loaf", Price: 6.00, Category: "bread", Stock: 10}))

		p, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Sourdough Loaf", p.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("FROM products").
			WithArgs(int64(99)).
			WillReturnRows(productRows())

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_AvailableStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT quantity_in_stock").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity_in_stock"}).AddRow(4))

		available, err := repo.AvailableStock(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 4, available)
	})

	t.Run("Unknown product", func(t *testing.T) {
		mock.ExpectQuery("SELECT quantity_in_stock").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity_in_stock"}))

		_, err := repo.AvailableStock(context.Background(), 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_InStockByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("WHERE quantity_in_stock > 0").
		WithArgs("pastry", int64(2), 3).
		WillReturnRows(productRows(Product{ID: 3, Name: "Butter Croissant", Price: 3.00, Category: "pastry", Stock: 8}))

	res, err := repo.InStockByCategory(context.Background(), "pastry", 2, 3)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Butter Croissant", res[0].Name)
}
