package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("WHERE phone_number = \\$1").
			WithArgs("5551234").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number"}).
				AddRow(7, "Maya", "5551234"))

		c, err := repo.GetByPhone(context.Background(), "5551234")
		require.NoError(t, err)
		assert.Equal(t, int64(7), c.ID)
		assert.Equal(t, "Maya", c.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("WHERE phone_number = \\$1").
			WithArgs("0000000").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number"}))

		_, err := repo.GetByPhone(context.Background(), "0000000")
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("WHERE phone_number = \\$1").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetByPhone(context.Background(), "5551234")
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number"}).
			AddRow(7, "Maya", ""))

	c, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, c.Phone)
}
