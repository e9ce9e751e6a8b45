package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		tx := &Transaction{
			Type:     TypeWithdrawal,
			Category: CategoryShipping,
			Amount:   45,
			Note:     "shipping fee",
		}

		mock.ExpectExec(`INSERT INTO wallet_transactions`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Append(context.Background(), tx)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tx.ID)
		assert.False(t, tx.CreatedAt.IsZero())
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO wallet_transactions`).
			WillReturnError(errors.New("database error"))

		err := repo.Append(context.Background(), &Transaction{
			Type: TypeDeposit, Category: CategoryCollection, Amount: 550,
		})
		assert.Error(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	orderID := uuid.New()

	t.Run("All", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "type", "category", "amount", "note", "order_id", "created_at"}).
			AddRow(uuid.New(), "DEPOSIT", "COLLECTION", 550.0, "collected", orderID, time.Now()).
			AddRow(uuid.New(), "WITHDRAWAL", "COD", 2.28, "cod fee", orderID, time.Now())

		mock.ExpectQuery(`SELECT .* FROM wallet_transactions ORDER BY created_at DESC`).
			WillReturnRows(rows)

		list, err := repo.List(context.Background(), nil, 0, 0)
		assert.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, CategoryCollection, list[0].Category)
	})

	t.Run("FilteredByCategory", func(t *testing.T) {
		cat := CategoryManual
		rows := sqlmock.NewRows([]string{"id", "type", "category", "amount", "note", "order_id", "created_at"}).
			AddRow(uuid.New(), "DEPOSIT", "MANUAL", 100.0, "top up", nil, time.Now())

		mock.ExpectQuery(`SELECT .* FROM wallet_transactions WHERE category = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(cat, int32(10), int32(0)).
			WillReturnRows(rows)

		list, err := repo.List(context.Background(), &cat, 10, 0)
		assert.NoError(t, err)
		require.Len(t, list, 1)
		assert.Nil(t, list[0].OrderID)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM wallet_transactions`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.List(context.Background(), nil, 0, 0)
		assert.Error(t, err)
	})
}

func TestRepository_Balance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM`).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(1234.56))

		balance, err := repo.Balance(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1234.56, balance)
	})

	t.Run("EmptyLedgerIsZero", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM`).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(0.0))

		balance, err := repo.Balance(context.Background())
		assert.NoError(t, err)
		assert.Zero(t, balance)
	})
}
