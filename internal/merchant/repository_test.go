package merchant

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "store_name", "created_at"}).
			AddRow(1, "seller@tajer.app", "hashed", "My Store", now)

		mock.ExpectQuery("INSERT INTO merchants").
			WithArgs("seller@tajer.app", "hashed", "My Store").
			WillReturnRows(rows)

		m, err := repo.Create(context.Background(), "seller@tajer.app", "hashed", "My Store")
		require.NoError(t, err)
		assert.Equal(t, 1, m.ID)
		assert.Equal(t, "My Store", m.StoreName)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO merchants").
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Create(context.Background(), "seller@tajer.app", "hashed", "My Store")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "store_name", "created_at"}).
			AddRow(3, "seller@tajer.app", "hashed", "My Store", now)

		mock.ExpectQuery("SELECT id, email, password, store_name, created_at FROM merchants").
			WithArgs("seller@tajer.app").
			WillReturnRows(rows)

		m, err := repo.FindByEmail(context.Background(), "seller@tajer.app")
		require.NoError(t, err)
		assert.Equal(t, 3, m.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password, store_name, created_at FROM merchants").
			WithArgs("missing@tajer.app").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByEmail(context.Background(), "missing@tajer.app")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
