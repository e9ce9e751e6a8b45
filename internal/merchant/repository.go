package merchant

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"tajer-be/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, email, password, storeName string) (Merchant, error)
	FindByEmail(ctx context.Context, email string) (Merchant, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, password, storeName string) (Merchant, error) {
	log := logger.FromCtx(ctx)

	var m Merchant
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO merchants (email, password, store_name) VALUES ($1, $2, $3) RETURNING id, email, password, store_name, created_at",
		email, password, storeName,
	).Scan(&m.ID, &m.Email, &m.Password, &m.StoreName, &m.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert merchant",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return m, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Merchant, error) {
	var m Merchant
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, password, store_name, created_at FROM merchants WHERE email=$1",
		email,
	).Scan(&m.ID, &m.Email, &m.Password, &m.StoreName, &m.CreatedAt)

	return m, err
}
