package wallet

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Append(ctx context.Context, t *Transaction) error
	List(ctx context.Context, category *Category, limit, offset int32) ([]*Transaction, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*Transaction, error)
	Balance(ctx context.Context) (float64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, t *Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wallet_transactions (id, type, category, amount, note, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.ID, t.Type, t.Category, t.Amount, t.Note, t.OrderID, t.CreatedAt)
	return err
}

func (r *repository) List(ctx context.Context, category *Category, limit, offset int32) ([]*Transaction, error) {
	query := `
		SELECT id, type, category, amount, note, order_id, created_at
		FROM wallet_transactions
	`
	args := []interface{}{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *repository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, category, amount, note, order_id, created_at
		FROM wallet_transactions
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Balance is the running sum of deposits minus withdrawals, computed in SQL
// so the ledger stays the single source of truth.
func (r *repository) Balance(ctx context.Context) (float64, error) {
	var balance float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(CASE WHEN type = 'DEPOSIT' THEN amount ELSE -amount END), 0)
		FROM wallet_transactions
	`).Scan(&balance)
	return balance, err
}

func scanTransactions(rows *sql.Rows) ([]*Transaction, error) {
	var list []*Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Category, &t.Amount, &t.Note, &t.OrderID, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
