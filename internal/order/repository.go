package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tajer-be/internal/finance"
	"tajer-be/internal/wallet"
)

type Filter struct {
	Status          *finance.OrderStatus
	ShippingCompany *string
	Limit           int32
	Offset          int32
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, f Filter) ([]*Order, error)

	// SaveWithLedger persists the mutated order and appends its ledger
	// entries in one database transaction, so a transition either fully
	// commits or leaves no trace.
	SaveWithLedger(ctx context.Context, o *Order, entries []*wallet.Transaction) error

	// CreateExchangeTx inserts the exchange order and marks the original as
	// exchanged atomically.
	CreateExchangeTx(ctx context.Context, exchange *Order, original *Order) error

	// Delete removes the order and its wallet transactions.
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	id, customer_name, customer_phone, address, product_name, shipping_company,
	status, payment_status,
	product_price, product_cost, shipping_fee, discount, total_amount_override,
	is_insured, include_inspection_fee, inspection_fee_paid_by_customer,
	shipping_insurance_deducted, inspection_fee_deducted, return_fee_deducted, collection_processed,
	exchange_of, exchange_credit,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, o *Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
	`, orderArgs(o)...)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders WHERE id = $1
	`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) List(ctx context.Context, f Filter) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	where := ""

	if f.Status != nil {
		args = append(args, *f.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if f.ShippingCompany != nil {
		args = append(args, *f.ShippingCompany)
		if where == "" {
			where = fmt.Sprintf(" WHERE shipping_company = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND shipping_company = $%d", len(args))
		}
	}
	query += where + ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *repository) SaveWithLedger(ctx context.Context, o *Order, entries []*wallet.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Full replacement of the order's mutable fields
	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET
			status = $2, payment_status = $3,
			total_amount_override = $4,
			inspection_fee_paid_by_customer = $5,
			shipping_insurance_deducted = $6, inspection_fee_deducted = $7,
			return_fee_deducted = $8, collection_processed = $9,
			updated_at = NOW()
		WHERE id = $1
	`,
		o.ID, o.Status, o.PaymentStatus,
		o.TotalAmountOverride,
		o.InspectionFeePaidByCustomer,
		o.ShippingAndInsuranceDeducted, o.InspectionFeeDeducted,
		o.ReturnFeeDeducted, o.CollectionProcessed,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}

	// 2. Append ledger entries
	for _, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now()
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO wallet_transactions (id, type, category, amount, note, order_id, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`, e.ID, e.Type, e.Category, e.Amount, e.Note, e.OrderID, e.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) CreateExchangeTx(ctx context.Context, exchange *Order, original *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if exchange.ID == uuid.Nil {
		exchange.ID = uuid.New()
	}
	now := time.Now()
	exchange.CreatedAt = now
	exchange.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
	`, orderArgs(exchange)...)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1
	`, original.ID, original.Status)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit()
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM wallet_transactions WHERE order_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit()
}

func orderArgs(o *Order) []interface{} {
	return []interface{}{
		o.ID, o.CustomerName, o.CustomerPhone, o.Address, o.ProductName, o.ShippingCompany,
		o.Status, o.PaymentStatus,
		o.ProductPrice, o.ProductCost, o.ShippingFee, o.Discount, o.TotalAmountOverride,
		o.IsInsured, o.IncludeInspectionFee, o.InspectionFeePaidByCustomer,
		o.ShippingAndInsuranceDeducted, o.InspectionFeeDeducted, o.ReturnFeeDeducted, o.CollectionProcessed,
		o.ExchangeOf, o.ExchangeCredit,
		o.CreatedAt, o.UpdatedAt,
	}
}

func scanOrder(scan func(dest ...interface{}) error) (*Order, error) {
	var o Order
	err := scan(
		&o.ID, &o.CustomerName, &o.CustomerPhone, &o.Address, &o.ProductName, &o.ShippingCompany,
		&o.Status, &o.PaymentStatus,
		&o.ProductPrice, &o.ProductCost, &o.ShippingFee, &o.Discount, &o.TotalAmountOverride,
		&o.IsInsured, &o.IncludeInspectionFee, &o.InspectionFeePaidByCustomer,
		&o.ShippingAndInsuranceDeducted, &o.InspectionFeeDeducted, &o.ReturnFeeDeducted, &o.CollectionProcessed,
		&o.ExchangeOf, &o.ExchangeCredit,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
