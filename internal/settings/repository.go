package settings

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	GetGlobal(ctx context.Context) (*Global, error)
	UpdateGlobal(ctx context.Context, g *Global) error
	ListCompanies(ctx context.Context) ([]*ShippingCompany, error)
	GetCompany(ctx context.Context, name string) (*ShippingCompany, error)
	UpsertCompany(ctx context.Context, c *ShippingCompany) error
	DeleteCompany(ctx context.Context, name string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const globalColumns = `
	enable_insurance, insurance_rate,
	enable_inspection, inspection_fee,
	enable_return_shipping, return_fee,
	enable_cod, cod_threshold, cod_rate, cod_tax_rate,
	updated_at`

// GetGlobal reads the singleton settings row. A fresh database seeds the row
// via migration, so a missing row is a real error here.
func (r *repository) GetGlobal(ctx context.Context) (*Global, error) {
	var g Global
	err := r.db.QueryRowContext(ctx, `
		SELECT `+globalColumns+`
		FROM fee_settings WHERE id = 1
	`).Scan(
		&g.EnableInsurance, &g.InsuranceRate,
		&g.EnableInspection, &g.InspectionFee,
		&g.EnableReturnShipping, &g.ReturnFee,
		&g.EnableCOD, &g.CODThreshold, &g.CODRate, &g.CODTaxRate,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) UpdateGlobal(ctx context.Context, g *Global) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE fee_settings SET
			enable_insurance = $1, insurance_rate = $2,
			enable_inspection = $3, inspection_fee = $4,
			enable_return_shipping = $5, return_fee = $6,
			enable_cod = $7, cod_threshold = $8, cod_rate = $9, cod_tax_rate = $10,
			updated_at = NOW()
		WHERE id = 1
	`,
		g.EnableInsurance, g.InsuranceRate,
		g.EnableInspection, g.InspectionFee,
		g.EnableReturnShipping, g.ReturnFee,
		g.EnableCOD, g.CODThreshold, g.CODRate, g.CODTaxRate,
	)
	return err
}

const companyColumns = `
	name, use_custom_fees,
	insurance_rate, inspection_fee,
	return_fee_enabled, return_fee,
	cod_enabled, cod_threshold, cod_rate, cod_tax_rate,
	refund_product_price,
	created_at, updated_at`

func (r *repository) ListCompanies(ctx context.Context) ([]*ShippingCompany, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+companyColumns+`
		FROM shipping_companies
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*ShippingCompany
	for rows.Next() {
		c, err := scanCompany(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *repository) GetCompany(ctx context.Context, name string) (*ShippingCompany, error) {
	c, err := scanCompany(r.db.QueryRowContext(ctx, `
		SELECT `+companyColumns+`
		FROM shipping_companies WHERE name = $1
	`, name).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repository) UpsertCompany(ctx context.Context, c *ShippingCompany) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shipping_companies (
			name, use_custom_fees,
			insurance_rate, inspection_fee,
			return_fee_enabled, return_fee,
			cod_enabled, cod_threshold, cod_rate, cod_tax_rate,
			refund_product_price
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (name) DO UPDATE SET
			use_custom_fees = EXCLUDED.use_custom_fees,
			insurance_rate = EXCLUDED.insurance_rate,
			inspection_fee = EXCLUDED.inspection_fee,
			return_fee_enabled = EXCLUDED.return_fee_enabled,
			return_fee = EXCLUDED.return_fee,
			cod_enabled = EXCLUDED.cod_enabled,
			cod_threshold = EXCLUDED.cod_threshold,
			cod_rate = EXCLUDED.cod_rate,
			cod_tax_rate = EXCLUDED.cod_tax_rate,
			refund_product_price = EXCLUDED.refund_product_price,
			updated_at = NOW()
	`,
		c.Name, c.Override.UseCustomFees,
		c.Override.InsuranceRate, c.Override.InspectionFee,
		c.Override.ReturnFeeEnabled, c.Override.ReturnFee,
		c.Override.CODEnabled, c.Override.CODThreshold, c.Override.CODRate, c.Override.CODTaxRate,
		c.Override.RefundProductPrice,
	)
	return err
}

func (r *repository) DeleteCompany(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM shipping_companies WHERE name = $1
	`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func scanCompany(scan func(dest ...interface{}) error) (*ShippingCompany, error) {
	var c ShippingCompany
	err := scan(
		&c.Name, &c.Override.UseCustomFees,
		&c.Override.InsuranceRate, &c.Override.InspectionFee,
		&c.Override.ReturnFeeEnabled, &c.Override.ReturnFee,
		&c.Override.CODEnabled, &c.Override.CODThreshold, &c.Override.CODRate, &c.Override.CODTaxRate,
		&c.Override.RefundProductPrice,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
