package order

import (
	"time"

	"github.com/google/uuid"

	"tajer-be/internal/finance"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// Order is one customer purchase record. It is created on intake and mutated
// only through explicit status-change operations.
//
// The four Deducted/Processed booleans are guard flags: once true, the
// transaction category they guard must never be posted to the wallet again
// for this order.
type Order struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	Address         string    `json:"address"`
	ProductName     string    `json:"productName"`
	ShippingCompany string    `json:"shippingCompany"`

	Status        finance.OrderStatus `json:"status"`
	PaymentStatus PaymentStatus       `json:"paymentStatus"`

	ProductPrice float64 `json:"productPrice"`
	ProductCost  float64 `json:"productCost"`
	ShippingFee  float64 `json:"shippingFee"`
	Discount     float64 `json:"discount"`

	// TotalAmountOverride replaces the computed amount due when the merchant
	// agreed on a different collection total with the customer.
	TotalAmountOverride *float64 `json:"totalAmountOverride,omitempty"`

	IsInsured                   bool `json:"isInsured"`
	IncludeInspectionFee        bool `json:"includeInspectionFee"`
	InspectionFeePaidByCustomer bool `json:"inspectionFeePaidByCustomer"`

	ShippingAndInsuranceDeducted bool `json:"shippingAndInsuranceDeducted"`
	InspectionFeeDeducted        bool `json:"inspectionFeeDeducted"`
	ReturnFeeDeducted            bool `json:"returnFeeDeducted"`
	CollectionProcessed          bool `json:"collectionProcessed"`

	// Exchange orders carry a credit from the original order; the original
	// transitions to EXCHANGED and stops all financial processing.
	ExchangeOf     *uuid.UUID `json:"exchangeOf,omitempty"`
	ExchangeCredit float64    `json:"exchangeCredit"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AmountDue is what the customer owes on collection: the override if set,
// otherwise price plus shipping minus discount, always minus any exchange
// credit.
func (o *Order) AmountDue() float64 {
	total := o.ProductPrice + o.ShippingFee - o.Discount
	if o.TotalAmountOverride != nil {
		total = *o.TotalAmountOverride
	}
	return finance.Round2(total - o.ExchangeCredit)
}

// Financials is the order's pure financial view, the input to the
// profit/loss calculator.
func (o *Order) Financials() finance.Input {
	return finance.Input{
		Status:                      o.Status,
		ProductPrice:                o.ProductPrice,
		ProductCost:                 o.ProductCost,
		ShippingFee:                 o.ShippingFee,
		IsInsured:                   o.IsInsured,
		IncludeInspectionFee:        o.IncludeInspectionFee,
		InspectionFeePaidByCustomer: o.InspectionFeePaidByCustomer,
	}
}
