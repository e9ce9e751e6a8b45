package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tajer-be/internal/audit"
	"tajer-be/internal/finance"
	"tajer-be/internal/logger"
	"tajer-be/internal/metrics"
	"tajer-be/internal/wallet"
)

// PolicyResolver supplies the effective fee schedule for a shipping company.
// Satisfied by settings.Service.
type PolicyResolver interface {
	ResolvePolicy(ctx context.Context, company string) (finance.Policy, error)
}

type CreateInput struct {
	CustomerName    string
	CustomerPhone   string
	Address         string
	ProductName     string
	ShippingCompany string

	ProductPrice float64
	ProductCost  float64
	ShippingFee  float64
	Discount     float64

	// Insured defaults to true when nil: orders created before the insurance
	// toggle existed are treated as insured.
	Insured                     *bool
	IncludeInspectionFee        bool
	InspectionFeePaidByCustomer bool
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Order, error)
	CreateExchange(ctx context.Context, in CreateInput, originalID uuid.UUID) (*Order, error)
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, f Filter) ([]*Order, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateStatus moves the order to a new status and posts the one-time
	// fee deductions that the transition triggers.
	UpdateStatus(ctx context.Context, id uuid.UUID, next finance.OrderStatus) (*Order, error)

	// Collect settles a delivered order: deposits the collected total and
	// withdraws the COD fee. Explicit action, not a status edit.
	Collect(ctx context.Context, id uuid.UUID, totalOverride *float64) (*Order, error)

	// ReturnAfterCollection reverses a collected order: withdraws the refund
	// and the return-shipping fee. Irreversible.
	ReturnAfterCollection(ctx context.Context, id uuid.UUID) (*Order, error)

	ProfitLoss(ctx context.Context, id uuid.UUID) (finance.Breakdown, error)
}

type service struct {
	repo     Repository
	policies PolicyResolver
	auditor  audit.Recorder
}

func NewService(repo Repository, policies PolicyResolver, auditor audit.Recorder) Service {
	return &service{
		repo:     repo,
		policies: policies,
		auditor:  auditor,
	}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	o := newFromInput(in)

	if err := s.repo.Create(ctx, o); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.String("shipping_company", o.ShippingCompany),
		zap.Float64("product_price", o.ProductPrice),
	)
	return o, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, f Filter) ([]*Order, error) {
	return s.repo.List(ctx, f)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, audit.Event{Type: audit.EventOrderDeleted, OrderID: id})
	return nil
}

// UpdateStatus is the transition ledger poster. Fee categories are posted at
// most once per order, enforced by the guard flags; re-entering a
// shipped-like or return-like status is a financial no-op.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, next finance.OrderStatus) (*Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, next)
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", id.String()),
		zap.String("next_status", string(next)),
	)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == finance.StatusExchanged {
		return nil, ErrOrderTerminal
	}

	policy, err := s.policies.ResolvePolicy(ctx, o.ShippingCompany)
	if err != nil {
		return nil, err
	}

	var entries []*wallet.Transaction
	switch {
	case next.ShippedLike():
		entries = s.applyShippingFees(o, policy)
	case next.ReturnLike():
		entries = s.applyReturnFee(o, policy)
	}

	o.Status = next
	if err := s.repo.SaveWithLedger(ctx, o, entries); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_status").Inc()
		log.Error("failed to save status transition", zap.Error(err))
		return nil, err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.audit(ctx, audit.Event{Type: audit.EventStatusChanged, OrderID: o.ID, Status: string(next)})
	s.auditEntries(ctx, o.ID, entries)

	log.Info("status transition applied", zap.Int("ledger_entries", len(entries)))
	return o, nil
}

// applyShippingFees posts the one-time shipping and insurance withdrawals.
// Both are bundled under ShippingAndInsuranceDeducted. The inspection fee
// keeps its own flag and is checked independently, so an inspection fee
// enabled after the first shipping pass is still posted exactly once on a
// later re-entry.
func (s *service) applyShippingFees(o *Order, policy finance.Policy) []*wallet.Transaction {
	var entries []*wallet.Transaction

	if !o.ShippingAndInsuranceDeducted {
		if o.ShippingFee > 0 {
			entries = append(entries, withdrawal(o, wallet.CategoryShipping, o.ShippingFee, "shipping fee"))
		}
		if ins := policy.InsuranceFee(o.ProductPrice, o.ShippingFee, o.IsInsured); ins > 0 {
			entries = append(entries, withdrawal(o, wallet.CategoryInsurance, ins, "shipment insurance"))
		}
		o.ShippingAndInsuranceDeducted = true
	}

	if !o.InspectionFeeDeducted {
		if fee := policy.OrderInspectionFee(o.IncludeInspectionFee); fee > 0 {
			entries = append(entries, withdrawal(o, wallet.CategoryInspection, fee, "package inspection fee"))
			o.InspectionFeeDeducted = true
		}
	}

	return entries
}

func (s *service) applyReturnFee(o *Order, policy finance.Policy) []*wallet.Transaction {
	if o.ReturnFeeDeducted || !policy.ReturnFeeEnabled || policy.ReturnFee <= 0 {
		return nil
	}
	o.ReturnFeeDeducted = true
	return []*wallet.Transaction{
		withdrawal(o, wallet.CategoryReturn, policy.ReturnFee, "return shipping fee"),
	}
}

func (s *service) Collect(ctx context.Context, id uuid.UUID, totalOverride *float64) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Collect"),
		zap.String("order_id", id.String()),
	)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.CollectionProcessed {
		return nil, ErrAlreadyProcessed
	}
	if o.Status != finance.StatusDelivered {
		return nil, ErrInvalidStatus
	}

	policy, err := s.policies.ResolvePolicy(ctx, o.ShippingCompany)
	if err != nil {
		return nil, err
	}

	if totalOverride != nil {
		o.TotalAmountOverride = totalOverride
	}
	total := o.AmountDue()
	if o.InspectionFeePaidByCustomer {
		total += policy.OrderInspectionFee(o.IncludeInspectionFee)
	}
	total = finance.Round2(total)

	var entries []*wallet.Transaction
	if total > 0 {
		entries = append(entries, deposit(o, wallet.CategoryCollection, total, "order collection"))
	}
	if codFee := finance.CODFee(o.ProductPrice, o.ShippingFee, policy); codFee > 0 {
		entries = append(entries, withdrawal(o, wallet.CategoryCOD, codFee, "cash on delivery fee"))
	}

	o.Status = finance.StatusCollected
	o.PaymentStatus = PaymentPaid
	o.CollectionProcessed = true

	if err := s.repo.SaveWithLedger(ctx, o, entries); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("collect").Inc()
		log.Error("failed to process collection", zap.Error(err))
		return nil, err
	}

	metrics.CollectionsTotal.Inc()
	s.audit(ctx, audit.Event{Type: audit.EventStatusChanged, OrderID: o.ID, Status: string(o.Status)})
	s.auditEntries(ctx, o.ID, entries)

	log.Info("collection processed", zap.Float64("total", total))
	return o, nil
}

func (s *service) ReturnAfterCollection(ctx context.Context, id uuid.UUID) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ReturnAfterCollection"),
		zap.String("order_id", id.String()),
	)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == finance.StatusReturnedAfterReceipt {
		return nil, ErrAlreadyProcessed
	}
	if o.Status != finance.StatusCollected {
		return nil, ErrInvalidStatus
	}

	policy, err := s.policies.ResolvePolicy(ctx, o.ShippingCompany)
	if err != nil {
		return nil, err
	}

	// Refund what was collected. The product price portion is only refunded
	// when the carrier's policy says so; an inspection fee the customer
	// already paid stays with the merchant.
	refund := o.AmountDue()
	if !policy.RefundProductPrice {
		refund -= o.ProductPrice
	}
	if o.InspectionFeePaidByCustomer {
		refund -= policy.OrderInspectionFee(o.IncludeInspectionFee)
	}
	refund = finance.Round2(refund)

	var entries []*wallet.Transaction
	if refund > 0 {
		entries = append(entries, withdrawal(o, wallet.CategoryCollection, refund, "refund after collection"))
	}
	if !o.ReturnFeeDeducted && policy.ReturnFeeEnabled && policy.ReturnFee > 0 {
		entries = append(entries, withdrawal(o, wallet.CategoryReturn, policy.ReturnFee, "return shipping fee"))
		o.ReturnFeeDeducted = true
	}

	o.Status = finance.StatusReturnedAfterReceipt

	if err := s.repo.SaveWithLedger(ctx, o, entries); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("return_after_collection").Inc()
		log.Error("failed to process post-collection return", zap.Error(err))
		return nil, err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(o.Status)).Inc()
	s.audit(ctx, audit.Event{Type: audit.EventStatusChanged, OrderID: o.ID, Status: string(o.Status)})
	s.auditEntries(ctx, o.ID, entries)

	log.Info("post-collection return processed", zap.Float64("refund", refund))
	return o, nil
}

// CreateExchange creates a replacement order credited with the original
// order's amount due. When the credit covers the new total the exchange is
// immediately paid. The original becomes EXCHANGED and terminal.
func (s *service) CreateExchange(ctx context.Context, in CreateInput, originalID uuid.UUID) (*Order, error) {
	original, err := s.repo.GetByID(ctx, originalID)
	if err != nil {
		return nil, err
	}
	if original.Status == finance.StatusExchanged {
		return nil, ErrAlreadyProcessed
	}

	credit := original.AmountDue()

	exchange := newFromInput(in)
	exchange.ExchangeOf = &original.ID
	exchange.ExchangeCredit = credit
	if exchange.AmountDue() <= 0 {
		exchange.PaymentStatus = PaymentPaid
	}

	original.Status = finance.StatusExchanged

	if err := s.repo.CreateExchangeTx(ctx, exchange, original); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_exchange").Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.audit(ctx, audit.Event{Type: audit.EventStatusChanged, OrderID: original.ID, Status: string(finance.StatusExchanged)})

	logger.FromCtx(ctx).Info("exchange order created",
		zap.String("order_id", exchange.ID.String()),
		zap.String("original_id", original.ID.String()),
		zap.Float64("credit", credit),
	)
	return exchange, nil
}

func (s *service) ProfitLoss(ctx context.Context, id uuid.UUID) (finance.Breakdown, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return finance.Breakdown{}, err
	}

	policy, err := s.policies.ResolvePolicy(ctx, o.ShippingCompany)
	if err != nil {
		return finance.Breakdown{}, err
	}

	return finance.ProfitLoss(o.Financials(), policy), nil
}

func (s *service) audit(ctx context.Context, e audit.Event) {
	if s.auditor == nil {
		return
	}
	e.At = time.Now()
	s.auditor.Record(ctx, e)
}

func (s *service) auditEntries(ctx context.Context, orderID uuid.UUID, entries []*wallet.Transaction) {
	for _, e := range entries {
		metrics.LedgerEntriesTotal.WithLabelValues(string(e.Category)).Inc()
		s.audit(ctx, audit.Event{
			Type:     audit.EventLedgerPosted,
			OrderID:  orderID,
			Category: string(e.Category),
			Amount:   e.Amount,
			Note:     e.Note,
		})
	}
}

func newFromInput(in CreateInput) *Order {
	insured := true
	if in.Insured != nil {
		insured = *in.Insured
	}
	return &Order{
		ID:              uuid.New(),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Address:         in.Address,
		ProductName:     in.ProductName,
		ShippingCompany: in.ShippingCompany,

		Status:        finance.StatusAwaitingCall,
		PaymentStatus: PaymentPending,

		ProductPrice: in.ProductPrice,
		ProductCost:  in.ProductCost,
		ShippingFee:  in.ShippingFee,
		Discount:     in.Discount,

		IsInsured:                   insured,
		IncludeInspectionFee:        in.IncludeInspectionFee,
		InspectionFeePaidByCustomer: in.InspectionFeePaidByCustomer,
	}
}

func withdrawal(o *Order, cat wallet.Category, amount float64, note string) *wallet.Transaction {
	return entry(o, wallet.TypeWithdrawal, cat, amount, note)
}

func deposit(o *Order, cat wallet.Category, amount float64, note string) *wallet.Transaction {
	return entry(o, wallet.TypeDeposit, cat, amount, note)
}

func entry(o *Order, typ wallet.Type, cat wallet.Category, amount float64, note string) *wallet.Transaction {
	id := o.ID
	return &wallet.Transaction{
		ID:       uuid.New(),
		Type:     typ,
		Category: cat,
		Amount:   finance.Round2(amount),
		Note:     fmt.Sprintf("%s (order %s)", note, o.ID),
		OrderID:  &id,
	}
}
