package wallet

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tajer-be/internal/finance"
	"tajer-be/internal/logger"
)

type Service interface {
	Record(ctx context.Context, t *Transaction) error
	List(ctx context.Context, category *Category, limit, offset int32) ([]*Transaction, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*Transaction, error)
	Balance(ctx context.Context) (float64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Record validates and appends a single ledger entry. The ledger is
// append-only; there is no update path.
func (s *service) Record(ctx context.Context, t *Transaction) error {
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if t.Type != TypeDeposit && t.Type != TypeWithdrawal {
		return ErrInvalidType
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	t.Amount = finance.Round2(t.Amount)

	if err := s.repo.Append(ctx, t); err != nil {
		logger.FromCtx(ctx).Error("failed to append wallet transaction",
			zap.String("category", string(t.Category)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, category *Category, limit, offset int32) ([]*Transaction, error) {
	return s.repo.List(ctx, category, limit, offset)
}

func (s *service) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListByOrder(ctx, orderID)
}

func (s *service) Balance(ctx context.Context) (float64, error) {
	return s.repo.Balance(ctx)
}
