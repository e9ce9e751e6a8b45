package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, t *Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, category *Category, limit, offset int32) ([]*Transaction, error) {
	args := m.Called(ctx, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func (m *MockRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*Transaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func (m *MockRepository) Balance(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		tx := &Transaction{Type: TypeDeposit, Category: CategoryManual, Amount: 100.004}
		repo.On("Append", ctx, tx).Return(nil)

		err := svc.Record(ctx, tx)

		assert.NoError(t, err)
		assert.Equal(t, 100.0, tx.Amount) // rounded to cents
		repo.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		err := svc.Record(ctx, &Transaction{Type: TypeDeposit, Category: CategoryManual, Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidAmount)

		err = svc.Record(ctx, &Transaction{Type: TypeDeposit, Category: CategoryManual, Amount: -5})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		err := svc.Record(ctx, &Transaction{Type: "TRANSFER", Category: CategoryManual, Amount: 10})
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("RejectsUnknownCategory", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		err := svc.Record(ctx, &Transaction{Type: TypeDeposit, Category: "BONUS", Amount: 10})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Append", ctx, mock.Anything).Return(errors.New("db down"))

		err := svc.Record(ctx, &Transaction{Type: TypeDeposit, Category: CategoryManual, Amount: 10})
		assert.Error(t, err)
	})
}

func TestService_Balance(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Balance", mock.Anything).Return(510.25, nil)

	balance, err := svc.Balance(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 510.25, balance)
}
