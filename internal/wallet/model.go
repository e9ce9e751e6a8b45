package wallet

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeDeposit    Type = "DEPOSIT"
	TypeWithdrawal Type = "WITHDRAWAL"
)

// Category tags a transaction with the lifecycle event that produced it.
// Each fee category is posted at most once per order lifecycle phase,
// enforced by guard flags on the order.
type Category string

const (
	CategoryShipping          Category = "SHIPPING"
	CategoryInsurance         Category = "INSURANCE"
	CategoryInspection        Category = "INSPECTION"
	CategoryCollection        Category = "COLLECTION"
	CategoryCOD               Category = "COD"
	CategoryReturn            Category = "RETURN"
	CategoryManual            Category = "MANUAL"
	CategoryExpense           Category = "EXPENSE"
	CategoryInventoryPurchase Category = "INVENTORY_PURCHASE"
)

var validCategories = map[Category]bool{
	CategoryShipping:          true,
	CategoryInsurance:         true,
	CategoryInspection:        true,
	CategoryCollection:        true,
	CategoryCOD:               true,
	CategoryReturn:            true,
	CategoryManual:            true,
	CategoryExpense:           true,
	CategoryInventoryPurchase: true,
}

func (c Category) Valid() bool {
	return validCategories[c]
}

// Transaction is one append-only ledger entry. Entries are never mutated
// after creation; they are only removed in bulk when their order is deleted.
type Transaction struct {
	ID        uuid.UUID  `json:"id"`
	Type      Type       `json:"type"`
	Category  Category   `json:"category"`
	Amount    float64    `json:"amount"`
	Note      string     `json:"note"`
	OrderID   *uuid.UUID `json:"orderId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
