package audit

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventStatusChanged EventType = "ORDER_STATUS_CHANGED"
	EventLedgerPosted  EventType = "LEDGER_POSTED"
	EventOrderDeleted  EventType = "ORDER_DELETED"
)

// Event is one audit record emitted for every order transition and ledger
// posting. Delivery is best effort; losing an event never fails the
// operation that produced it.
type Event struct {
	Type     EventType `json:"type"`
	OrderID  uuid.UUID `json:"orderId"`
	Status   string    `json:"status,omitempty"`
	Category string    `json:"category,omitempty"`
	Amount   float64   `json:"amount,omitempty"`
	Note     string    `json:"note,omitempty"`
	At       time.Time `json:"at"`
}
