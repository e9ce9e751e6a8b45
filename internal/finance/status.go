package finance

// OrderStatus is the order lifecycle state. It lives in the finance package
// because the profit/loss formula table and the ledger posting rules are
// keyed by it.
type OrderStatus string

const (
	StatusAwaitingCall         OrderStatus = "AWAITING_CALL"
	StatusUnderReview          OrderStatus = "UNDER_REVIEW"
	StatusInProgress           OrderStatus = "IN_PROGRESS"
	StatusShipped              OrderStatus = "SHIPPED"
	StatusInTransit            OrderStatus = "IN_TRANSIT"
	StatusDelivered            OrderStatus = "DELIVERED"
	StatusCollected            OrderStatus = "COLLECTED"
	StatusReturned             OrderStatus = "RETURNED"
	StatusDeliveryFailed       OrderStatus = "DELIVERY_FAILED"
	StatusPartialReturn        OrderStatus = "PARTIAL_RETURN"
	StatusReturnedAfterReceipt OrderStatus = "RETURNED_AFTER_RECEIPT"
	StatusCanceled             OrderStatus = "CANCELED"
	StatusExchanged            OrderStatus = "EXCHANGED"
)

var validStatuses = map[OrderStatus]bool{
	StatusAwaitingCall:         true,
	StatusUnderReview:          true,
	StatusInProgress:           true,
	StatusShipped:              true,
	StatusInTransit:            true,
	StatusDelivered:            true,
	StatusCollected:            true,
	StatusReturned:             true,
	StatusDeliveryFailed:       true,
	StatusPartialReturn:        true,
	StatusReturnedAfterReceipt: true,
	StatusCanceled:             true,
	StatusExchanged:            true,
}

func (s OrderStatus) Valid() bool {
	return validStatuses[s]
}

// ShippedLike reports whether entering this status triggers the one-time
// shipping/insurance deduction.
func (s OrderStatus) ShippedLike() bool {
	return s == StatusShipped || s == StatusInTransit
}

// ReturnLike reports whether entering this status triggers the one-time
// return-shipping deduction.
func (s OrderStatus) ReturnLike() bool {
	return s == StatusReturned || s == StatusDeliveryFailed
}
