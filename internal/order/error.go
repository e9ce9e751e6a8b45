package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyProcessed = errors.New("order already processed")
	ErrInvalidStatus    = errors.New("operation not allowed in current order status")
	ErrOrderTerminal    = errors.New("exchanged orders accept no further changes")
	ErrUnknownStatus    = errors.New("unknown order status")
)
