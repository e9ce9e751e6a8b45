package wallet

import "errors"

var (
	ErrInvalidAmount   = errors.New("transaction amount must be positive")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidCategory = errors.New("invalid transaction category")
)
