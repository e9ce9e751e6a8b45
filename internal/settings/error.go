package settings

import "errors"

var (
	ErrCompanyNotFound = errors.New("shipping company not found")
	ErrEmptyName       = errors.New("shipping company name is required")
)
