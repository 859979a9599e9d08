package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the repository layer. Handlers are the only
// place these are translated into HTTP statuses.
var (
	// ErrOrderNotFound is returned when no order matches the
	// (table_number, order_id) pair.
	ErrOrderNotFound = errors.New("order not found")

	// ErrMenuNotFound is returned when a referenced menu item does
	// not exist.
	ErrMenuNotFound = errors.New("menu item not found")
)

// ValidationError describes a malformed or out-of-range request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
