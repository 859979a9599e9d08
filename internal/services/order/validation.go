package order

import (
	"strconv"

	"github.com/gunturaf/sukab-restaurant/internal/models"
)

const (
	minTableNumber = 1
	maxTableNumber = 100
)

// ParseTableNumber parses and validates the table_number path
// parameter. Tables are not persisted entities, so validation is a
// pure range check.
func ParseTableNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.ValidationError{
			Field:   "table_number",
			Message: "table_number must be an integer",
		}
	}
	if n < minTableNumber || n > maxTableNumber {
		return 0, models.ValidationError{
			Field:   "table_number",
			Message: "table_number must be in range of 1 to 100",
		}
	}
	return n, nil
}

// ParseOrderID parses and validates the order_id path parameter.
func ParseOrderID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.ValidationError{
			Field:   "order_id",
			Message: "order_id must be an integer",
		}
	}
	if id < 1 {
		return 0, models.ValidationError{
			Field:   "order_id",
			Message: "order_id must be a positive integer",
		}
	}
	return id, nil
}
