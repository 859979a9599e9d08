package models

import "time"

// MenuItem is a reference-data record describing an orderable dish or
// beverage. Menu rows are seeded by migration and never mutated by the
// running service.
type MenuItem struct {
	MenuID int64  `json:"menu_id" db:"menu_id"`
	Name   string `json:"name" db:"name"`
}

// Order is a single request for exactly one unit of one menu item,
// placed by a numbered table. There is no quantity field; a table
// wanting two portions places two orders.
type Order struct {
	OrderID     int64     `json:"order_id" db:"order_id"`
	MenuID      int64     `json:"menu_id" db:"menu_id"`
	TableNumber int       `json:"table_number" db:"table_number"`
	CookTime    int       `json:"cook_time" db:"cook_time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateOrderRequest is the JSON body for placing an order.
type CreateOrderRequest struct {
	MenuID int64 `json:"menu_id"`
}

// Validate checks the request body fields.
func (req *CreateOrderRequest) Validate() error {
	if req.MenuID < 1 {
		return ValidationError{
			Field:   "menu_id",
			Message: "menu_id must be a positive integer",
		}
	}
	return nil
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
