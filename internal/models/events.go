package models

import "time"

// Event names published to the orders exchange.
const (
	EventOrderCreated   = "order_created"
	EventOrderCancelled = "order_cancelled"
)

// OrderEvent is the message published to the kitchen when an order is
// created or cancelled.
type OrderEvent struct {
	Event       string    `json:"event"`
	OrderID     int64     `json:"order_id"`
	TableNumber int       `json:"table_number"`
	MenuID      int64     `json:"menu_id,omitempty"`
	CookTime    int       `json:"cook_time,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
