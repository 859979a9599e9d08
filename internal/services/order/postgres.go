package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gunturaf/sukab-restaurant/internal/database"
	"github.com/gunturaf/sukab-restaurant/internal/models"
)

// Repository is the only component issuing queries against the orders
// and menus tables. Every keyed read and mutation is scoped by
// (table_number, order_id) together, never by order_id alone, so one
// table can never touch another table's orders.
type Repository struct {
	db *database.DB
}

// NewRepository creates a repository backed by the shared pool.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// CreateOrder inserts a new order row and returns it fully populated
// with the server-assigned order_id and created_at.
func (r *Repository) CreateOrder(ctx context.Context, tableNumber int, menuID int64, cookTime int) (*models.Order, error) {
	order := &models.Order{
		MenuID:      menuID,
		TableNumber: tableNumber,
		CookTime:    cookTime,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (menu_id, table_number, cook_time)
		 VALUES ($1, $2, $3)
		 RETURNING order_id, created_at`,
		menuID, tableNumber, cookTime).Scan(&order.OrderID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	return order, nil
}

// ListOrders returns all orders for a table in ascending order_id
// order. An empty table yields an empty slice, not an error.
func (r *Repository) ListOrders(ctx context.Context, tableNumber int) ([]models.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT order_id, menu_id, table_number, cook_time, created_at
		 FROM orders
		 WHERE table_number = $1
		 ORDER BY order_id ASC`,
		tableNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.OrderID, &o.MenuID, &o.TableNumber, &o.CookTime, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}

// GetOrder returns the order matching both table_number and order_id.
func (r *Repository) GetOrder(ctx context.Context, tableNumber int, orderID int64) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(ctx,
		`SELECT order_id, menu_id, table_number, cook_time, created_at
		 FROM orders
		 WHERE table_number = $1 AND order_id = $2`,
		tableNumber, orderID).Scan(&o.OrderID, &o.MenuID, &o.TableNumber, &o.CookTime, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &o, nil
}

// DeleteOrder deletes the order matching both table_number and
// order_id. Deleting an order that does not exist, including one that
// was already deleted, returns ErrOrderNotFound.
func (r *Repository) DeleteOrder(ctx context.Context, tableNumber int, orderID int64) error {
	var deletedID int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM orders
		 WHERE table_number = $1 AND order_id = $2
		 RETURNING order_id`,
		tableNumber, orderID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// GetMenuItem returns the menu item with the given id.
func (r *Repository) GetMenuItem(ctx context.Context, menuID int64) (*models.MenuItem, error) {
	var m models.MenuItem
	err := r.db.QueryRow(ctx,
		`SELECT menu_id, name FROM menus WHERE menu_id = $1`,
		menuID).Scan(&m.MenuID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return &m, nil
}

// Ping reports database reachability for health checks.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
