package order

import (
	"context"
	"fmt"

	"github.com/gunturaf/sukab-restaurant/internal/logger"
	"github.com/gunturaf/sukab-restaurant/internal/models"
)

// Store is the persistence surface the service depends on. The
// concrete implementation is the PostgreSQL Repository; tests use an
// in-memory fake.
type Store interface {
	CreateOrder(ctx context.Context, tableNumber int, menuID int64, cookTime int) (*models.Order, error)
	ListOrders(ctx context.Context, tableNumber int) ([]models.Order, error)
	GetOrder(ctx context.Context, tableNumber int, orderID int64) (*models.Order, error)
	DeleteOrder(ctx context.Context, tableNumber int, orderID int64) error
	GetMenuItem(ctx context.Context, menuID int64) (*models.MenuItem, error)
	Ping(ctx context.Context) error
}

// EventPublisher publishes order lifecycle events to the kitchen.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	PublishOrderCancelled(ctx context.Context, tableNumber int, orderID int64) error
}

// Service implements order placement, listing, inspection, and
// cancellation on top of the Store.
type Service struct {
	store     Store
	cookTimes *CookTimeGenerator
	events    EventPublisher
	logger    *logger.Logger
}

// NewService creates the order service. events may be nil when
// messaging is not configured.
func NewService(store Store, cookTimes *CookTimeGenerator, events EventPublisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		cookTimes: cookTimes,
		events:    events,
		logger:    log,
	}
}

// CreateOrder places a new order for the table. The referenced menu
// item is checked first; the orders table carries no foreign key on
// menu_id, so without this check an invalid id would be accepted
// silently. No row is inserted when the check fails.
func (s *Service) CreateOrder(ctx context.Context, tableNumber int, req *models.CreateOrderRequest, requestID string) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.GetMenuItem(ctx, req.MenuID); err != nil {
		return nil, err
	}

	order, err := s.store.CreateOrder(ctx, tableNumber, req.MenuID, s.cookTimes.Minutes())
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug("order_created", "Order created", requestID, map[string]interface{}{
		"order_id":     order.OrderID,
		"table_number": order.TableNumber,
		"menu_id":      order.MenuID,
		"cook_time":    order.CookTime,
	})

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, order); err != nil {
			// The order row is already committed; a broken broker
			// must not fail the request.
			s.logger.Error("event_publish_failed", "Failed to publish order created event", requestID, err, map[string]interface{}{
				"order_id": order.OrderID,
			})
		}
	}

	return order, nil
}

// ListOrders returns every order for the table, oldest first.
func (s *Service) ListOrders(ctx context.Context, tableNumber int) ([]models.Order, error) {
	return s.store.ListOrders(ctx, tableNumber)
}

// GetOrder returns a single order scoped by table and id.
func (s *Service) GetOrder(ctx context.Context, tableNumber int, orderID int64) (*models.Order, error) {
	return s.store.GetOrder(ctx, tableNumber, orderID)
}

// CancelOrder deletes the order scoped by table and id. A repeated
// cancel of the same order fails with ErrOrderNotFound rather than
// silently succeeding.
func (s *Service) CancelOrder(ctx context.Context, tableNumber int, orderID int64, requestID string) error {
	if err := s.store.DeleteOrder(ctx, tableNumber, orderID); err != nil {
		return err
	}

	s.logger.Debug("order_cancelled", "Order cancelled", requestID, map[string]interface{}{
		"order_id":     orderID,
		"table_number": tableNumber,
	})

	if s.events != nil {
		if err := s.events.PublishOrderCancelled(ctx, tableNumber, orderID); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish order cancelled event", requestID, err, map[string]interface{}{
				"order_id": orderID,
			})
		}
	}

	return nil
}

// HealthCheck reports whether the database is reachable.
func (s *Service) HealthCheck(ctx context.Context) bool {
	return s.store.Ping(ctx) == nil
}
