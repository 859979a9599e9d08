package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/gunturaf/sukab-restaurant/internal/logger"
	"github.com/gunturaf/sukab-restaurant/internal/models"
)

// Publisher publishes order lifecycle events to the orders exchange so
// the kitchen can pick them up.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a message publisher.
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishOrderCreated announces a newly placed order.
func (p *Publisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	event := models.OrderEvent{
		Event:       models.EventOrderCreated,
		OrderID:     order.OrderID,
		TableNumber: order.TableNumber,
		MenuID:      order.MenuID,
		CookTime:    order.CookTime,
		Timestamp:   time.Now().UTC(),
	}
	return p.publish(ctx, "order.created", event)
}

// PublishOrderCancelled announces a cancelled order.
func (p *Publisher) PublishOrderCancelled(ctx context.Context, tableNumber int, orderID int64) error {
	event := models.OrderEvent{
		Event:       models.EventOrderCancelled,
		OrderID:     orderID,
		TableNumber: tableNumber,
		Timestamp:   time.Now().UTC(),
	}
	return p.publish(ctx, "order.cancelled", event)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event models.OrderEvent) error {
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		ordersExchange, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("event_published",
		fmt.Sprintf("Published %s event", event.Event),
		"", map[string]interface{}{
			"routing_key": routingKey,
			"order_id":    event.OrderID,
		})

	return nil
}

// Close closes the publisher's connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
