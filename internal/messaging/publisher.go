package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"qr-menu/internal/logger"
	"qr-menu/internal/models"
)

// MenuEvent is the message published on every menu change.
type MenuEvent struct {
	Event     string          `json:"event"`
	Item      models.MenuItem `json:"item"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher publishes menu change events to the menu_events exchange.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a new event publisher.
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishMenuEvent publishes an event such as "menu.created" with the item it
// concerns. The event name doubles as the routing key.
func (p *Publisher) PublishMenuEvent(ctx context.Context, event string, item models.MenuItem) error {
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(MenuEvent{
		Event:     event,
		Item:      item,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: 2, // persistent
		Timestamp:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		"menu_events", // exchange
		event,         // routing key
		false,         // mandatory
		false,         // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event, err)
	}

	p.logger.Debug("event_published", "", fmt.Sprintf("Published %s for item %d", event, item.ID))
	return nil
}

// Close closes the underlying connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
