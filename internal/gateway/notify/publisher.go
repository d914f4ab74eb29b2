package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"service-gestor/internal/domain"
)

// ErrEncode marks events that could not be serialized. Retrying them is pointless.
var ErrEncode = errors.New("encode status change")

// Publisher broadcasts status changes to a fanout exchange.
type Publisher struct {
	conn     Connection
	exchange string
}

// NewPublisher creates a Publisher.
func NewPublisher(conn Connection, exchange string) *Publisher {
	return &Publisher{conn: conn, exchange: exchange}
}

// Notify publishes change as a persistent JSON message.
func (p *Publisher) Notify(ctx context.Context, change domain.StatusChange) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("message id: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %q: %w", p.exchange, err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    id.String(),
		Timestamp:    time.Now().UTC(),
		Type:         "order.status_changed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish status change: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
