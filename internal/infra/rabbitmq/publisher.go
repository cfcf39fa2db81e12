package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type Publisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	channel  channel
	exchange string
	log      *zap.Logger
}

// Envelope is the body of every published message; the event name doubles
// as the routing key.
type Envelope struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

func NewPublisher(amqpURL, exchange string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: connect: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange %s: %w", exchange, err)
	}

	return newPublisher(conn, ch, exchange, logger), nil
}

func newPublisher(conn *amqp.Connection, ch channel, exchange string, logger *zap.Logger) *Publisher {
	return &Publisher{conn: conn, channel: ch, exchange: exchange, log: logger}
}

func (p *Publisher) Publish(ctx context.Context, event string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(Envelope{
		ID:         uuid.NewString(),
		Event:      event,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal %s: %w", event, err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.channel.Publish(
		p.exchange,
		event,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", event, err)
	}

	p.log.Debug("event published", zap.String("exchange", p.exchange), zap.String("event", event))
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
