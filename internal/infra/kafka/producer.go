package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes domain events to a single topic. The event name is the
// message key and is also carried in the "event" header.
type Producer struct {
	writer messageWriter
	topic  string
	log    *zap.Logger
}

type envelope struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

// NewProducer takes a comma-separated broker list.
func NewProducer(brokers, topic string, logger *zap.Logger) (*Producer, error) {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		BatchTimeout:           50 * time.Millisecond,
	}

	logger.Info("kafka producer created", zap.Strings("brokers", addrs), zap.String("topic", topic))
	return &Producer{writer: w, topic: topic, log: logger}, nil
}

func splitBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (p *Producer) Publish(ctx context.Context, event string, data any) error {
	id := uuid.NewString()
	value, err := json.Marshal(envelope{
		ID:         id,
		Event:      event,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("kafka: marshal %s: %w", event, err)
	}

	msg := kafka.Message{
		Key:   []byte(event),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event)},
			{Key: "event-id", Value: []byte(id)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write %s to %s: %w", event, p.topic, err)
	}

	p.log.Debug("event published", zap.String("topic", p.topic), zap.String("event", event))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
