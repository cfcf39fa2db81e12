package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront-service/internal/infra/metrics"
)

// EventPublisher delivers one domain event to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event string, data any) error
}

// NopPublisher discards events. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

const publishTimeout = 5 * time.Second

// EventDispatcher publishes in the background so a slow or broken broker
// never delays or fails the request that produced the event.
type EventDispatcher struct {
	pub     EventPublisher
	metrics *metrics.Metrics
	log     *zap.Logger
	wg      sync.WaitGroup
}

func NewEventDispatcher(pub EventPublisher, m *metrics.Metrics, logger *zap.Logger) *EventDispatcher {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &EventDispatcher{pub: pub, metrics: m, log: logger}
}

func (d *EventDispatcher) Dispatch(event string, data any) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		err := d.pub.Publish(ctx, event, data)
		d.metrics.RecordEvent(event, err)
		if err != nil {
			d.log.Error("failed to publish event", zap.String("event", event), zap.Error(err))
			return
		}
		d.log.Debug("event published", zap.String("event", event))
	}()
}

// Wait blocks until every dispatched event has been handed off or failed.
func (d *EventDispatcher) Wait() {
	d.wg.Wait()
}
