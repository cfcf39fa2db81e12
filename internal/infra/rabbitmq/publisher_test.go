package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	ch := new(mockChannel)
	var sent amqp.Publishing
	ch.On("Publish", "storefront.exchange", "order.created", false, false, mock.AnythingOfType("amqp.Publishing")).
		Return(nil).
		Run(func(args mock.Arguments) { sent = args.Get(4).(amqp.Publishing) })

	p := newPublisher(nil, ch, "storefront.exchange", zap.NewNop())
	err := p.Publish(context.Background(), "order.created", map[string]any{"orderId": 7})
	require.NoError(t, err)

	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, amqp.Persistent, sent.DeliveryMode)

	var env struct {
		ID    string         `json:"id"`
		Event string         `json:"event"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(sent.Body, &env))
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, "order.created", env.Event)
	assert.Equal(t, float64(7), env.Data["orderId"])
	ch.AssertExpectations(t)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := new(mockChannel)
	ch.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	p := newPublisher(nil, ch, "x", zap.NewNop())
	err := p.Publish(context.Background(), "message.received", struct{}{})

	assert.ErrorContains(t, err, "channel closed")
	assert.ErrorContains(t, err, "message.received")
}

func TestPublisher_CancelledContext(t *testing.T) {
	ch := new(mockChannel)
	p := newPublisher(nil, ch, "x", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, "order.created", nil), context.Canceled)
	ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_Close(t *testing.T) {
	ch := new(mockChannel)
	ch.On("Close").Return(nil).Once()

	p := newPublisher(nil, ch, "x", zap.NewNop())
	assert.NoError(t, p.Close())
	ch.AssertExpectations(t)
}
