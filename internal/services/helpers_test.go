package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra/metrics"
	"storefront-service/internal/mocks"
	"storefront-service/internal/repository/demo"
)

type testEnv struct {
	live     *mocks.MockStore
	prober   *mocks.MockProber
	pub      *mocks.MockPublisher
	metrics  *metrics.Metrics
	selector *StoreSelector
	events   *EventDispatcher
}

// newTestEnv wires a selector whose probe answers with available.
func newTestEnv(t *testing.T, available bool) *testEnv {
	t.Helper()
	env := &testEnv{
		live:    mocks.NewMockStore(),
		prober:  new(mocks.MockProber),
		pub:     new(mocks.MockPublisher),
		metrics: metrics.New(),
	}
	env.prober.On("Probe", mock.Anything).Return(available)

	log := zap.NewNop()
	env.selector = NewStoreSelector(env.live, demo.NewStore(), env.prober, env.metrics, log)
	env.events = NewEventDispatcher(env.pub, env.metrics, log)
	return env
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func widgetCheckout(paymentMethod string) domain.PlaceOrderInput {
	return domain.PlaceOrderInput{
		Items: []domain.LineItemInput{
			{ProductID: 1, Name: "Widget", Price: dec("10.00"), Quantity: 3},
		},
		Customer:      domain.Customer{Name: "A", Email: "a@b.com", Address: "1 Rd"},
		Total:         dec("30.00"),
		PaymentMethod: paymentMethod,
	}
}

// assignIDs mimics the live repository filling in generated keys.
func assignIDs(orderID uint64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		o := args.Get(1).(*domain.Order)
		o.ID = orderID
		for i := range o.Items {
			o.Items[i].ID = uint64(i + 1)
			o.Items[i].OrderID = orderID
		}
	}
}
