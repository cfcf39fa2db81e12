package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra/metrics"
)

type OrderService struct {
	stores  *StoreSelector
	events  *EventDispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewOrderService(stores *StoreSelector, events *EventDispatcher, m *metrics.Metrics, logger *zap.Logger) *OrderService {
	return &OrderService{stores: stores, events: events, metrics: m, log: logger}
}

// Place validates the checkout, then stores the order with its items in one
// transaction. When the store is down the order is echoed back unsaved and
// the returned flag is true.
func (u *OrderService) Place(ctx context.Context, in domain.PlaceOrderInput) (*domain.Order, bool, error) {
	if err := validateCheckout(in); err != nil {
		return nil, false, err
	}

	order := buildOrder(in)

	store := u.stores.Select(ctx, "placeOrder")
	if err := store.Orders().Create(ctx, order); err != nil {
		u.log.Error("failed to save order", zap.String("customer_email", order.CustomerEmail), zap.Error(err))
		return nil, false, err
	}
	u.metrics.RecordOrder(order.PaymentMethod, store.Demo())

	if !store.Demo() {
		u.events.Dispatch(domain.EventOrderCreated, domain.OrderCreatedEvent{
			EventID:       uuid.NewString(),
			OrderID:       order.ID,
			CustomerEmail: order.CustomerEmail,
			Total:         order.Total,
			ItemCount:     len(order.Items),
			PaymentStatus: order.PaymentStatus,
			CreatedAt:     order.CreatedAt,
		})
	}

	return order, store.Demo(), nil
}

func validateCheckout(in domain.PlaceOrderInput) error {
	if len(in.Items) == 0 {
		return domain.Errorf(domain.ErrInvalidInput, "No items in order")
	}
	c := in.Customer
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Address) == "" {
		return domain.Errorf(domain.ErrInvalidInput, "Invalid customer information")
	}
	for i, it := range in.Items {
		if it.Quantity < 1 {
			return domain.Errorf(domain.ErrInvalidInput, "Item %d: quantity must be at least 1", i+1)
		}
		if it.Price.IsNegative() {
			return domain.Errorf(domain.ErrInvalidInput, "Item %d: price must not be negative", i+1)
		}
	}
	return nil
}

// buildOrder snapshots the submitted line items. The total is kept exactly
// as submitted.
func buildOrder(in domain.PlaceOrderInput) *domain.Order {
	method := in.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodCard
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		category := it.Category
		if category == "" {
			category = domain.UnknownCategory
		}
		items = append(items, domain.OrderItem{
			ProductID:       it.ProductID,
			ProductName:     it.Name,
			ProductCategory: category,
			ProductPrice:    it.Price,
			Quantity:        it.Quantity,
			Subtotal:        domain.LineSubtotal(it.Price, it.Quantity),
		})
	}

	return &domain.Order{
		CustomerName:    in.Customer.Name,
		CustomerEmail:   in.Customer.Email,
		CustomerAddress: in.Customer.Address,
		Total:           in.Total,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentStatusFor(method),
		PaymentMethod:   method,
		Items:           items,
	}
}

func (u *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	store := u.stores.Select(ctx, "listOrders")
	orders, err := store.Orders().List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// UpdateStatus rejects unknown statuses before touching the store.
func (u *OrderService) UpdateStatus(ctx context.Context, id uint64, status string) (*domain.Order, error) {
	st := domain.OrderStatus(status)
	if !st.Valid() {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Invalid status")
	}

	store := u.stores.Select(ctx, "updateOrderStatus")
	order, err := store.Orders().UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "Order not found")
	}

	u.events.Dispatch(domain.EventOrderStatusChanged, domain.OrderStatusChangedEvent{
		EventID:   uuid.NewString(),
		OrderID:   order.ID,
		Status:    order.Status,
		UpdatedAt: order.UpdatedAt,
	})
	return order, nil
}
