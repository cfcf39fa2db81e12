package demo

import (
	"context"
	"time"

	"storefront-service/internal/domain"

	"github.com/shopspring/decimal"
)

type orderRepo struct{ s *Store }

// Create echoes the order back with synthetic ids. Item ids are unique
// within the order.
func (r orderRepo) Create(_ context.Context, order *domain.Order) error {
	now := r.s.now().UTC()
	order.ID = syntheticID()
	order.CreatedAt = now
	order.UpdatedAt = now

	seen := make(map[uint64]bool, len(order.Items))
	for i := range order.Items {
		id := syntheticID()
		for seen[id] {
			id = syntheticID()
		}
		seen[id] = true
		order.Items[i].ID = id
		order.Items[i].OrderID = order.ID
	}
	return nil
}

func (r orderRepo) List(context.Context) ([]domain.Order, error) {
	return SampleOrders(r.s.now()), nil
}

func (r orderRepo) UpdateStatus(context.Context, uint64, domain.OrderStatus) (*domain.Order, error) {
	return nil, errNotDurable
}

func item(id, orderID, productID uint64, name, category, price string, qty int) domain.OrderItem {
	p := decimal.RequireFromString(price)
	return domain.OrderItem{
		ID:              id,
		OrderID:         orderID,
		ProductID:       productID,
		ProductName:     name,
		ProductCategory: category,
		ProductPrice:    p,
		Quantity:        qty,
		Subtotal:        domain.LineSubtotal(p, qty),
	}
}

// SampleOrders is the illustrative order history shown in demo mode, newest
// first.
func SampleOrders(now time.Time) []domain.Order {
	now = now.UTC()
	day := 24 * time.Hour
	sample := func(id uint64, name, email, address, total string, status domain.OrderStatus, method string, age time.Duration, items ...domain.OrderItem) domain.Order {
		created := now.Add(-age)
		return domain.Order{
			ID:              id,
			CustomerName:    name,
			CustomerEmail:   email,
			CustomerAddress: address,
			Total:           decimal.RequireFromString(total),
			Status:          status,
			PaymentStatus:   domain.PaymentCompleted,
			PaymentMethod:   method,
			CreatedAt:       created,
			UpdatedAt:       created,
			Items:           items,
		}
	}

	return []domain.Order{
		sample(1001, "John Doe", "john@example.com", "123 Main St, New York, NY 10001", "159.99",
			domain.StatusPending, domain.PaymentMethodCard, 0,
			item(1, 1001, 1, "Wireless Bluetooth Headphones", "Electronics", "79.99", 1),
			item(2, 1001, 6, "Stainless Steel Water Bottle", "Home", "24.99", 2),
			item(3, 1001, 7, "Wireless Charging Pad", "Electronics", "39.99", 1)),
		sample(1002, "Jane Smith", "jane@example.com", "456 Oak Ave, Los Angeles, CA 90001", "229.99",
			domain.StatusProcessing, domain.PaymentMethodCard, day,
			item(4, 1002, 3, "Smart Watch Pro", "Electronics", "299.99", 1)),
		sample(1003, "Bob Wilson", "bob@example.com", "789 Pine Rd, Chicago, IL 60601", "449.97",
			domain.StatusShipped, domain.PaymentMethodCard, 2*day,
			item(5, 1003, 4, "Leather Messenger Bag", "Accessories", "149.99", 1),
			item(6, 1003, 5, "Running Shoes Ultra", "Sports", "129.99", 1),
			item(7, 1003, 8, "Yoga Mat Premium", "Sports", "49.99", 1)),
		sample(1004, "Alice Brown", "alice@example.com", "321 Elm St, Houston, TX 77001", "89.97",
			domain.StatusDelivered, domain.PaymentMethodCOD, 3*day,
			item(8, 1004, 2, "Organic Cotton T-Shirt", "Clothing", "29.99", 2),
			item(9, 1004, 10, "Ceramic Coffee Mug Set", "Home", "34.99", 1)),
	}
}
