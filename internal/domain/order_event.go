package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventMessageReceived    = "message.received"
)

type OrderCreatedEvent struct {
	EventID       string          `json:"eventId"`
	OrderID       uint64          `json:"orderId"`
	CustomerEmail string          `json:"customerEmail"`
	Total         decimal.Decimal `json:"total"`
	ItemCount     int             `json:"itemCount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	EventID   string      `json:"eventId"`
	OrderID   uint64      `json:"orderId"`
	Status    OrderStatus `json:"status"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type MessageReceivedEvent struct {
	EventID   string    `json:"eventId"`
	MessageID uint64    `json:"messageId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
