package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

func (s OrderStatus) Valid() bool {
	for _, v := range orderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"

	UnknownCategory = "Unknown"
)

// PaymentStatusFor derives the initial payment status from the payment method:
// cash on delivery stays pending, everything else is considered paid.
func PaymentStatusFor(method string) PaymentStatus {
	if method == PaymentMethodCOD {
		return PaymentPending
	}
	return PaymentCompleted
}

type Order struct {
	ID              uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName    string          `json:"customer_name" gorm:"type:varchar(255);not null"`
	CustomerEmail   string          `json:"customer_email" gorm:"type:varchar(255);not null"`
	CustomerAddress string          `json:"customer_address" gorm:"type:text;not null"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(50);not null"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"type:varchar(50);not null"`
	PaymentMethod   string          `json:"payment_method" gorm:"type:varchar(50)"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime;index:idx_orders_created_at,sort:desc"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the product as it was at checkout. ProductID is not a
// foreign key so later catalog edits or deletions leave history intact.
type OrderItem struct {
	ID              uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         uint64          `json:"order_id" gorm:"not null;index:idx_order_items_order_id"`
	ProductID       uint64          `json:"product_id" gorm:"not null"`
	ProductName     string          `json:"product_name" gorm:"type:varchar(255);not null"`
	ProductCategory string          `json:"product_category" gorm:"type:varchar(100)"`
	ProductPrice    decimal.Decimal `json:"product_price" gorm:"type:decimal(10,2);not null"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
}

// LineSubtotal is unit price times quantity.
func LineSubtotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type LineItemInput struct {
	ProductID uint64          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type PlaceOrderInput struct {
	Items         []LineItemInput `json:"items"`
	Customer      Customer        `json:"customer"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
}
