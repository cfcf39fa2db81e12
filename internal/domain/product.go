package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const CategoryAll = "All"

// Categories is the fixed list offered to the storefront filter.
var Categories = []string{CategoryAll, "Electronics", "Clothing", "Accessories", "Sports", "Home"}

const PlaceholderImage = "https://via.placeholder.com/300x300?text=No+Image"

type Product struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string          `json:"category" gorm:"type:varchar(100);not null;index:idx_products_category"`
	Image       string          `json:"image" gorm:"type:varchar(500)"`
	Description string          `json:"description" gorm:"type:text"`
	Rating      float64         `json:"rating" gorm:"type:decimal(3,2)"`
	Reviews     int             `json:"reviews"`
	InStock     bool            `json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

type ProductInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	InStock     *bool           `json:"in_stock"`
}
