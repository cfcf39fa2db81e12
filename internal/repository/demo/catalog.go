package demo

import (
	"time"

	"storefront-service/internal/domain"

	"github.com/shopspring/decimal"
)

// catalogListed is the timestamp every built-in product carries.
var catalogListed = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func product(id uint64, name, price, category, image, description string, rating float64, reviews int) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Image:       "https://images.unsplash.com/" + image + "?w=300&h=300&fit=crop",
		Description: description,
		Rating:      rating,
		Reviews:     reviews,
		InStock:     true,
		CreatedAt:   catalogListed,
		UpdatedAt:   catalogListed,
	}
}

var builtinCatalog = []domain.Product{
	product(1, "Wireless Bluetooth Headphones", "79.99", "Electronics", "photo-1505740420928-5e560c06d30e",
		"Premium wireless headphones with noise cancellation and 30-hour battery life.", 4.5, 234),
	product(2, "Organic Cotton T-Shirt", "29.99", "Clothing", "photo-1521572163474-6864f9cf17ab",
		"Comfortable 100% organic cotton t-shirt available in multiple colors.", 4.2, 89),
	product(3, "Smart Watch Pro", "299.99", "Electronics", "photo-1546868871-7041f2a55e12",
		"Advanced smartwatch with health monitoring, GPS, and waterproof design.", 4.8, 567),
	product(4, "Leather Messenger Bag", "149.99", "Accessories", "photo-1548036328-c9fa89d128fa",
		"Genuine leather messenger bag with laptop compartment and multiple pockets.", 4.6, 123),
	product(5, "Running Shoes Ultra", "129.99", "Sports", "photo-1542291026-7eec264c27ff",
		"Lightweight running shoes with superior cushioning and breathable mesh.", 4.7, 345),
	product(6, "Stainless Steel Water Bottle", "24.99", "Home", "photo-1602143407151-7111542de6e8",
		"Double-walled insulated water bottle that keeps drinks cold for 24 hours.", 4.4, 78),
	product(7, "Wireless Charging Pad", "39.99", "Electronics", "photo-1586816879360-004f5b0c51e5",
		"Fast wireless charging pad compatible with all Qi-enabled devices.", 4.3, 156),
	product(8, "Yoga Mat Premium", "49.99", "Sports", "photo-1601925260368-ae2f83cf8b7f",
		"Non-slip yoga mat with extra cushioning for comfortable practice.", 4.6, 234),
	product(9, "Sunglasses Classic", "89.99", "Accessories", "photo-1572635196237-14b3f281503f",
		"Classic polarized sunglasses with UV400 protection.", 4.5, 67),
	product(10, "Ceramic Coffee Mug Set", "34.99", "Home", "photo-1514228742587-6b1558fcca3d",
		"Set of 4 handmade ceramic mugs with elegant design.", 4.2, 45),
	product(11, "Denim Jacket Classic", "79.99", "Clothing", "photo-1576995853123-5a10305d93c0",
		"Timeless denim jacket with modern fit and authentic wash.", 4.4, 189),
	product(12, "Portable Bluetooth Speaker", "59.99", "Electronics", "photo-1608043152269-423dbba4e7e1",
		"Waterproof portable speaker with 360-degree sound and 12-hour battery.", 4.6, 278),
}

// Catalog returns a copy of the built-in product list.
func Catalog() []domain.Product {
	out := make([]domain.Product, len(builtinCatalog))
	copy(out, builtinCatalog)
	return out
}

// CatalogProduct looks up a built-in product by id.
func CatalogProduct(id uint64) (domain.Product, bool) {
	for _, p := range builtinCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
