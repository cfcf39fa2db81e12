package sqldb

import (
	"context"
	"errors"

	"storefront-service/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productRepo struct {
	conn
}

func (r *productRepo) List(ctx context.Context) ([]domain.Product, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var out []domain.Product
	if err := db.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		r.log.Error("list products failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *productRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	out := []domain.Product{}
	if err := db.Where("category = ?", category).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		r.log.Error("list products by category failed", zap.String("category", category), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var p domain.Product
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	db, cancel := r.session(ctx)
	defer cancel()

	if err := db.Create(p).Error; err != nil {
		return r.persistence("insert product", err)
	}
	return nil
}

var productColumns = []string{"name", "price", "category", "image", "description", "rating", "reviews", "in_stock", "updated_at"}

func (r *productRepo) Update(ctx context.Context, p *domain.Product) (bool, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	res := db.Model(&domain.Product{}).Where("id = ?", p.ID).Select(productColumns).Updates(p)
	if res.Error != nil {
		return false, r.persistence("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := db.First(p, p.ID).Error; err != nil {
		return false, r.persistence("reload product", err)
	}
	return true, nil
}

func (r *productRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	res := db.Delete(&domain.Product{}, id)
	if res.Error != nil {
		return false, r.persistence("delete product", res.Error)
	}
	return res.RowsAffected > 0, nil
}
