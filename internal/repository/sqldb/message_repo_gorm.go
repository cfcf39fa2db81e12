package sqldb

import (
	"context"

	"storefront-service/internal/domain"
)

type messageRepo struct {
	conn
}

func (r *messageRepo) Create(ctx context.Context, m *domain.Message) error {
	db, cancel := r.session(ctx)
	defer cancel()

	if err := db.Create(m).Error; err != nil {
		return r.persistence("insert message", err)
	}
	return nil
}

func (r *messageRepo) List(ctx context.Context) ([]domain.Message, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	out := []domain.Message{}
	if err := db.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
