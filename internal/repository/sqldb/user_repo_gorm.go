package sqldb

import (
	"context"
	"errors"

	"storefront-service/internal/domain"

	"gorm.io/gorm"
)

type userRepo struct {
	conn
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	db, cancel := r.session(ctx)
	defer cancel()
	return firstUser(db.Where("email = ?", email))
}

func (r *userRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	db, cancel := r.session(ctx)
	defer cancel()
	return firstUser(db.Where("id = ?", id))
}

func firstUser(q *gorm.DB) (*domain.User, error) {
	var u domain.User
	if err := q.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) HasRole(ctx context.Context, role string) (bool, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var n int64
	if err := db.Model(&domain.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	db, cancel := r.session(ctx)
	defer cancel()

	if err := db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Errorf(domain.ErrConflict, "User already exists")
		}
		return r.persistence("insert user", err)
	}
	return nil
}
