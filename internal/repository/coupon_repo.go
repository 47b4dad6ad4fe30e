package repository

import (
	"context"
	"errors"

	"camerashop-be/internal/models"

	"gorm.io/gorm"
)

type CouponRepo interface {
	Create(ctx context.Context, c *models.Coupon) error
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	// IncrementUsage bumps used_count only while it is below usage_limit.
	IncrementUsage(ctx context.Context, code string) (bool, error)
	// DecrementUsage never takes used_count below zero.
	DecrementUsage(ctx context.Context, code string) (bool, error)
}

type couponRepo struct{ db *gorm.DB }

func NewCouponRepo(db *gorm.DB) CouponRepo { return &couponRepo{db: db} }

func (r *couponRepo) Create(ctx context.Context, c *models.Coupon) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *couponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var c models.Coupon
	err := r.db.WithContext(ctx).First(&c, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *couponRepo) IncrementUsage(ctx context.Context, code string) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE coupons
SET used_count = used_count + 1
WHERE code = @code
  AND (usage_limit IS NULL OR used_count < usage_limit)
`, map[string]any{"code": code})
	return tx.RowsAffected > 0, tx.Error
}

func (r *couponRepo) DecrementUsage(ctx context.Context, code string) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE coupons
SET used_count = used_count - 1
WHERE code = @code
  AND used_count > 0
`, map[string]any{"code": code})
	return tx.RowsAffected > 0, tx.Error
}
