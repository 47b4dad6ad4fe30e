package repository

import (
	"context"

	"camerashop-be/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LowStockRepo interface {
	// CreateIfNoUnread inserts n unless the product already has an unread notification.
	CreateIfNoUnread(ctx context.Context, n *models.LowStockNotification) (bool, error)
	List(ctx context.Context, onlyUnread bool, limit, offset int) ([]models.LowStockNotification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
}

type lowStockRepo struct{ db *gorm.DB }

func NewLowStockRepo(db *gorm.DB) LowStockRepo { return &lowStockRepo{db: db} }

func (r *lowStockRepo) CreateIfNoUnread(ctx context.Context, n *models.LowStockNotification) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
INSERT INTO low_stock_notifications (product_id, current_stock, threshold, message, is_read)
SELECT @pid, @stock, @threshold, @msg, false
WHERE NOT EXISTS (
  SELECT 1 FROM low_stock_notifications WHERE product_id = @pid AND NOT is_read
)
`, map[string]any{
		"pid":       n.ProductID,
		"stock":     n.CurrentStock,
		"threshold": n.Threshold,
		"msg":       n.Message,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *lowStockRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]models.LowStockNotification, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.LowStockNotification{})
	if onlyUnread {
		q = q.Where("NOT is_read")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = 20
	}

	var rows []models.LowStockNotification
	err := q.Preload("Product").Order("created_at DESC, id").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}

func (r *lowStockRepo) CountUnread(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.LowStockNotification{}).Where("NOT is_read").Count(&cnt).Error
	return cnt, err
}

func (r *lowStockRepo) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.LowStockNotification{}).
		Where("id = ?", id).
		Update("is_read", true)
	return tx.RowsAffected > 0, tx.Error
}
