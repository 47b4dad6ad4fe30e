package repository

import (
	"context"
	"errors"

	"camerashop-be/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	// ListByUserForUpdate row-locks the user's cart lines; call inside WithTx.
	// Product is not preloaded.
	ListByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	GetLine(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	// AddQuantity inserts the line or adds qty to the existing one, refreshing its price.
	AddQuantity(ctx context.Context, userID, productID uuid.UUID, qty int, price decimal.Decimal) error
	SetQuantity(ctx context.Context, id uuid.UUID, qty int, price decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClearByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type cartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) CartRepo { return &cartRepo{db: db} }

func (r *cartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC, id").
		Find(&rows).Error
	return rows, err
}

func (r *cartRepo) ListByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id").
		Find(&rows).Error
	return rows, err
}

func (r *cartRepo) GetLine(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	var row models.CartItem
	err := r.db.WithContext(ctx).First(&row, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

func (r *cartRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	var row models.CartItem
	err := r.db.WithContext(ctx).Preload("Product").First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

func (r *cartRepo) AddQuantity(ctx context.Context, userID, productID uuid.UUID, qty int, price decimal.Decimal) error {
	row := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		Price:     price,
	}
	return r.db.WithContext(ctx).Omit("Product").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Set{
			{Column: clause.Column{Name: "quantity"}, Value: gorm.Expr("carts.quantity + EXCLUDED.quantity")},
			{Column: clause.Column{Name: "price"}, Value: gorm.Expr("EXCLUDED.price")},
		},
	}).Create(&row).Error
}

func (r *cartRepo) SetQuantity(ctx context.Context, id uuid.UUID, qty int, price decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]any{"quantity": qty, "price": price}).Error
}

func (r *cartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id).Error
}

func (r *cartRepo) ClearByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{})
	return tx.RowsAffected, tx.Error
}
