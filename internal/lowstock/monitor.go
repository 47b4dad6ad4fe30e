package lowstock

import (
	"context"
	"fmt"

	"camerashop-be/internal/models"
	"camerashop-be/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultThreshold = 10

type Monitor struct {
	products  repository.ProductRepo
	notes     repository.LowStockRepo
	threshold int
	log       *zap.Logger
}

func NewMonitor(repo *repository.Repository, threshold int, log *zap.Logger) *Monitor {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Monitor{
		products:  repo.Products,
		notes:     repo.LowStock,
		threshold: threshold,
		log:       log,
	}
}

// Scan records a notification for every active product at or below the
// threshold that has no unread notification yet. It returns how many were created.
func (m *Monitor) Scan(ctx context.Context) (int, error) {
	products, err := m.products.ListLowStock(ctx, m.threshold)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, p := range products {
		ok, err := m.notes.CreateIfNoUnread(ctx, &models.LowStockNotification{
			ProductID:    p.ID,
			CurrentStock: p.StockQuantity,
			Threshold:    m.threshold,
			Message:      fmt.Sprintf("Product %q is low on stock: %d left (threshold %d)", p.Name, p.StockQuantity, m.threshold),
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	m.log.Info("low stock scan finished",
		zap.Int("low_stock_products", len(products)),
		zap.Int("notifications_created", created),
	)
	return created, nil
}

func (m *Monitor) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]models.LowStockNotification, int64, error) {
	return m.notes.List(ctx, onlyUnread, limit, offset)
}

func (m *Monitor) CountUnread(ctx context.Context) (int64, error) {
	return m.notes.CountUnread(ctx)
}

func (m *Monitor) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.notes.MarkRead(ctx, id)
}
