package service

import (
	"context"
	"time"

	"camerashop-be/internal/models"
	"camerashop-be/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type adminOrderService struct {
	*orderService
}

func NewAdminOrderService(repo *repository.Repository, events EventBus, log *zap.Logger) AdminOrderService {
	// No shipping policy: admin paths never price an order.
	return &adminOrderService{orderService: &orderService{
		repo:   repo,
		events: events,
		log:    log,
		now:    time.Now,
	}}
}

func (s *adminOrderService) ListOrders(ctx context.Context, f AdminListFilter) (*OrderPage, error) {
	page, offset := pageOffset(f.Page, adminOrdersPerPage)
	list, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		Status: f.Status,
		Search: f.Search,
		SortBy: f.SortBy,
		Desc:   f.Desc,
		Limit:  adminOrdersPerPage,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return &OrderPage{Orders: list, Total: total, Page: page, PerPage: adminOrdersPerPage}, nil
}

func (s *adminOrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	ord, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

// UpdateStatus moves an order forward. Moving to cancelled runs the same
// reversal as a customer cancellation.
func (s *adminOrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, &ValidationError{Fields: []FieldViolation{{Field: "status", Tag: "oneof", Message: "unknown order status"}}}
	}

	var from models.OrderStatus
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		ord, err := tx.Orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if ord == nil {
			return ErrOrderNotFound
		}
		from = ord.Status

		if !ord.Status.CanTransitionTo(next) {
			return &OrderStatusError{Current: ord.Status, Target: next}
		}
		if next == models.OrderStatusCancelled {
			return cancelInTx(ctx, tx, orderID, s.log)
		}

		ok, err := tx.Orders.TransitionStatus(ctx, orderID, []models.OrderStatus{ord.Status}, next)
		if err != nil {
			return err
		}
		if !ok {
			return &OrderStatusError{Current: ord.Status, Target: next}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if next == models.OrderStatusCancelled {
		return s.afterCancel(ctx, orderID, "admin")
	}

	s.log.Info("order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(next)),
	)
	if s.events != nil {
		if err := s.events.PublishOrderStatusChanged(ctx, OrderStatusChangedEvent{
			OrderID:   orderID,
			From:      from,
			To:        next,
			ChangedAt: s.now(),
		}); err != nil {
			s.log.Warn("publish status change failed", zap.String("order_id", orderID.String()), zap.Error(err))
		}
	}
	return s.GetOrder(ctx, orderID)
}

func (s *adminOrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	ok, err := s.repo.Orders.SoftDelete(ctx, orderID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	s.log.Info("order deleted", zap.String("order_id", orderID.String()))
	return nil
}
