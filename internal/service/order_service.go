package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"camerashop-be/internal/models"
	"camerashop-be/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderNumberAttempts = 3

type orderService struct {
	repo        *repository.Repository
	shipping    ShippingPolicy
	events      EventBus
	log         *zap.Logger
	now         func() time.Time
	orderNumber func(time.Time) (string, error)
}

func NewOrderService(repo *repository.Repository, shipping ShippingPolicy, events EventBus, log *zap.Logger) OrderService {
	return newOrderService(repo, shipping, events, log)
}

func newOrderService(repo *repository.Repository, shipping ShippingPolicy, events EventBus, log *zap.Logger) *orderService {
	return &orderService{
		repo:        repo,
		shipping:    shipping,
		events:      events,
		log:         log,
		now:         time.Now,
		orderNumber: NewOrderNumber,
	}
}

// demand sums requested quantity per product across cart lines.
func demand(lines []models.CartItem) (map[uuid.UUID]int, []uuid.UUID) {
	qty := make(map[uuid.UUID]int, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if _, seen := qty[l.ProductID]; !seen {
			ids = append(ids, l.ProductID)
		}
		qty[l.ProductID] += l.Quantity
	}
	sortIDs(ids)
	return qty, ids
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, in CreateOrderInput) (*CreateOrderResult, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	in.normalize()
	if err := in.Validate(); err != nil {
		orderRejections.WithLabelValues("validation").Inc()
		return nil, err
	}

	cart, err := s.repo.Carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		orderRejections.WithLabelValues("empty_cart").Inc()
		return nil, ErrEmptyCart
	}

	var order *models.Order
	now := s.now()

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		// A concurrent checkout of the same cart waits here and then sees
		// the lines the winner deleted.
		lines, err := tx.Carts.ListByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		want, ids := demand(lines)
		products, err := tx.Products.LockByIDs(ctx, ids)
		if err != nil {
			return err
		}
		for _, id := range ids {
			p := products[id]
			if p == nil || !p.IsActive {
				return &InsufficientStockError{ProductID: id, ProductName: lineName(cart, id), Requested: want[id]}
			}
			if p.StockQuantity < want[id] {
				return &InsufficientStockError{ProductID: id, ProductName: p.Name, Available: p.StockQuantity, Requested: want[id]}
			}
		}

		subtotal := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, l := range lines {
			p := products[l.ProductID]
			lineTotal := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
			subtotal = subtotal.Add(lineTotal)
			items = append(items, models.OrderItem{
				ProductID:    p.ID,
				ProductName:  p.Name,
				ProductSKU:   p.SKU,
				ProductImage: p.Image,
				Price:        p.Price,
				Quantity:     l.Quantity,
				Subtotal:     lineTotal,
				CreatedAt:    now,
			})
		}

		shippingFee := s.shipping.Fee(subtotal)

		var quote *CouponQuote
		discount := decimal.Zero
		if in.CouponCode != "" {
			quote, err = quoteCoupon(ctx, tx.Coupons, in.CouponCode, subtotal, now)
			if err != nil {
				return err
			}
			discount = quote.Discount
		}

		number, err := s.nextOrderNumber(ctx, tx.Orders, now)
		if err != nil {
			return err
		}

		uid := userID
		order = &models.Order{
			UserID:           &uid,
			OrderNumber:      number,
			CustomerName:     in.CustomerName,
			CustomerEmail:    in.CustomerEmail,
			CustomerPhone:    in.CustomerPhone,
			ShippingAddress:  in.ShippingAddress,
			ShippingWard:     in.ShippingWard,
			ShippingDistrict: in.ShippingDistrict,
			ShippingCity:     in.ShippingCity,
			Subtotal:         subtotal,
			ShippingFee:      shippingFee,
			DiscountAmount:   discount,
			Total:            OrderTotal(subtotal, shippingFee, discount),
			PaymentMethod:    models.PaymentMethod(in.PaymentMethod),
			Status:           models.OrderStatusPending,
			Notes:            in.CustomerNote,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if quote != nil {
			code := quote.Code
			order.CouponCode = &code
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.OrderItems.BulkCreate(ctx, items); err != nil {
			return err
		}
		order.Items = items

		for _, id := range ids {
			ok, err := tx.Products.DecrementStock(ctx, id, want[id])
			if err != nil {
				return err
			}
			if !ok {
				return &InsufficientStockError{ProductID: id, ProductName: products[id].Name, Available: products[id].StockQuantity, Requested: want[id]}
			}
		}

		if quote != nil {
			ok, err := tx.Coupons.IncrementUsage(ctx, quote.Code)
			if err != nil {
				return err
			}
			if !ok {
				return reject(quote.Code, CouponUsageLimitReached, "coupon has reached its usage limit")
			}
		}

		cleared, err := tx.Carts.ClearByUser(ctx, userID)
		if err != nil {
			return err
		}
		if cleared < int64(len(lines)) {
			return ErrEmptyCart
		}
		return nil
	})
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			orderRejections.WithLabelValues(reason).Inc()
			s.log.Info("order rejected", zap.String("user_id", userID.String()), zap.String("reason", reason), zap.Error(err))
		} else {
			s.log.Error("order creation failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil, err
	}

	ordersCreated.Inc()
	s.log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("total", order.Total.String()),
	)

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, newOrderCreatedEvent(order)); err != nil {
			s.log.Warn("publish order created failed", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}

	return &CreateOrderResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
		Order:       order,
	}, nil
}

func lineName(lines []models.CartItem, productID uuid.UUID) string {
	for _, l := range lines {
		if l.ProductID == productID && l.Product != nil {
			return l.Product.Name
		}
	}
	return productID.String()
}

func (s *orderService) nextOrderNumber(ctx context.Context, orders repository.OrderRepo, now time.Time) (string, error) {
	for i := 0; i < orderNumberAttempts; i++ {
		number, err := s.orderNumber(now)
		if err != nil {
			return "", err
		}
		taken, err := orders.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique order number after %d attempts", orderNumberAttempts)
}

// loadOwned returns the order when userID owns it.
func (s *orderService) loadOwned(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	ord, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if !ord.OwnedBy(userID) {
		return nil, ErrForbidden
	}
	return ord, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	return s.loadOwned(ctx, userID, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, f ListFilter) (*OrderPage, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	page, offset := pageOffset(f.Page, userOrdersPerPage)
	list, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		UserID: &userID,
		Status: f.Status,
		Desc:   true,
		Limit:  userOrdersPerPage,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return &OrderPage{Orders: list, Total: total, Page: page, PerPage: userOrdersPerPage}, nil
}

func (s *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	ord, err := s.loadOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !ord.Status.Cancellable() {
		return nil, &OrderStatusError{Current: ord.Status, Target: models.OrderStatusCancelled}
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		return cancelInTx(ctx, tx, orderID, s.log)
	})
	if err != nil {
		return nil, err
	}

	return s.afterCancel(ctx, orderID, "customer")
}

func (s *orderService) afterCancel(ctx context.Context, orderID uuid.UUID, by string) (*models.Order, error) {
	ordersCancelled.WithLabelValues(by).Inc()

	ord, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	s.log.Info("order cancelled", zap.String("order_id", ord.ID.String()), zap.String("by", by))

	if s.events != nil {
		if err := s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
			OrderID:     ord.ID,
			OrderNumber: ord.OrderNumber,
			UserID:      ord.UserID,
			CancelledBy: by,
			CancelledAt: s.now(),
		}); err != nil {
			s.log.Warn("publish order cancelled failed", zap.String("order_id", ord.ID.String()), zap.Error(err))
		}
	}
	return ord, nil
}

// cancelInTx flips the order to cancelled and restores the stock and coupon
// usage it consumed. The row lock makes a second concurrent cancel observe
// the cancelled status and fail.
func cancelInTx(ctx context.Context, tx *repository.Repository, orderID uuid.UUID, log *zap.Logger) error {
	ord, err := tx.Orders.GetByIDForUpdate(ctx, orderID)
	if err != nil {
		return err
	}
	if ord == nil {
		return ErrOrderNotFound
	}
	if !ord.Status.Cancellable() {
		return &OrderStatusError{Current: ord.Status, Target: models.OrderStatusCancelled}
	}

	ok, err := tx.Orders.TransitionStatus(ctx, orderID,
		[]models.OrderStatus{models.OrderStatusPending, models.OrderStatusConfirmed},
		models.OrderStatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		return &OrderStatusError{Current: ord.Status, Target: models.OrderStatusCancelled}
	}

	items := append([]models.OrderItem(nil), ord.Items...)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID.String() < items[j].ProductID.String() })
	for _, it := range items {
		restored, err := tx.Products.IncrementStock(ctx, it.ProductID, it.Quantity)
		if err != nil {
			return err
		}
		if !restored {
			log.Warn("stock not restored, product no longer exists",
				zap.String("order_id", orderID.String()), zap.String("product_id", it.ProductID.String()))
		}
	}

	if ord.CouponCode != nil && *ord.CouponCode != "" {
		if _, err := tx.Coupons.DecrementUsage(ctx, *ord.CouponCode); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) Reorder(ctx context.Context, userID, orderID uuid.UUID) ([]models.CartItem, error) {
	ord, err := s.loadOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	var cart []models.CartItem
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		ids := make([]uuid.UUID, 0, len(ord.Items))
		for _, it := range ord.Items {
			ids = append(ids, it.ProductID)
		}
		rows, err := tx.Products.BatchGetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*models.Product, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}

		var unavailable []string
		for _, it := range ord.Items {
			p := byID[it.ProductID]
			if p == nil || !p.IsActive || p.StockQuantity < it.Quantity {
				unavailable = append(unavailable, it.ProductName)
			}
		}
		if len(unavailable) > 0 {
			return &ReorderUnavailableError{Products: unavailable}
		}

		for _, it := range ord.Items {
			p := byID[it.ProductID]
			if err := tx.Carts.AddQuantity(ctx, userID, p.ID, it.Quantity, p.Price); err != nil {
				return err
			}
		}

		cart, err = tx.Carts.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		var ru *ReorderUnavailableError
		if !errors.As(err, &ru) {
			s.log.Error("reorder failed", zap.String("order_id", orderID.String()), zap.Error(err))
		}
		return nil, err
	}
	return cart, nil
}
