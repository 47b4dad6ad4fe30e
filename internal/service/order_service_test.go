package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"camerashop-be/internal/models"
	"camerashop-be/internal/repository"
	"camerashop-be/internal/service"
	"camerashop-be/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

type recordingBus struct {
	mu        sync.Mutex
	created   []service.OrderCreatedEvent
	cancelled []service.OrderCancelledEvent
	changed   []service.OrderStatusChangedEvent
}

func (b *recordingBus) PublishOrderCreated(_ context.Context, e service.OrderCreatedEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.created = append(b.created, e)
	return nil
}

func (b *recordingBus) PublishOrderCancelled(_ context.Context, e service.OrderCancelledEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancelled = append(b.cancelled, e)
	return nil
}

func (b *recordingBus) PublishOrderStatusChanged(_ context.Context, e service.OrderStatusChangedEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.changed = append(b.changed, e)
	return nil
}

type fixture struct {
	repo   *repository.Repository
	orders service.OrderService
	admin  service.AdminOrderService
	bus    *recordingBus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := repository.New(testutil.SetupShopDB(t))
	bus := &recordingBus{}
	return &fixture{
		repo:   repo,
		orders: service.NewOrderService(repo, service.DefaultShippingPolicy(), bus, zap.NewNop()),
		admin:  service.NewAdminOrderService(repo, bus, zap.NewNop()),
		bus:    bus,
	}
}

func (f *fixture) product(t *testing.T, name string, price int64, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:          name,
		Slug:          name + "-" + uuid.NewString()[:8],
		SKU:           "SKU-" + name,
		Price:         dec(price),
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, f.repo.Products.Create(context.Background(), p))
	return p
}

func (f *fixture) coupon(t *testing.T, c *models.Coupon) *models.Coupon {
	t.Helper()
	c.IsActive = true
	require.NoError(t, f.repo.Coupons.Create(context.Background(), c))
	return c
}

func (f *fixture) addToCart(t *testing.T, userID uuid.UUID, p *models.Product, qty int) {
	t.Helper()
	require.NoError(t, f.repo.Carts.AddQuantity(context.Background(), userID, p.ID, qty, p.Price))
}

func (f *fixture) stock(t *testing.T, id uuid.UUID) int {
	t.Helper()
	p, err := f.repo.Products.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.StockQuantity
}

func (f *fixture) usedCount(t *testing.T, code string) int {
	t.Helper()
	c, err := f.repo.Coupons.GetByCode(context.Background(), code)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c.UsedCount
}

func (f *fixture) cartLen(t *testing.T, userID uuid.UUID) int {
	t.Helper()
	lines, err := f.repo.Carts.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	return len(lines)
}

func (f *fixture) orderCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.repo.DB.Model(&models.Order{}).Count(&n).Error)
	return n
}

func checkout(coupon string) service.CreateOrderInput {
	return service.CreateOrderInput{
		CustomerName:    "Nguyen Van A",
		CustomerEmail:   "a@example.com",
		CustomerPhone:   "0901234567",
		ShippingAddress: "12 Le Loi, District 1",
		ShippingCity:    "Ho Chi Minh",
		PaymentMethod:   "cod",
		CouponCode:      coupon,
	}
}

func assertDec(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "got %s, want %d", got, want)
}

func TestCreateOrder_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()

	lens := f.product(t, "lens", 200000, 5)
	body := f.product(t, "body", 150000, 3)
	f.coupon(t, &models.Coupon{Code: "SAVE10", Type: models.CouponPercentage, Value: dec(10), UsageLimit: intPtr(5)})
	f.addToCart(t, user, lens, 2)
	f.addToCart(t, user, body, 1)

	res, err := f.orders.CreateOrder(ctx, user, checkout("SAVE10"))
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-\d{14}-\S{6}$`, res.OrderNumber)
	assertDec(t, 495000, res.Total)

	ord, err := f.orders.GetOrder(ctx, user, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, ord.Status)
	assertDec(t, 550000, ord.Subtotal)
	assertDec(t, 0, ord.ShippingFee)
	assertDec(t, 55000, ord.DiscountAmount)
	require.NotNil(t, ord.CouponCode)
	assert.Equal(t, "SAVE10", *ord.CouponCode)
	require.Len(t, ord.Items, 2)
	itemSum := decimal.Zero
	for _, it := range ord.Items {
		assert.True(t, it.Subtotal.Equal(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))))
		itemSum = itemSum.Add(it.Subtotal)
	}
	assert.True(t, itemSum.Equal(ord.Subtotal), "items sum to %s, order subtotal %s", itemSum, ord.Subtotal)

	assert.Equal(t, 3, f.stock(t, lens.ID))
	assert.Equal(t, 2, f.stock(t, body.ID))
	assert.Equal(t, 1, f.usedCount(t, "SAVE10"))
	assert.Equal(t, 0, f.cartLen(t, user))

	require.Len(t, f.bus.created, 1)
	assert.Equal(t, res.OrderID, f.bus.created[0].OrderID)
	assert.Len(t, f.bus.created[0].Items, 2)
}

func TestCreateOrder_ChargesShippingBelowThreshold(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	p := f.product(t, "strap", 100000, 10)
	f.addToCart(t, user, p, 1)

	res, err := f.orders.CreateOrder(context.Background(), user, checkout(""))
	require.NoError(t, err)
	assertDec(t, 130000, res.Total)
	assert.Nil(t, res.Order.CouponCode)
}

func TestCreateOrder_UsesCurrentProductPrice(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	p := f.product(t, "tripod", 100000, 10)
	f.addToCart(t, user, p, 1)

	require.NoError(t, f.repo.DB.Model(&models.Product{}).Where("id = ?", p.ID).Update("price", dec(120000)).Error)

	res, err := f.orders.CreateOrder(context.Background(), user, checkout(""))
	require.NoError(t, err)
	assertDec(t, 150000, res.Total)
	assertDec(t, 120000, res.Order.Items[0].Price)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.CreateOrder(context.Background(), uuid.New(), checkout(""))
	assert.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Zero(t, f.orderCount(t))
}

func TestCreateOrder_ValidationFailsBeforeWrites(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	p := f.product(t, "bag", 100000, 2)
	f.addToCart(t, user, p, 1)

	in := checkout("")
	in.CustomerName = "  "
	in.CustomerEmail = "not-an-email"
	in.PaymentMethod = "cash"

	_, err := f.orders.CreateOrder(context.Background(), user, in)
	require.Error(t, err)

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]bool{}
	for _, v := range verr.Fields {
		fields[v.Field] = true
	}
	assert.True(t, fields["customer_name"])
	assert.True(t, fields["customer_email"])
	assert.True(t, fields["payment_method"])

	assert.Equal(t, 2, f.stock(t, p.ID))
	assert.Equal(t, 1, f.cartLen(t, user))
}

func TestCreateOrder_InsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	a := f.product(t, "flash", 50000, 10)
	b := f.product(t, "battery", 40000, 1)
	f.addToCart(t, user, a, 2)
	f.addToCart(t, user, b, 2)

	_, err := f.orders.CreateOrder(context.Background(), user, checkout(""))
	require.ErrorIs(t, err, service.ErrInsufficientStock)

	var serr *service.InsufficientStockError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, b.ID, serr.ProductID)
	assert.Equal(t, "battery", serr.ProductName)
	assert.Equal(t, 1, serr.Available)
	assert.Equal(t, 2, serr.Requested)

	assert.Equal(t, 10, f.stock(t, a.ID))
	assert.Equal(t, 1, f.stock(t, b.ID))
	assert.Equal(t, 2, f.cartLen(t, user))
	assert.Zero(t, f.orderCount(t))
	assert.Empty(t, f.bus.created)
}

func TestCreateOrder_InactiveProductIsOutOfStock(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	p := f.product(t, "filter", 50000, 10)
	f.addToCart(t, user, p, 1)
	require.NoError(t, f.repo.DB.Model(&models.Product{}).Where("id = ?", p.ID).Update("is_active", false).Error)

	_, err := f.orders.CreateOrder(context.Background(), user, checkout(""))
	var serr *service.InsufficientStockError
	require.True(t, errors.As(err, &serr))
	assert.Zero(t, serr.Available)
}

func TestCreateOrder_RejectedCouponRollsBack(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	p := f.product(t, "cap", 100000, 4)
	f.coupon(t, &models.Coupon{Code: "BIG", Type: models.CouponFixed, Value: dec(50000), MinOrderValue: dec(500000)})
	f.addToCart(t, user, p, 1)

	_, err := f.orders.CreateOrder(context.Background(), user, checkout("BIG"))
	require.ErrorIs(t, err, service.ErrCouponInvalid)

	var cerr *service.CouponRejectedError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, service.CouponMinOrderNotMet, cerr.Reason)

	_, err = f.orders.CreateOrder(context.Background(), user, checkout("NOPE"))
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, service.CouponNotFound, cerr.Reason)

	assert.Equal(t, 4, f.stock(t, p.ID))
	assert.Equal(t, 0, f.usedCount(t, "BIG"))
	assert.Equal(t, 1, f.cartLen(t, user))
	assert.Zero(t, f.orderCount(t))
}

func TestCreateOrder_ConcurrentLastUnit(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "rare-lens", 900000, 1)

	const buyers = 4
	users := make([]uuid.UUID, buyers)
	for i := range users {
		users[i] = uuid.New()
		f.addToCart(t, users[i], p, 1)
	}

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orders.CreateOrder(context.Background(), users[i], checkout(""))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, service.ErrInsufficientStock)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 0, f.stock(t, p.ID))
	assert.Equal(t, int64(1), f.orderCount(t))
}

func TestCreateOrder_ConcurrentCouponLimit(t *testing.T) {
	f := newFixture(t)
	f.coupon(t, &models.Coupon{Code: "ONCE", Type: models.CouponFixed, Value: dec(10000), UsageLimit: intPtr(1)})

	const buyers = 3
	users := make([]uuid.UUID, buyers)
	for i := range users {
		users[i] = uuid.New()
		f.addToCart(t, users[i], f.product(t, "item-"+uuid.NewString()[:4], 100000, 5), 1)
	}

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orders.CreateOrder(context.Background(), users[i], checkout("ONCE"))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, service.ErrCouponUsageExhausted)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, f.usedCount(t, "ONCE"))
	assert.Equal(t, int64(1), f.orderCount(t))
}

func TestCreateOrder_ConcurrentSameCartOrdersOnce(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	p := f.product(t, "hot-shoe", 100000, 10)
	f.addToCart(t, user, p, 1)

	// Hold the product row so both checkouts are in flight before either
	// can finish.
	side := f.repo.DB.Begin()
	require.NoError(t, side.Error)
	var held models.Product
	require.NoError(t, side.Clauses(clause.Locking{Strength: "UPDATE"}).First(&held, "id = ?", p.ID).Error)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orders.CreateOrder(context.Background(), user, checkout(""))
		}(i)
	}
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, side.Commit().Error)
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 9, f.stock(t, p.ID))
	assert.Equal(t, int64(1), f.orderCount(t))
	assert.Equal(t, 0, f.cartLen(t, user))
}

func placeOrder(t *testing.T, f *fixture, user uuid.UUID, coupon string, lines map[*models.Product]int) *service.CreateOrderResult {
	t.Helper()
	for p, q := range lines {
		f.addToCart(t, user, p, q)
	}
	res, err := f.orders.CreateOrder(context.Background(), user, checkout(coupon))
	require.NoError(t, err)
	return res
}

func TestCancelOrder_RestoresStockAndCoupon(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	a := f.product(t, "grip", 300000, 5)
	b := f.product(t, "hood", 250000, 5)
	f.coupon(t, &models.Coupon{Code: "FIX", Type: models.CouponFixed, Value: dec(20000), UsageLimit: intPtr(3)})

	res := placeOrder(t, f, user, "FIX", map[*models.Product]int{a: 2, b: 1})
	assert.Equal(t, 1, f.usedCount(t, "FIX"))

	ord, err := f.orders.CancelOrder(ctx, user, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, ord.Status)

	assert.Equal(t, 5, f.stock(t, a.ID))
	assert.Equal(t, 5, f.stock(t, b.ID))
	assert.Equal(t, 0, f.usedCount(t, "FIX"))

	require.Len(t, f.bus.cancelled, 1)
	assert.Equal(t, "customer", f.bus.cancelled[0].CancelledBy)

	_, err = f.orders.CancelOrder(ctx, user, res.OrderID)
	assert.ErrorIs(t, err, service.ErrOrderNotCancellable)
	assert.Equal(t, 5, f.stock(t, a.ID))
	assert.Equal(t, 5, f.stock(t, b.ID))
	assert.Equal(t, 0, f.usedCount(t, "FIX"))
	assert.Len(t, f.bus.cancelled, 1)
}

func TestCancelOrder_DeliveredHasNoSideEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	p := f.product(t, "eyecup", 100000, 4)
	f.coupon(t, &models.Coupon{Code: "DONE", Type: models.CouponFixed, Value: dec(10000), UsageLimit: intPtr(2)})
	res := placeOrder(t, f, user, "DONE", map[*models.Product]int{p: 2})

	_, err := f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatusDelivered)
	require.NoError(t, err)

	_, err = f.orders.CancelOrder(ctx, user, res.OrderID)
	assert.ErrorIs(t, err, service.ErrOrderNotCancellable)
	assert.ErrorIs(t, err, service.ErrOrderStatusFinal)

	assert.Equal(t, 2, f.stock(t, p.ID))
	assert.Equal(t, 1, f.usedCount(t, "DONE"))
	assert.Empty(t, f.bus.cancelled)

	ord, err := f.orders.GetOrder(ctx, user, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, ord.Status)
}

func TestCancelOrder_ConcurrentCancelRestoresOnce(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	p := f.product(t, "sd-card", 100000, 3)
	res := placeOrder(t, f, user, "", map[*models.Product]int{p: 2})

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orders.CancelOrder(context.Background(), user, res.OrderID)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, service.ErrOrderNotCancellable)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 3, f.stock(t, p.ID))
}

func TestCancelOrder_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	p := f.product(t, "cleaner", 100000, 3)
	res := placeOrder(t, f, owner, "", map[*models.Product]int{p: 1})

	_, err := f.orders.CancelOrder(ctx, uuid.New(), res.OrderID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = f.orders.CancelOrder(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, service.ErrOrderNotFound)

	_, err = f.orders.GetOrder(ctx, uuid.New(), res.OrderID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	assert.Equal(t, 2, f.stock(t, p.ID))
}

func TestCancelOrder_AfterProcessingIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	p := f.product(t, "monopod", 100000, 3)
	res := placeOrder(t, f, user, "", map[*models.Product]int{p: 1})

	_, err := f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatusProcessing)
	require.NoError(t, err)

	_, err = f.orders.CancelOrder(ctx, user, res.OrderID)
	assert.ErrorIs(t, err, service.ErrOrderNotCancellable)
	assert.Equal(t, 2, f.stock(t, p.ID))
}

func TestAdminUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	p := f.product(t, "body-cap", 100000, 3)
	res := placeOrder(t, f, user, "", map[*models.Product]int{p: 1})

	ord, err := f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, ord.Status)

	_, err = f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatusPending)
	assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
	assert.NotErrorIs(t, err, service.ErrOrderStatusFinal)

	_, err = f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatusDelivered)
	require.NoError(t, err)

	_, err = f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatusShipping)
	assert.ErrorIs(t, err, service.ErrOrderStatusFinal)

	_, err = f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatus("lost"))
	assert.ErrorIs(t, err, service.ErrValidation)

	require.Len(t, f.bus.changed, 2)
	assert.Equal(t, models.OrderStatusConfirmed, f.bus.changed[1].From)
	assert.Equal(t, models.OrderStatusDelivered, f.bus.changed[1].To)
}

func TestAdminCancelRestoresStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	p := f.product(t, "charger", 100000, 3)
	res := placeOrder(t, f, user, "", map[*models.Product]int{p: 3})
	assert.Equal(t, 0, f.stock(t, p.ID))

	ord, err := f.admin.UpdateStatus(ctx, res.OrderID, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, ord.Status)
	assert.Equal(t, 3, f.stock(t, p.ID))
	require.Len(t, f.bus.cancelled, 1)
	assert.Equal(t, "admin", f.bus.cancelled[0].CancelledBy)
}

func TestAdminDeleteOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	p := f.product(t, "strap-2", 100000, 3)
	res := placeOrder(t, f, user, "", map[*models.Product]int{p: 1})

	require.NoError(t, f.admin.DeleteOrder(ctx, res.OrderID))
	_, err := f.admin.GetOrder(ctx, res.OrderID)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
	assert.ErrorIs(t, f.admin.DeleteOrder(ctx, res.OrderID), service.ErrOrderNotFound)
}

func TestReorder_MergesIntoCartAtCurrentPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	p := f.product(t, "lens-cap", 50000, 10)
	res := placeOrder(t, f, user, "", map[*models.Product]int{p: 2})

	require.NoError(t, f.repo.DB.Model(&models.Product{}).Where("id = ?", p.ID).Update("price", dec(60000)).Error)
	f.addToCart(t, user, p, 1)

	cart, err := f.orders.Reorder(ctx, user, res.OrderID)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assertDec(t, 60000, cart[0].Price)

	// stock is not reserved by the cart
	assert.Equal(t, 8, f.stock(t, p.ID))
}

func TestReorder_UnavailableLeavesCartUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	a := f.product(t, "hotshoe", 50000, 5)
	b := f.product(t, "remote", 80000, 1)
	res := placeOrder(t, f, user, "", map[*models.Product]int{a: 1, b: 1})

	_, err := f.orders.Reorder(ctx, user, res.OrderID)
	require.ErrorIs(t, err, service.ErrReorderUnavailable)

	var rerr *service.ReorderUnavailableError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, []string{"remote"}, rerr.Products)
	assert.Equal(t, 0, f.cartLen(t, user))

	_, err = f.orders.Reorder(ctx, uuid.New(), res.OrderID)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestListOrders_FiltersByStatusAndOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()
	p := f.product(t, "wipe", 10000, 50)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		ids = append(ids, placeOrder(t, f, user, "", map[*models.Product]int{p: 1}).OrderID)
	}
	placeOrder(t, f, uuid.New(), "", map[*models.Product]int{p: 1})
	_, err := f.orders.CancelOrder(ctx, user, ids[0])
	require.NoError(t, err)

	page, err := f.orders.ListOrders(ctx, user, service.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.Page)

	cancelled := models.OrderStatusCancelled
	page, err = f.orders.ListOrders(ctx, user, service.ListFilter{Status: &cancelled})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, ids[0], page.Orders[0].ID)

	all, err := f.admin.ListOrders(ctx, service.AdminListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Total)
}
