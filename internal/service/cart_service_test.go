package service_test

import (
	"context"
	"errors"
	"testing"

	"camerashop-be/internal/models"
	"camerashop-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCartService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart := service.NewCartService(f.repo, zap.NewNop())
	user := uuid.New()
	p := f.product(t, "lens-pen", 40000, 3)

	v, err := cart.AddItem(ctx, user, p.ID, 2)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 2, v.ItemCount)
	assertDec(t, 80000, v.Subtotal)

	// 2 in cart + 2 more exceeds 3 in stock
	_, err = cart.AddItem(ctx, user, p.ID, 2)
	var serr *service.InsufficientStockError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 4, serr.Requested)

	_, err = cart.AddItem(ctx, user, uuid.New(), 1)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
	_, err = cart.AddItem(ctx, user, p.ID, 0)
	assert.ErrorIs(t, err, service.ErrQuantityInvalid)

	line := v.Items[0].ID
	_, err = cart.UpdateItem(ctx, uuid.New(), line, 1)
	assert.ErrorIs(t, err, service.ErrForbidden)

	v, err = cart.UpdateItem(ctx, user, line, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v.ItemCount)

	v, err = cart.UpdateItem(ctx, user, line, 0)
	require.NoError(t, err)
	assert.Empty(t, v.Items)

	_, err = cart.RemoveItem(ctx, user, line)
	assert.ErrorIs(t, err, service.ErrCartItemNotFound)

	_, err = cart.AddItem(ctx, user, p.ID, 1)
	require.NoError(t, err)
	require.NoError(t, cart.Clear(ctx, user))
	assert.Equal(t, 0, f.cartLen(t, user))
}

func TestCouponService_PreviewDoesNotConsume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	coupons := service.NewCouponService(f.repo.Coupons)
	f.coupon(t, &models.Coupon{Code: "TEN", Type: models.CouponPercentage, Value: dec(10), UsageLimit: intPtr(1)})

	for i := 0; i < 2; i++ {
		q, err := coupons.Validate(ctx, " TEN ", dec(600000))
		require.NoError(t, err)
		assertDec(t, 60000, q.Discount)
	}
	assert.Equal(t, 0, f.usedCount(t, "TEN"))

	_, err := coupons.Validate(ctx, "", dec(1))
	assert.ErrorIs(t, err, service.ErrValidation)
	_, err = coupons.Validate(ctx, "TEN", dec(-1))
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = coupons.Validate(ctx, "MISSING", dec(1))
	var cerr *service.CouponRejectedError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, service.CouponNotFound, cerr.Reason)
}
