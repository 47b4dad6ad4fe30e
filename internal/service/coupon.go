package service

import (
	"context"
	"strings"
	"time"

	"camerashop-be/internal/models"
	"camerashop-be/internal/repository"

	"github.com/shopspring/decimal"
)

type CouponRejection string

const (
	CouponNotFound          CouponRejection = "not_found"
	CouponInactive          CouponRejection = "inactive"
	CouponNotYetActive      CouponRejection = "not_yet_active"
	CouponExpired           CouponRejection = "expired"
	CouponUsageLimitReached CouponRejection = "usage_limit_reached"
	CouponMinOrderNotMet    CouponRejection = "min_order_not_met"
)

type CouponRejectedError struct {
	Code    string
	Reason  CouponRejection
	Message string
}

func (e *CouponRejectedError) Error() string { return e.Message }

func (e *CouponRejectedError) Is(target error) bool {
	switch target {
	case ErrCouponInvalid:
		return true
	case ErrCouponUsageExhausted:
		return e.Reason == CouponUsageLimitReached
	}
	return false
}

func reject(code string, reason CouponRejection, msg string) *CouponRejectedError {
	return &CouponRejectedError{Code: code, Reason: reason, Message: msg}
}

// EvaluateCoupon applies the redemption rules to c and returns the discount
// for subtotal. The first failing rule wins. It has no side effects.
func EvaluateCoupon(c *models.Coupon, code string, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if c == nil {
		return decimal.Zero, reject(code, CouponNotFound, "coupon does not exist")
	}
	if !c.IsActive {
		return decimal.Zero, reject(c.Code, CouponInactive, "coupon is not active")
	}
	if c.StartDate != nil && now.Before(*c.StartDate) {
		return decimal.Zero, reject(c.Code, CouponNotYetActive, "coupon is not valid yet")
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return decimal.Zero, reject(c.Code, CouponExpired, "coupon has expired")
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return decimal.Zero, reject(c.Code, CouponUsageLimitReached, "coupon has reached its usage limit")
	}
	if subtotal.LessThan(c.MinOrderValue) {
		return decimal.Zero, reject(c.Code, CouponMinOrderNotMet,
			"order must be at least "+FormatVND(c.MinOrderValue)+" to use this coupon")
	}

	var discount decimal.Decimal
	switch c.Type {
	case models.CouponPercentage:
		discount = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	default:
		discount = c.Value
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount.Round(0), nil
}

// FormatVND renders whole dong with dot thousands separators, e.g. "500.000 VNĐ".
func FormatVND(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String() + " VNĐ"
	if neg {
		out = "-" + out
	}
	return out
}

type CouponQuote struct {
	Code     string
	Discount decimal.Decimal
	Coupon   *models.Coupon
}

func quoteCoupon(ctx context.Context, coupons repository.CouponRepo, code string, subtotal decimal.Decimal, now time.Time) (*CouponQuote, error) {
	c, err := coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	discount, err := EvaluateCoupon(c, code, subtotal, now)
	if err != nil {
		return nil, err
	}
	return &CouponQuote{Code: c.Code, Discount: discount, Coupon: c}, nil
}

type couponService struct {
	coupons repository.CouponRepo
	now     func() time.Time
}

func NewCouponService(coupons repository.CouponRepo) CouponService {
	return &couponService{coupons: coupons, now: time.Now}
}

func (s *couponService) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*CouponQuote, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, &ValidationError{Fields: []FieldViolation{{Field: "code", Tag: "required", Message: "coupon code is required"}}}
	}
	if subtotal.IsNegative() {
		return nil, &ValidationError{Fields: []FieldViolation{{Field: "order_amount", Tag: "min", Message: "order amount must not be negative"}}}
	}
	return quoteCoupon(ctx, s.coupons, code, subtotal, s.now())
}
