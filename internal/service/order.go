package service

import (
	"context"
	"errors"
	"strings"

	"camerashop-be/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	userOrdersPerPage  = 10
	adminOrdersPerPage = 15
)

type CreateOrderInput struct {
	CustomerName     string `validate:"required,max=255"`
	CustomerEmail    string `validate:"required,email,max=255"`
	CustomerPhone    string `validate:"required,max=20"`
	ShippingAddress  string `validate:"required,max=500"`
	ShippingWard     string `validate:"max=255"`
	ShippingDistrict string `validate:"max=255"`
	ShippingCity     string `validate:"max=255"`
	PaymentMethod    string `validate:"required,oneof=cod vnpay momo"`
	CustomerNote     string `validate:"max=2000"`
	CouponCode       string `validate:"max=255"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldNames maps struct fields to their wire names.
var fieldNames = map[string]string{
	"CustomerName":     "customer_name",
	"CustomerEmail":    "customer_email",
	"CustomerPhone":    "customer_phone",
	"ShippingAddress":  "shipping_address",
	"ShippingWard":     "shipping_ward",
	"ShippingDistrict": "shipping_district",
	"ShippingCity":     "shipping_city",
	"PaymentMethod":    "payment_method",
	"CustomerNote":     "customer_note",
	"CouponCode":       "coupon_code",
}

func (in *CreateOrderInput) normalize() {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.ShippingAddress = strings.TrimSpace(in.ShippingAddress)
	in.CouponCode = strings.TrimSpace(in.CouponCode)
	in.PaymentMethod = strings.ToLower(strings.TrimSpace(in.PaymentMethod))
}

func (in *CreateOrderInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		name := fieldNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		out.Fields = append(out.Fields, FieldViolation{
			Field:   name,
			Tag:     fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

type CreateOrderResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	Total       decimal.Decimal
	Order       *models.Order
}

type ListFilter struct {
	Status *models.OrderStatus
	Page   int
}

type AdminListFilter struct {
	Status *models.OrderStatus
	Search string
	SortBy string
	Desc   bool
	Page   int
}

type OrderPage struct {
	Orders  []models.Order
	Total   int64
	Page    int
	PerPage int
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, in CreateOrderInput) (*CreateOrderResult, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, f ListFilter) (*OrderPage, error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	Reorder(ctx context.Context, userID, orderID uuid.UUID) ([]models.CartItem, error)
}

type AdminOrderService interface {
	ListOrders(ctx context.Context, f AdminListFilter) (*OrderPage, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type CouponService interface {
	Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*CouponQuote, error)
}

type CartView struct {
	Items     []models.CartItem
	Subtotal  decimal.Decimal
	ItemCount int
}

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*CartView, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, qty int) (*CartView, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

func pageOffset(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * perPage
}
