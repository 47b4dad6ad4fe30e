package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// forward-only progression; cancelled is handled separately
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipping:   3,
	OrderStatusDelivered:  4,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == OrderStatusCancelled
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || s == next {
		return false
	}
	if next == OrderStatusCancelled {
		return s.Cancellable()
	}
	from, ok1 := statusRank[s]
	to, ok2 := statusRank[next]
	return ok1 && ok2 && to > from
}

type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "cod"
	PaymentVNPay PaymentMethod = "vnpay"
	PaymentMomo  PaymentMethod = "momo"
)

type Order struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	OrderNumber      string          `gorm:"type:varchar(40);not null;uniqueIndex" json:"order_number"`
	CustomerName     string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail    string          `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone    string          `gorm:"type:varchar(20);not null" json:"customer_phone"`
	ShippingAddress  string          `gorm:"type:varchar(500);not null" json:"shipping_address"`
	ShippingWard     string          `gorm:"type:varchar(255)" json:"shipping_ward,omitempty"`
	ShippingDistrict string          `gorm:"type:varchar(255)" json:"shipping_district,omitempty"`
	ShippingCity     string          `gorm:"type:varchar(255)" json:"shipping_city,omitempty"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"subtotal"`
	ShippingFee      decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"shipping_fee"`
	DiscountAmount   decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"discount_amount"`
	Total            decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"total"`
	CouponCode       *string         `gorm:"type:varchar(255)" json:"coupon_code,omitempty"`
	PaymentMethod    PaymentMethod   `gorm:"type:varchar(20);not null;default:'cod'" json:"payment_method"`
	Status           OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes            string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OwnedBy reports whether the order belongs to userID. Guest orders belong to no one.
func (o *Order) OwnedBy(userID uuid.UUID) bool {
	return o.UserID != nil && *o.UserID == userID
}

// OrderItem is a snapshot of a cart line at checkout and is never updated.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:ux_order_items_order_product" json:"order_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_order_items_order_product" json:"product_id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductSKU   string          `gorm:"column:product_sku;type:varchar(100)" json:"product_sku,omitempty"`
	ProductImage string          `gorm:"type:varchar(500)" json:"product_image,omitempty"`
	Price        decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"price"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"subtotal"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	SKU           string          `gorm:"column:sku;type:varchar(100)" json:"sku,omitempty"`
	Image         string          `gorm:"type:varchar(500)" json:"image,omitempty"`
	Price         decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	IsActive      bool            `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

type CouponType string

const (
	CouponFixed      CouponType = "fixed"
	CouponPercentage CouponType = "percentage"
)

type Coupon struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code          string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"code"`
	Type          CouponType      `gorm:"type:varchar(20);not null" json:"type"`
	Value         decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"value"`
	MinOrderValue decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"min_order_value"`
	UsageLimit    *int            `json:"usage_limit,omitempty"`
	UsedCount     int             `gorm:"not null;default:0" json:"used_count"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	IsActive      bool            `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Coupon) TableName() string { return "coupons" }

type CartItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_carts_user_product" json:"user_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_carts_user_product" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string { return "carts" }

type LowStockNotification struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	CurrentStock int       `gorm:"not null" json:"current_stock"`
	Threshold    int       `gorm:"not null" json:"threshold"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	IsRead       bool      `gorm:"not null;default:false;index" json:"is_read"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (LowStockNotification) TableName() string { return "low_stock_notifications" }
