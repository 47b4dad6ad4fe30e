package dto

import (
	"camerashop-be/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

type CartItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Product   *ProductBrief   `json:"product,omitempty"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Subtotal  decimal.Decimal    `json:"subtotal" swaggertype:"string"`
	ItemCount int                `json:"item_count"`
}

type ReorderResponse struct {
	Message   string             `json:"message" example:"items added to cart"`
	CartItems []CartItemResponse `json:"cart_items"`
}

func NewCartItems(lines []models.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartItemResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
			Subtotal:  l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
			Product:   productBrief(l.Product),
		})
	}
	return out
}

type CouponValidateRequest struct {
	OrderAmount decimal.Decimal `json:"order_amount" swaggertype:"string" example:"600000"`
}

type CouponValidateResponse struct {
	Valid      bool            `json:"valid"`
	Discount   decimal.Decimal `json:"discount" swaggertype:"string"`
	CouponCode string          `json:"coupon_code"`
	Message    string          `json:"message"`
	Reason     string          `json:"reason,omitempty"`
}

type LowStockListResponse struct {
	Data  []models.LowStockNotification `json:"data"`
	Total int64                         `json:"total"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
