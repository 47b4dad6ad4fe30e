package dto

import (
	"time"

	"camerashop-be/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CustomerName     string `json:"customer_name" example:"Nguyen Van A"`
	CustomerEmail    string `json:"customer_email" example:"a@example.com"`
	CustomerPhone    string `json:"customer_phone" example:"0901234567"`
	ShippingAddress  string `json:"shipping_address" example:"12 Le Loi"`
	ShippingWard     string `json:"shipping_ward,omitempty"`
	ShippingDistrict string `json:"shipping_district,omitempty"`
	ShippingCity     string `json:"shipping_city,omitempty"`
	PaymentMethod    string `json:"payment_method" example:"cod"`
	CustomerNote     string `json:"customer_note,omitempty"`
	CouponCode       string `json:"coupon_code,omitempty" example:"SALE10"`
}

type CreateOrderResponse struct {
	OrderNumber string          `json:"order_number" example:"ORD-20250101120000-AB12CD"`
	OrderID     uuid.UUID       `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string" example:"530000"`
}

type OrderItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductSKU   string          `json:"product_sku,omitempty"`
	ProductImage string          `json:"product_image,omitempty"`
	Price        decimal.Decimal `json:"price" swaggertype:"string"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Product      *ProductBrief   `json:"product,omitempty"`
}

type ProductBrief struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Image         string          `json:"image,omitempty"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	StockQuantity int             `json:"stock_quantity"`
}

type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	OrderNumber      string              `json:"order_number"`
	UserID           *uuid.UUID          `json:"user_id,omitempty"`
	CustomerName     string              `json:"customer_name"`
	CustomerEmail    string              `json:"customer_email"`
	CustomerPhone    string              `json:"customer_phone"`
	ShippingAddress  string              `json:"shipping_address"`
	ShippingWard     string              `json:"shipping_ward,omitempty"`
	ShippingDistrict string              `json:"shipping_district,omitempty"`
	ShippingCity     string              `json:"shipping_city,omitempty"`
	Subtotal         decimal.Decimal     `json:"subtotal" swaggertype:"string"`
	ShippingFee      decimal.Decimal     `json:"shipping_fee" swaggertype:"string"`
	DiscountAmount   decimal.Decimal     `json:"discount_amount" swaggertype:"string"`
	Total            decimal.Decimal     `json:"total" swaggertype:"string"`
	CouponCode       *string             `json:"coupon_code,omitempty"`
	PaymentMethod    string              `json:"payment_method"`
	Status           string              `json:"status"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	Items            []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

type CancelOrderResponse struct {
	Message string        `json:"message" example:"order cancelled"`
	Order   OrderResponse `json:"order"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed processing shipping delivered cancelled" example:"confirmed"`
}

func productBrief(p *models.Product) *ProductBrief {
	if p == nil {
		return nil
	}
	return &ProductBrief{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Image:         p.Image,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}
}

func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductSKU:   it.ProductSKU,
			ProductImage: it.ProductImage,
			Price:        it.Price,
			Quantity:     it.Quantity,
			Subtotal:     it.Subtotal,
			Product:      productBrief(it.Product),
		})
	}
	return OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		UserID:           o.UserID,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		CustomerPhone:    o.CustomerPhone,
		ShippingAddress:  o.ShippingAddress,
		ShippingWard:     o.ShippingWard,
		ShippingDistrict: o.ShippingDistrict,
		ShippingCity:     o.ShippingCity,
		Subtotal:         o.Subtotal,
		ShippingFee:      o.ShippingFee,
		DiscountAmount:   o.DiscountAmount,
		Total:            o.Total,
		CouponCode:       o.CouponCode,
		PaymentMethod:    string(o.PaymentMethod),
		Status:           string(o.Status),
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Items:            items,
	}
}

func NewOrderListResponse(orders []models.Order, total int64, page, perPage int) OrderListResponse {
	data := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, NewOrderResponse(&orders[i]))
	}
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return OrderListResponse{Data: data, Total: total, Page: page, PerPage: perPage, TotalPages: pages}
}
