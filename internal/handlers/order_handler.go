package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"camerashop-be/internal/dto"
	"camerashop-be/internal/middleware"
	"camerashop-be/internal/models"
	"camerashop-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const IdempotencyHeader = "X-Idempotency-Key"

type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
	Release(ctx context.Context, scope, key string) error
}

type OrderHandler struct {
	responder
	orders service.OrderService
	idem   IdempotencyStore
}

// NewOrderHandler builds the customer order endpoints. idem may be nil.
func NewOrderHandler(orders service.OrderService, idem IdempotencyStore, log *zap.Logger, debug bool) *OrderHandler {
	return &OrderHandler{
		responder: responder{log: log, debug: debug},
		orders:    orders,
		idem:      idem,
	}
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid id", []dto.FieldError{{Field: name, Message: "must be a UUID", Tag: "uuid"}}))
		return uuid.Nil, false
	}
	return id, true
}

func parseStatus(c *gin.Context) (*models.OrderStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	st := models.OrderStatus(raw)
	if !st.Valid() {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid status", []dto.FieldError{{Field: "status", Message: "unknown order status", Tag: "oneof"}}))
		return nil, false
	}
	return &st, true
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// CreateOrder godoc
// @Summary Place an order from the cart
// @Description Validates stock and coupon, creates the order, decrements stock and clears the cart in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Idempotency-Key header string false "Client request key"
// @Param order body dto.CreateOrderRequest true "Checkout data"
// @Success 201 {object} dto.CreateOrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.UnauthorizedErrorResponse
// @Failure 409 {object} dto.ConflictErrorResponse
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	userID := middleware.UserID(c)
	ctx := c.Request.Context()
	scope := "order:" + userID.String()
	key := c.GetHeader(IdempotencyHeader)
	locked := false

	if h.idem != nil && key != "" {
		if stored, ok, err := h.idem.Recall(ctx, scope, key); err != nil {
			h.log.Warn("idempotency recall failed", zap.Error(err))
		} else if ok {
			c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(stored))
			return
		}

		acquired, err := h.idem.TryLock(ctx, scope, key)
		switch {
		case err != nil:
			h.log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
		case !acquired:
			c.JSON(http.StatusConflict, dto.NewConflictError("a request with this idempotency key is already in progress"))
			return
		default:
			locked = true
		}
	}

	res, err := h.orders.CreateOrder(ctx, userID, service.CreateOrderInput{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		ShippingAddress:  req.ShippingAddress,
		ShippingWard:     req.ShippingWard,
		ShippingDistrict: req.ShippingDistrict,
		ShippingCity:     req.ShippingCity,
		PaymentMethod:    req.PaymentMethod,
		CustomerNote:     req.CustomerNote,
		CouponCode:       req.CouponCode,
	})
	if err != nil {
		if locked {
			if rerr := h.idem.Release(ctx, scope, key); rerr != nil {
				h.log.Warn("idempotency release failed", zap.Error(rerr))
			}
		}
		h.fail(c, err)
		return
	}

	body, err := json.Marshal(dto.CreateOrderResponse{
		OrderNumber: res.OrderNumber,
		OrderID:     res.OrderID,
		TotalAmount: res.Total,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	if locked {
		if err := h.idem.Remember(ctx, scope, key, string(body)); err != nil {
			h.log.Warn("idempotency remember failed", zap.Error(err))
		}
	}
	c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
}

// ListOrders godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.UnauthorizedErrorResponse
// @Router /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	status, ok := parseStatus(c)
	if !ok {
		return
	}
	page, err := h.orders.ListOrders(c.Request.Context(), middleware.UserID(c), service.ListFilter{
		Status: status,
		Page:   queryPage(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListResponse(page.Orders, page.Total, page.Page, page.PerPage))
}

// GetOrder godoc
// @Summary Show one of the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ord, err := h.orders.GetOrder(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(ord))
}

// CancelOrder godoc
// @Summary Cancel a pending or confirmed order
// @Description Restores stock and coupon usage
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} dto.CancelOrderResponse
// @Failure 400 {object} dto.BusinessErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/orders/{id}/cancel [put]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ord, err := h.orders.CancelOrder(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CancelOrderResponse{Message: "order cancelled", Order: dto.NewOrderResponse(ord)})
}

// Reorder godoc
// @Summary Put the items of a past order back into the cart
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} dto.ReorderResponse
// @Failure 400 {object} dto.ReorderErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/orders/{id}/reorder [post]
func (h *OrderHandler) Reorder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cart, err := h.orders.Reorder(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReorderResponse{Message: "items added to cart", CartItems: dto.NewCartItems(cart)})
}
