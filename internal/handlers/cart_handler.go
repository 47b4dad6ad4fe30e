package handlers

import (
	"net/http"

	"camerashop-be/internal/dto"
	"camerashop-be/internal/middleware"
	"camerashop-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	responder
	cart service.CartService
}

func NewCartHandler(cart service.CartService, log *zap.Logger, debug bool) *CartHandler {
	return &CartHandler{responder: responder{log: log, debug: debug}, cart: cart}
}

func cartResponse(v *service.CartView) dto.CartResponse {
	return dto.CartResponse{Items: dto.NewCartItems(v.Items), Subtotal: v.Subtotal, ItemCount: v.ItemCount}
}

// GetCart godoc
// @Summary Show the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Router /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	v, err := h.cart.GetCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(v))
}

// AddItem godoc
// @Summary Add a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body dto.AddToCartRequest true "Product and quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.StockErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/cart/add [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.bindFailed(c, err)
		return
	}
	v, err := h.cart.AddItem(c.Request.Context(), middleware.UserID(c), productID, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(v))
}

// UpdateItem godoc
// @Summary Change a cart line quantity (0 removes it)
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Param item body dto.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.StockErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}
	v, err := h.cart.UpdateItem(c.Request.Context(), middleware.UserID(c), id, *req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(v))
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 200 {object} dto.CartResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := h.cart.RemoveItem(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(v))
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Security BearerAuth
// @Success 204
// @Router /api/v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
