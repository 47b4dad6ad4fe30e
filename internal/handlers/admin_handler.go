package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"camerashop-be/internal/dto"
	"camerashop-be/internal/models"
	"camerashop-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lowStockPerPage = 20

type LowStockReader interface {
	List(ctx context.Context, onlyUnread bool, limit, offset int) ([]models.LowStockNotification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
}

type AdminHandler struct {
	responder
	orders   service.AdminOrderService
	lowStock LowStockReader
}

func NewAdminHandler(orders service.AdminOrderService, lowStock LowStockReader, log *zap.Logger, debug bool) *AdminHandler {
	return &AdminHandler{responder: responder{log: log, debug: debug}, orders: orders, lowStock: lowStock}
}

// ListOrders godoc
// @Summary List all orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param search query string false "Order number prefix"
// @Param sort_by query string false "created_at or total"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.OrderListResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Router /api/v1/admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	status, ok := parseStatus(c)
	if !ok {
		return
	}
	page, err := h.orders.ListOrders(c.Request.Context(), service.AdminListFilter{
		Status: status,
		Search: c.Query("search"),
		SortBy: c.DefaultQuery("sort_by", "created_at"),
		Desc:   c.DefaultQuery("sort_order", "desc") != "asc",
		Page:   queryPage(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListResponse(page.Orders, page.Total, page.Page, page.PerPage))
}

// GetOrder godoc
// @Summary Show any order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ord, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(ord))
}

// UpdateStatus godoc
// @Summary Move an order to a new status
// @Description Delivered and cancelled orders are final
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.BusinessErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Failure 422 {object} dto.UnprocessableErrorResponse
// @Router /api/v1/admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}
	ord, err := h.orders.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrOrderStatusFinal) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewUnprocessableError(err.Error()))
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(ord))
}

// DeleteOrder godoc
// @Summary Soft-delete an order
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/admin/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLowStock godoc
// @Summary List low-stock notifications
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Param page query int false "Page number"
// @Success 200 {object} dto.LowStockListResponse
// @Router /api/v1/admin/lowstock [get]
func (h *AdminHandler) ListLowStock(c *gin.Context) {
	onlyUnread, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))
	offset := (queryPage(c) - 1) * lowStockPerPage
	rows, total, err := h.lowStock.List(c.Request.Context(), onlyUnread, lowStockPerPage, offset)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LowStockListResponse{Data: rows, Total: total})
}

// UnreadLowStock godoc
// @Summary Count unread low-stock notifications
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UnreadCountResponse
// @Router /api/v1/admin/lowstock/unread [get]
func (h *AdminHandler) UnreadLowStock(c *gin.Context) {
	n, err := h.lowStock.CountUnread(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Unread: n})
}

// MarkLowStockRead godoc
// @Summary Mark a low-stock notification as read
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/admin/lowstock/{id}/read [put]
func (h *AdminHandler) MarkLowStockRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.lowStock.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !found {
		h.fail(c, service.ErrNotificationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
