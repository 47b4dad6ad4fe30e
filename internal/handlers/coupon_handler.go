package handlers

import (
	"errors"
	"net/http"

	"camerashop-be/internal/dto"
	"camerashop-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CouponHandler struct {
	responder
	coupons service.CouponService
}

func NewCouponHandler(coupons service.CouponService, log *zap.Logger, debug bool) *CouponHandler {
	return &CouponHandler{responder: responder{log: log, debug: debug}, coupons: coupons}
}

// Validate godoc
// @Summary Preview a coupon against an order amount
// @Description Read-only; never consumes a use
// @Tags coupons
// @Accept json
// @Produce json
// @Param code path string true "Coupon code"
// @Param body body dto.CouponValidateRequest true "Order amount"
// @Success 200 {object} dto.CouponValidateResponse
// @Failure 404 {object} dto.CouponValidateResponse
// @Router /api/v1/coupons/{code}/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req dto.CouponValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	code := c.Param("code")
	q, err := h.coupons.Validate(c.Request.Context(), code, req.OrderAmount)
	if err != nil {
		var cerr *service.CouponRejectedError
		if !errors.As(err, &cerr) {
			h.fail(c, err)
			return
		}
		status := http.StatusOK
		if cerr.Reason == service.CouponNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.CouponValidateResponse{
			Valid:      false,
			Discount:   decimal.Zero,
			CouponCode: code,
			Message:    cerr.Message,
			Reason:     string(cerr.Reason),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CouponValidateResponse{
		Valid:      true,
		Discount:   q.Discount,
		CouponCode: q.Code,
		Message:    "coupon applied",
	})
}
