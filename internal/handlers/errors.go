package handlers

import (
	"errors"
	"net/http"

	"camerashop-be/internal/dto"
	"camerashop-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// responder maps service errors onto HTTP responses. Internal error details
// are only exposed when debug is set.
type responder struct {
	log   *zap.Logger
	debug bool
}

func (r responder) fail(c *gin.Context, err error) {
	var (
		verr *service.ValidationError
		serr *service.InsufficientStockError
		cerr *service.CouponRejectedError
		rerr *service.ReorderUnavailableError
		oerr *service.OrderStatusError
	)

	switch {
	case errors.As(err, &verr):
		fields := make([]dto.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message, Tag: f.Tag})
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationError("validation failed", fields))
	case errors.Is(err, service.ErrQuantityInvalid):
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err.Error(), []dto.FieldError{{Field: "quantity", Message: err.Error(), Tag: "min"}}))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("authentication required"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewForbiddenError("you do not have access to this resource"))
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, dto.NewBusinessError("cart is empty"))
	case errors.As(err, &serr):
		c.JSON(http.StatusBadRequest, dto.StockErrorResponse{
			Code:           "insufficient_stock",
			Message:        "not enough stock for " + serr.ProductName,
			ProductName:    serr.ProductName,
			AvailableStock: serr.Available,
		})
	case errors.As(err, &cerr):
		c.JSON(http.StatusBadRequest, dto.CouponErrorResponse{
			Code:    "coupon_invalid",
			Message: cerr.Message,
			Reason:  string(cerr.Reason),
		})
	case errors.As(err, &rerr):
		c.JSON(http.StatusBadRequest, dto.ReorderErrorResponse{
			Code:               "reorder_unavailable",
			Message:            "some products are out of stock or no longer exist",
			OutOfStockProducts: rerr.Products,
		})
	case errors.As(err, &oerr):
		c.JSON(http.StatusBadRequest, dto.NewBusinessError(oerr.Error()))
	default:
		r.log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		details := ""
		if r.debug {
			details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(details))
	}
}

// bindFailed answers a request whose body could not be bound.
func (r responder) bindFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}
	fields := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldError{Field: fe.Field(), Message: "failed on " + fe.Tag(), Tag: fe.Tag()})
	}
	c.JSON(http.StatusBadRequest, dto.NewValidationError("validation failed", fields))
}
