package service

import (
	"errors"
	"fmt"
	"strings"

	"camerashop-be/internal/models"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrOrderNotFound           = errors.New("order not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrQuantityInvalid         = errors.New("quantity must be > 0")
	ErrInsufficientStock       = errors.New("not enough stock")
	ErrCouponInvalid           = errors.New("coupon is not applicable")
	ErrCouponUsageExhausted    = errors.New("coupon usage limit reached")
	ErrOrderNotCancellable     = errors.New("order cannot be cancelled")
	ErrOrderStatusFinal        = errors.New("order status is final")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrReorderUnavailable      = errors.New("some products are no longer available")
	ErrValidation              = errors.New("validation failed")
)

type FieldViolation struct {
	Field   string
	Tag     string
	Message string
}

// ValidationError is returned before any write happens.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q: available %d, requested %d", e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

type OrderStatusError struct {
	Current models.OrderStatus
	Target  models.OrderStatus
}

func (e *OrderStatusError) Error() string {
	switch {
	case e.Target == models.OrderStatusCancelled:
		return fmt.Sprintf("order cannot be cancelled in status %q", e.Current)
	case e.Current.IsTerminal():
		return fmt.Sprintf("order is already %s and can no longer change status", e.Current)
	default:
		return fmt.Sprintf("cannot change order status from %q to %q", e.Current, e.Target)
	}
}

func (e *OrderStatusError) Is(target error) bool {
	switch target {
	case ErrOrderStatusFinal:
		return e.Current.IsTerminal()
	case ErrOrderNotCancellable:
		return e.Target == models.OrderStatusCancelled
	case ErrInvalidStatusTransition:
		return true
	}
	return false
}

type ReorderUnavailableError struct {
	Products []string
}

func (e *ReorderUnavailableError) Error() string {
	return "products out of stock or removed: " + strings.Join(e.Products, ", ")
}

func (e *ReorderUnavailableError) Unwrap() error { return ErrReorderUnavailable }
