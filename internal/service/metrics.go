package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders committed by checkout",
	})

	ordersCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_cancelled_total",
			Help: "Orders cancelled, by actor",
		},
		[]string{"by"},
	)

	orderRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_rejections_total",
			Help: "Checkout attempts rejected by a business rule",
		},
		[]string{"reason"},
	)
)

func rejectionReason(err error) string {
	var cre *CouponRejectedError
	switch {
	case errors.As(err, &cre):
		return "coupon_" + string(cre.Reason)
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrValidation):
		return "validation"
	}
	return ""
}
