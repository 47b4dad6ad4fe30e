package models_test

import (
	"testing"

	"camerashop-be/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.OrderStatusPending, models.OrderStatusConfirmed, true},
		{models.OrderStatusPending, models.OrderStatusShipping, true},
		{models.OrderStatusConfirmed, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, false},
		{models.OrderStatusShipping, models.OrderStatusConfirmed, false},
		{models.OrderStatusDelivered, models.OrderStatusShipping, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
		{models.OrderStatusCancelled, models.OrderStatusCancelled, false},
		{models.OrderStatusPending, models.OrderStatusPending, false},
		{models.OrderStatusPending, models.OrderStatus("lost"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatus_Flags(t *testing.T) {
	assert.True(t, models.OrderStatusDelivered.IsTerminal())
	assert.True(t, models.OrderStatusCancelled.IsTerminal())
	assert.False(t, models.OrderStatusShipping.IsTerminal())

	assert.True(t, models.OrderStatusPending.Cancellable())
	assert.True(t, models.OrderStatusConfirmed.Cancellable())
	assert.False(t, models.OrderStatusProcessing.Cancellable())

	assert.True(t, models.OrderStatusShipping.Valid())
	assert.False(t, models.OrderStatus("ORDER_STATUS_PENDING").Valid())
}

func TestOrder_OwnedBy(t *testing.T) {
	uid := uuid.New()
	assert.True(t, (&models.Order{UserID: &uid}).OwnedBy(uid))
	assert.False(t, (&models.Order{UserID: &uid}).OwnedBy(uuid.New()))
	assert.False(t, (&models.Order{}).OwnedBy(uid))
}
