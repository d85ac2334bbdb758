package entities_test

import (
	"testing"

	"github.com/aclo-store/checkout-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name string
		from entities.OrderStatus
		to   entities.OrderStatus
		want bool
	}{
		{name: "pending to processing", from: entities.StatusPending, to: entities.StatusProcessing, want: true},
		{name: "pending to rejected", from: entities.StatusPending, to: entities.StatusRejected, want: true},
		{name: "pending to cancelling", from: entities.StatusPending, to: entities.StatusCancelling, want: true},
		{name: "pending cannot skip to shipping", from: entities.StatusPending, to: entities.StatusShipping, want: false},
		{name: "processing to shipping", from: entities.StatusProcessing, to: entities.StatusShipping, want: true},
		{name: "processing cannot go back to pending", from: entities.StatusProcessing, to: entities.StatusPending, want: false},
		{name: "shipping to delivered", from: entities.StatusShipping, to: entities.StatusDelivered, want: true},
		{name: "delivered to returned", from: entities.StatusDelivered, to: entities.StatusReturned, want: true},
		{name: "delivered to refunded", from: entities.StatusDelivered, to: entities.StatusRefunded, want: true},
		{name: "delivered to exchanged", from: entities.StatusDelivered, to: entities.StatusExchanged, want: true},
		{name: "delivered cannot be cancelled", from: entities.StatusDelivered, to: entities.StatusCancelling, want: false},
		{name: "cancelling to cancelled", from: entities.StatusCancelling, to: entities.StatusCancelled, want: true},
		{name: "cancelled is final", from: entities.StatusCancelled, to: entities.StatusPending, want: false},
		{name: "rejected is final", from: entities.StatusRejected, to: entities.StatusProcessing, want: false},
		{name: "returned is final", from: entities.StatusReturned, to: entities.StatusRefunded, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	terminal := []entities.OrderStatus{
		entities.StatusCancelled,
		entities.StatusRejected,
		entities.StatusReturned,
		entities.StatusRefunded,
		entities.StatusExchanged,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "%s should be terminal", s)
	}

	active := []entities.OrderStatus{
		entities.StatusPending,
		entities.StatusProcessing,
		entities.StatusShipping,
		entities.StatusDelivered,
		entities.StatusCancelling,
	}
	for _, s := range active {
		assert.False(t, s.Terminal(), "%s should not be terminal", s)
	}

	assert.False(t, entities.OrderStatus("teleported").Terminal())
}

func TestOrderStatus_Cancellable(t *testing.T) {
	assert.True(t, entities.StatusPending.Cancellable())
	assert.True(t, entities.StatusProcessing.Cancellable())
	assert.True(t, entities.StatusShipping.Cancellable())
	assert.False(t, entities.StatusDelivered.Cancellable())
	assert.False(t, entities.StatusCancelled.Cancellable())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entities.StatusPending.Valid())
	assert.True(t, entities.StatusExchanged.Valid())
	assert.False(t, entities.OrderStatus("").Valid())
	assert.False(t, entities.OrderStatus("teleported").Valid())
}
