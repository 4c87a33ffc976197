package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from, to entity.OrderStatus
		want     bool
	}{
		{entity.OrderPending, entity.OrderProcessing, true},
		{entity.OrderProcessing, entity.OrderShipped, true},
		{entity.OrderShipped, entity.OrderDelivered, true},
		{entity.OrderPending, entity.OrderShipped, true},
		{entity.OrderShipped, entity.OrderCancelled, true},
		{entity.OrderShipped, entity.OrderPending, false},
		{entity.OrderProcessing, entity.OrderPending, false},
		{entity.OrderShipped, entity.OrderProcessing, false},
		{entity.OrderDelivered, entity.OrderCancelled, false},
		{entity.OrderCancelled, entity.OrderPending, false},
		{entity.OrderPending, entity.OrderStatus("LOST"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransition(tc.to), "%s → %s", tc.from, tc.to)
	}
}
