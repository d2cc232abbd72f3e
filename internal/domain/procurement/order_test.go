package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procure/backend/internal/domain/shared"
)

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("computes total across lines", func(t *testing.T) {
		order, err := NewPurchaseOrder(1, []OrderLine{
			{ItemID: 10, Quantity: 10, UnitPrice: decimal.NewFromInt(2)},
			{ItemID: 11, Quantity: 3, UnitPrice: decimal.RequireFromString("1.50")},
		})
		require.NoError(t, err)

		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Nil(t, order.UpdatedDate)
		assert.False(t, order.OrderDate.IsZero())
		assert.Len(t, order.Items, 2)
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("24.50")),
			"expected 24.50, got %s", order.TotalAmount)
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := NewPurchaseOrder(1, nil)
		require.Error(t, err)
		assert.True(t, shared.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "must contain at least one item")
	})

	t.Run("rejects non-positive supplier id", func(t *testing.T) {
		_, err := NewPurchaseOrder(0, []OrderLine{{ItemID: 10, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}})
		require.Error(t, err)
		assert.True(t, shared.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "Invalid supplier ID")
	})

	t.Run("lists duplicate item ids in first-seen order", func(t *testing.T) {
		_, err := NewPurchaseOrder(1, []OrderLine{
			{ItemID: 7, Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
			{ItemID: 8, Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
			{ItemID: 7, Quantity: 2, UnitPrice: decimal.NewFromInt(1)},
			{ItemID: 8, Quantity: 2, UnitPrice: decimal.NewFromInt(1)},
			{ItemID: 7, Quantity: 3, UnitPrice: decimal.NewFromInt(1)},
		})
		require.Error(t, err)
		assert.True(t, shared.IsInvalidInput(err))
		assert.Equal(t, "Duplicate items found: 7, 8.", err.Error())
	})

	t.Run("rejects non-positive quantity and negative price together", func(t *testing.T) {
		_, err := NewPurchaseOrder(1, []OrderLine{
			{ItemID: 10, Quantity: 0, UnitPrice: decimal.NewFromInt(-1)},
		})
		require.Error(t, err)

		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Len(t, de.Messages, 2)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	t.Run("pending completes", func(t *testing.T) {
		order := &PurchaseOrder{ID: 5, Status: OrderStatusPending}
		require.NoError(t, order.TransitionTo(OrderStatusCompleted))
		assert.Equal(t, OrderStatusCompleted, order.Status)
		require.NotNil(t, order.UpdatedDate)
	})

	t.Run("pending cancels", func(t *testing.T) {
		order := &PurchaseOrder{ID: 5, Status: OrderStatusPending}
		require.NoError(t, order.TransitionTo(OrderStatusCancelled))
		assert.Equal(t, OrderStatusCancelled, order.Status)
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		for _, status := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
			order := &PurchaseOrder{ID: 9, Status: status}
			err := order.TransitionTo(OrderStatusCompleted)
			require.Error(t, err)
			assert.True(t, shared.IsNotFound(err))
			assert.Contains(t, err.Error(), "Only pending orders can be updated")
		}
	})

	t.Run("pending is not a valid target", func(t *testing.T) {
		order := &PurchaseOrder{ID: 9, Status: OrderStatusPending}
		err := order.TransitionTo(OrderStatusPending)
		require.Error(t, err)
		assert.True(t, shared.IsInvalidInput(err))
	})
}

func TestParseTargetStatus(t *testing.T) {
	t.Run("normalizes case", func(t *testing.T) {
		status, err := ParseTargetStatus("Completed")
		require.NoError(t, err)
		assert.Equal(t, OrderStatusCompleted, status)

		status, err = ParseTargetStatus("CANCELLED")
		require.NoError(t, err)
		assert.Equal(t, OrderStatusCancelled, status)
	})

	t.Run("rejects unknown and non-terminal targets", func(t *testing.T) {
		for _, raw := range []string{"pending", "shipped", ""} {
			_, err := ParseTargetStatus(raw)
			require.Error(t, err, "status %q", raw)
			assert.True(t, shared.IsInvalidInput(err))
		}
	})
}

func TestLineForItem(t *testing.T) {
	order := &PurchaseOrder{Items: []PurchaseOrderItem{
		{ItemID: 10, Quantity: 4},
		{ItemID: 11, Quantity: 6},
	}}

	line := order.LineForItem(11)
	require.NotNil(t, line)
	assert.Equal(t, 6, line.Quantity)

	assert.Nil(t, order.LineForItem(99))
}

func TestOrderStatusPredicates(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())

	assert.False(t, OrderStatusPending.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())

	assert.True(t, OrderStatusCompleted.CanReceive())
	assert.False(t, OrderStatusPending.CanReceive())
	assert.False(t, OrderStatusCancelled.CanReceive())
}
