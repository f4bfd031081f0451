package order_test

import (
	"testing"
	"time"

	"kitchenboard/internal/core/domain/model/order"
	"kitchenboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetails() order.Details {
	return order.Details{
		CustomerName:   "Ama",
		Phone:          "0244123456",
		Items:          "Jollof Rice, Grilled Chicken",
		Amount:         40,
		DeliveryFee:    5,
		DeliveryOption: "Delivery",
		PaymentMethod:  "Cash",
		Date:           "25/12/2025",
		Time:           "2:30 PM",
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())

		require.NoError(t, err)
		assert.Equal(t, "ORD-001", o.ID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.AcceptedBy())
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.ReadyAt())
		assert.Nil(t, o.ClearedAt())
	})

	t.Run("empty_id_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder("", testDetails())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_order_is_not_constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("constructed_order_is_valid", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	now := time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC)

	t.Run("full_workflow_leaves_ready_and_cleared", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)

		require.NoError(t, o.StartCooking("Kwame", now))
		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, "Kwame", o.AcceptedBy())
		require.NotNil(t, o.AcceptedAt())

		require.NoError(t, o.MarkReady(now.Add(10*time.Minute)))
		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.ReadyAt())

		require.NoError(t, o.Clear(now.Add(20*time.Minute)))
		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.ClearedAt())
	})

	t.Run("double_acceptance_is_rejected", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)

		require.NoError(t, o.StartCooking("Kwame", now))
		err = o.StartCooking("Abena", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Kwame", o.AcceptedBy())
	})

	t.Run("start_cooking_requires_staff", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)

		require.ErrorIs(t, o.StartCooking("", now), errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("mark_ready_requires_in_progress", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)

		require.ErrorIs(t, o.MarkReady(now), errs.ErrValueIsInvalid)
	})

	t.Run("clear_is_idempotent", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)
		require.NoError(t, o.StartCooking("Kwame", now))
		require.NoError(t, o.MarkReady(now))

		require.NoError(t, o.Clear(now))
		first := *o.ClearedAt()

		require.NoError(t, o.Clear(now.Add(time.Hour)))
		assert.Equal(t, first, *o.ClearedAt(), "second clear must not change the timestamp")
	})

	t.Run("clear_requires_ready", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)

		require.ErrorIs(t, o.Clear(now), errs.ErrValueIsInvalid)
		assert.Nil(t, o.ClearedAt())
	})
}

func TestOrder_TotalAmount(t *testing.T) {
	t.Run("uses_recorded_total_when_present", func(t *testing.T) {
		d := testDetails()
		d.TotalAmount = 47.5
		o, err := order.NewOrder("ORD-001", d)
		require.NoError(t, err)

		assert.InDelta(t, 47.5, o.TotalAmount(), 0.001)
	})

	t.Run("falls_back_to_amount_plus_delivery_fee", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001", testDetails())
		require.NoError(t, err)

		assert.InDelta(t, 45, o.TotalAmount(), 0.001)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("restores_full_state", func(t *testing.T) {
		o, err := order.RestoreOrder("ORD-001", testDetails(), order.Ready, "Kwame", &now, &now, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, "Kwame", o.AcceptedBy())
		assert.False(t, o.IsCleared())
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder("ORD-001", testDetails(), order.Unknown, "", nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
