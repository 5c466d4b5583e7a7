package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/model"
	"greengrow-storefront/internal/repository"
)

func newOrderService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewMirrorTaskRepository(db),
		testLogger(),
	)
	return svc, db
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.CreateOrderRequest)
	}{
		{"no items", func(r *dto.CreateOrderRequest) { r.Items = nil }},
		{"no shipping info", func(r *dto.CreateOrderRequest) { r.ShippingInfo = nil }},
		{"no billing info", func(r *dto.CreateOrderRequest) { r.BillingInfo = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validOrderRequest()
			tc.mutate(req)

			_, err := svc.CreateOrder(ctx, "", req)
			assert.ErrorIs(t, err, ErrMissingOrderInfo)
		})
	}
}

func TestCreateOrderValidationLeavesNoRecords(t *testing.T) {
	svc, db := newOrderService(t)

	req := validOrderRequest()
	req.Items = nil
	_, err := svc.CreateOrder(context.Background(), "", req)
	require.ErrorIs(t, err, ErrMissingOrderInfo)

	var orderCount, taskCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&model.MirrorTask{}).Count(&taskCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, taskCount)
}

func TestCreateOrderGuest(t *testing.T) {
	svc, db := newOrderService(t)

	summary, err := svc.CreateOrder(context.Background(), "", validOrderRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, summary.ID)
	assert.Equal(t, 21.58, summary.Total)
	assert.Equal(t, OrderStatusPending, summary.Status)
	assert.False(t, summary.CreatedAt.IsZero())

	var order model.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", summary.ID).Error)
	assert.Nil(t, order.UserID)
	assert.True(t, order.IsGuestOrder)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, int32(2), order.Items[0].Quantity)
}

func TestCreateOrderEnqueuesMirrorTask(t *testing.T) {
	svc, db := newOrderService(t)

	summary, err := svc.CreateOrder(context.Background(), "", validOrderRequest())
	require.NoError(t, err)

	var task model.MirrorTask
	require.NoError(t, db.First(&task, "order_id = ?", summary.ID).Error)
	assert.Equal(t, repository.MirrorTaskStatusNew, task.Status)
	assert.Zero(t, task.Attempts)

	var rec client.MirrorOrderRecord
	require.NoError(t, json.Unmarshal(task.Payload, &rec))
	assert.Equal(t, summary.ID, rec.OrderID)
	assert.Equal(t, "gardener@example.com", rec.CustomerEmail)
	assert.Equal(t, "Pat Jensen", rec.CustomerName)
	assert.Equal(t, "pending", rec.Status)
	assert.Equal(t, 21.58, rec.TotalAmount)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, "p1", rec.Items[0].ProductID)
}

func TestCreateOrderCompletedPayment(t *testing.T) {
	svc, _ := newOrderService(t)

	req := validOrderRequest()
	req.PaymentInfo = &dto.PaymentInfo{
		PaymentID: "pay_123",
		Provider:  "square",
		Status:    "COMPLETED",
	}

	summary, err := svc.CreateOrder(context.Background(), "", req)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusConfirmed, summary.Status)
}

func TestCreateOrderUserResolution(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	t.Run("session user wins over body user", func(t *testing.T) {
		req := validOrderRequest()
		req.UserID = "body-user"

		summary, err := svc.CreateOrder(ctx, "session-user", req)
		require.NoError(t, err)

		var order model.Order
		require.NoError(t, db.First(&order, "id = ?", summary.ID).Error)
		require.NotNil(t, order.UserID)
		assert.Equal(t, "session-user", *order.UserID)
		assert.False(t, order.IsGuestOrder)
	})

	t.Run("body user without session", func(t *testing.T) {
		req := validOrderRequest()
		req.UserID = "body-user"

		summary, err := svc.CreateOrder(ctx, "", req)
		require.NoError(t, err)

		var order model.Order
		require.NoError(t, db.First(&order, "id = ?", summary.ID).Error)
		require.NotNil(t, order.UserID)
		assert.Equal(t, "body-user", *order.UserID)
	})
}

func TestGetOrderAuthorization(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	guest, err := svc.CreateOrder(ctx, "", validOrderRequest())
	require.NoError(t, err)

	owned, err := svc.CreateOrder(ctx, "alice", validOrderRequest())
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetOrder(ctx, "alice", "nope")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("owner reads own order", func(t *testing.T) {
		order, err := svc.GetOrder(ctx, "alice", owned.ID)
		require.NoError(t, err)
		assert.Equal(t, owned.ID, order.ID)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		_, err := svc.GetOrder(ctx, "mallory", owned.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("anonymous cannot read owned order", func(t *testing.T) {
		_, err := svc.GetOrder(ctx, "", owned.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("guest order readable by anyone", func(t *testing.T) {
		order, err := svc.GetOrder(ctx, "", guest.ID)
		require.NoError(t, err)
		assert.Equal(t, guest.ID, order.ID)

		order, err = svc.GetOrder(ctx, "mallory", guest.ID)
		require.NoError(t, err)
		assert.Equal(t, guest.ID, order.ID)
	})
}

func TestListOrders(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	_, err := svc.ListOrders(ctx, "")
	assert.ErrorIs(t, err, ErrAuthRequired)

	first, err := svc.CreateOrder(ctx, "alice", validOrderRequest())
	require.NoError(t, err)
	// force distinct created_at ordering
	require.NoError(t, db.Model(&model.Order{}).
		Where("id = ?", first.ID).
		Update("created_at", first.CreatedAt.Add(-time.Hour)).Error)

	second, err := svc.CreateOrder(ctx, "alice", validOrderRequest())
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, "bob", validOrderRequest())
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID) // newest first
	assert.Equal(t, first.ID, orders[1].ID)
}
