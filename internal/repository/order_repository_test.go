package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_BeginTx(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	tx, err := f.orders.BeginTx(ctx)

	require.NoError(t, err)
	require.NotNil(t, tx)

	// Rollback to cleanup
	err = tx.Rollback(ctx)
	assert.NoError(t, err)
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	c := f.customer("buyer", now())
	a := f.product("A", "2.50")
	b := f.product("B", "1.00")

	o := f.order(c, "6.00", now(), line(a, 2), line(b, 1))

	got, err := f.orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.CustomerID)
	assert.Equal(t, model.DefaultOrderStatus, got.Status)
	assert.True(t, decimal.RequireFromString("6").Equal(got.TotalAmount))
	require.Len(t, got.Items, 2)
	assert.Equal(t, a.ID, got.Items[0].ProductID)
	assert.True(t, decimal.RequireFromString("5").Equal(got.Items[0].TotalPrice))

	missing, err := f.orders.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := f.orders.Exists(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.orders.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOrderRepository_CreateOrderItems_RollsBack(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	c := f.customer("buyer", now())
	ts := now()
	o := &model.Order{ID: uuid.New(), CustomerID: c.ID, TotalAmount: decimal.Zero, Status: "Pending", CreatedAt: ts, UpdatedAt: ts}

	tx, err := f.orders.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, f.orders.CreateOrder(ctx, tx, o))

	err = f.orders.CreateOrderItems(ctx, tx, []model.OrderItem{
		{ID: uuid.New(), OrderID: o.ID, ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.Zero, CreatedAt: ts},
	})
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindIntegrity))
	require.NoError(t, tx.Rollback(ctx))

	assert.Zero(t, countRows(t, f.db, "orders"))
}

func TestOrderRepository_ListFilter(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	alice := f.customer("alice", now())
	bob := f.customer("bob", now())
	base := now()
	f.order(alice, "1.00", base.Add(-2*time.Minute))
	f.order(alice, "2.00", base.Add(-time.Minute))
	f.order(bob, "3.00", base)

	tests := []struct {
		name     string
		customer *uuid.UUID
		want     int
	}{
		{name: "All orders", customer: nil, want: 3},
		{name: "Alice only", customer: &alice.ID, want: 2},
		{name: "Unknown customer", customer: func() *uuid.UUID { id := uuid.New(); return &id }(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := f.orders.List(ctx, tt.customer)
			require.NoError(t, err)
			assert.Len(t, orders, tt.want)
			for _, o := range orders {
				assert.NotNil(t, o.Items)
			}
		})
	}
}

func TestOrderRepository_UpdateStatusAndDelete(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	c := f.customer("buyer", now())
	o := f.order(c, "1.00", now())

	updated, err := f.orders.UpdateStatus(ctx, o.ID, "Shipped", now())
	require.NoError(t, err)
	assert.Equal(t, "Shipped", updated.Status)

	_, err = f.orders.UpdateStatus(ctx, uuid.New(), "Shipped", now())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.orders.Delete(ctx, o.ID))
	assert.ErrorIs(t, f.orders.Delete(ctx, o.ID), ErrNotFound)
}

func TestOrderItemRepository(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	repo := NewOrderItemRepository(f.db.Pool, zerolog.Nop())

	c := f.customer("buyer", now())
	p := f.product("A", "2.00")
	first := f.order(c, "2.00", now(), line(p, 1))
	second := f.order(c, "0", now())

	item := &model.OrderItem{ID: uuid.New(), OrderID: second.ID, ProductID: p.ID, Quantity: 3,
		UnitPrice: decimal.RequireFromString("1.75"), CreatedAt: now()}
	require.NoError(t, repo.Create(ctx, item))
	assert.True(t, decimal.RequireFromString("5.25").Equal(item.TotalPrice))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := repo.List(ctx, &first.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].OrderID)

	updated, err := repo.UpdateQuantity(ctx, item.ID, 4)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7").Equal(updated.TotalPrice))

	_, err = repo.UpdateQuantity(ctx, item.ID, 0)
	assert.True(t, model.IsKind(err, model.KindValidation))

	require.NoError(t, repo.Delete(ctx, item.ID))
	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
