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

func TestCategoryRepository_CRUD(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	repo := NewCategoryRepository(f.db.Pool, zerolog.Nop())

	ts := now()
	cat := &model.Category{ID: uuid.New(), Name: "Garden", Slug: "garden", CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, repo.Create(ctx, cat))

	dup := &model.Category{ID: uuid.New(), Name: "Other", Slug: "garden", CreatedAt: ts, UpdatedAt: ts}
	de, ok := model.AsDomainError(repo.Create(ctx, dup))
	require.True(t, ok)
	assert.Equal(t, "slug", de.Fields[0].Field)

	cat.Name = "Garden & Patio"
	cat.Slug = "garden-patio"
	require.NoError(t, repo.Update(ctx, cat))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "garden-patio", list[0].Slug)

	require.NoError(t, repo.Delete(ctx, cat.ID))
	got, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWishlistRepository(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	repo := NewWishlistRepository(f.db.Pool, zerolog.Nop())

	c := f.customer("saver", now())
	a := f.product("A", "1.00")
	b := f.product("B", "1.00")
	ts := now()

	w := &model.Wishlist{ID: uuid.New(), CustomerID: c.ID, ProductIDs: []uuid.UUID{a.ID}, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, repo.Create(ctx, w))

	require.NoError(t, repo.AddProduct(ctx, w.ID, b.ID))
	require.NoError(t, repo.AddProduct(ctx, w.ID, b.ID))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, got.ProductIDs)

	require.NoError(t, repo.RemoveProduct(ctx, w.ID, a.ID))
	assert.ErrorIs(t, repo.RemoveProduct(ctx, w.ID, a.ID), ErrNotFound)

	w.ProductIDs = []uuid.UUID{a.ID}
	w.UpdatedAt = now()
	require.NoError(t, repo.Update(ctx, w))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []uuid.UUID{a.ID}, list[0].ProductIDs)

	err = repo.AddProduct(ctx, w.ID, uuid.New())
	assert.True(t, model.IsKind(err, model.KindIntegrity), "got %v", err)

	require.NoError(t, repo.Delete(ctx, w.ID))
	assert.Zero(t, countRows(t, f.db, "wishlist_products"))
}

func TestPaymentRepository(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	repo := NewPaymentRepository(f.db.Pool, zerolog.Nop())

	c := f.customer("payer", now())
	o := f.order(c, "12.00", now())
	txID := "TX-1"
	ts := now()

	p := &model.Payment{ID: uuid.New(), OrderID: o.ID, Amount: decimal.RequireFromString("12.00"),
		PaymentMethod: "card", Status: model.DefaultPaymentStatus, TransactionID: &txID, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, repo.Create(ctx, p))

	// Payments without a transaction id do not collide with each other.
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, &model.Payment{ID: uuid.New(), OrderID: o.ID, Amount: decimal.Zero,
			PaymentMethod: "cash", Status: "Pending", CreatedAt: ts, UpdatedAt: ts}))
	}

	dup := &model.Payment{ID: uuid.New(), OrderID: o.ID, Amount: decimal.Zero, PaymentMethod: "card",
		Status: "Completed", TransactionID: &txID, CreatedAt: ts, UpdatedAt: ts}
	de, ok := model.AsDomainError(repo.Create(ctx, dup))
	require.True(t, ok)
	assert.Equal(t, "transaction_id", de.Fields[0].Field)

	p.Status = "Refunded"
	p.UpdatedAt = ts.Add(time.Second)
	require.NoError(t, repo.Update(ctx, p))
	assert.Equal(t, "Refunded", p.Status)
	assert.Equal(t, "card", p.PaymentMethod)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	require.NoError(t, repo.Delete(ctx, p.ID))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestShipmentRepository(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	repo := NewShipmentRepository(f.db.Pool, zerolog.Nop())

	c := f.customer("receiver", now())
	o := f.order(c, "12.00", now())
	ts := now()

	s := &model.Shipment{ID: uuid.New(), OrderID: o.ID, TrackingNumber: "TRK", Carrier: "DHL",
		Status: model.ShipmentStatusPending, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, repo.Create(ctx, s))

	bad := *s
	bad.ID = uuid.New()
	bad.Status = "Lost"
	assert.True(t, model.IsKind(repo.Create(ctx, &bad), model.KindValidation))

	delivered := ts.Add(48 * time.Hour)
	s.Status = model.ShipmentStatusDelivered
	s.DeliveryDate = &delivered
	s.UpdatedAt = ts.Add(time.Second)
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ShipmentStatusDelivered, got.Status)
	require.NotNil(t, got.DeliveryDate)
	assert.True(t, got.DeliveryDate.Equal(delivered))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.orders.Delete(ctx, o.ID))
	assert.Zero(t, countRows(t, f.db, "shipments"))
}
