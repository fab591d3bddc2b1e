package service

import (
	"errors"
	"testing"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        any
		wantFields map[string]string
	}{
		{
			name: "Valid customer",
			req:  &model.CustomerRequest{Name: "Ada", Email: "ada@example.com"},
		},
		{
			name: "Missing name and bad email",
			req:  &model.CustomerRequest{Email: "not-an-email"},
			wantFields: map[string]string{
				"name":  "is required",
				"email": "must be a valid email address",
			},
		},
		{
			name: "Slug with uppercase",
			req:  &model.CategoryRequest{Name: "Books", Slug: "Books"},
			wantFields: map[string]string{
				"slug": "must contain only lowercase letters, digits and single hyphens",
			},
		},
		{
			name: "Unknown shipment status",
			req:  &model.ShipmentUpdateRequest{Status: "Lost"},
			wantFields: map[string]string{
				"status": "must be one of Pending, Shipped, In Transit, Delivered, Returned",
			},
		},
		{
			name: "Cart line quantity above cap",
			req:  &model.CartItemRequest{ProductID: "p", Quantity: 3_000_000_000},
			wantFields: map[string]string{
				"quantity": "must be at most 10000",
			},
		},
		{
			name: "Order line quantity above cap",
			req:  &model.OrderItemUpdateRequest{Quantity: 10001},
			wantFields: map[string]string{
				"quantity": "must be at most 10000",
			},
		},
		{
			name: "Stock beyond integer column",
			req:  &model.ProductRequest{Name: "Lamp", Price: dec("1.00"), SKU: "L-1", Stock: intPtr(3_000_000_000)},
			wantFields: map[string]string{
				"stock": "must be at most 2147483647",
			},
		},
		{
			name: "Zero quantity",
			req:  &model.CartItemUpdateRequest{Quantity: 0},
			wantFields: map[string]string{
				"quantity": "is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			de, ok := model.AsDomainError(err)
			require.True(t, ok)
			assert.Equal(t, model.KindValidation, de.Kind)
			assert.Equal(t, model.ErrCodeValidationFailed, de.Code)

			got := make(map[string]string, len(de.Fields))
			for _, f := range de.Fields {
				got[f.Field] = f.Reason
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestCheckMoney(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"0", true},
		{"19.99", true},
		{"99999999.99", true},
		{"100000000", false},
		{"-0.01", false},
		{"1.005", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := checkMoney("price", decimal.RequireFromString(tt.amount))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			de, ok := model.AsDomainError(err)
			require.True(t, ok)
			assert.Equal(t, "price", de.Fields[0].Field)
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "home-garden", slugify("Home & Garden"))
	assert.Equal(t, "tv-s", slugify("  TV's  "))
	assert.Equal(t, "", slugify("!!!"))
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	got, err := parseID("customer_id", " "+id.String()+" ")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = parseID("customer_id", "123")
	de, ok := model.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, model.ErrCodeInvalidIdentifier, de.Code)
	assert.Equal(t, "customer_id", de.Fields[0].Field)
}

func TestNotFound(t *testing.T) {
	id := uuid.New()
	other := errors.New("connection reset")

	assert.True(t, model.IsKind(notFound(repository.ErrNotFound, "cart", id), model.KindNotFound))
	assert.Equal(t, other, notFound(other, "cart", id))
}
