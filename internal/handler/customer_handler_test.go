package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler(t *testing.T) {
	logger := zerolog.Nop()
	customerID := uuid.New()

	t.Run("Create returns 201", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *model.CustomerRequest) bool {
			return req.Name == "Ada" && req.Email == "ada@example.com"
		})).Return(&model.Customer{ID: customerID, Name: "Ada", Email: "ada@example.com", IsActive: true}, nil)

		body, _ := json.Marshal(map[string]string{"name": "Ada", "email": "ada@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
		w := httptest.NewRecorder()

		NewCustomerHandler(mockService, logger).Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.Customer
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, customerID, got.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate email is a field error", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("Create", mock.Anything, mock.Anything).Return(nil,
			model.NewValidationError(model.ErrCodeDuplicateValue, "duplicate value",
				model.FieldError{Field: "email", Reason: "must be unique"}))

		req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))
		w := httptest.NewRecorder()

		NewCustomerHandler(mockService, logger).Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, model.ErrCodeDuplicateValue, body.Error)
		assert.Equal(t, []model.FieldError{{Field: "email", Reason: "must be unique"}}, body.Fields)
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("List", mock.Anything).Return(nil, nil)

		w := httptest.NewRecorder()
		NewCustomerHandler(mockService, logger).List(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Update missing customer", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("Update", mock.Anything, customerID, mock.Anything).Return(nil, model.EntityNotFound("customer", customerID))

		req := httptest.NewRequest(http.MethodPut, "/api/customers/"+customerID.String(), strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))
		req.SetPathValue("id", customerID.String())
		w := httptest.NewRecorder()

		NewCustomerHandler(mockService, logger).Update(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
