package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/dto"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

func NewMock(t *testing.T) (http.Handler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder)
	r.Get("/api/orders", handler.GetOrders)
	r.Get("/api/orders/{id}", handler.GetOrder)
	r.Put("/api/orders/{id}", handler.UpdateOrder)
	r.Delete("/api/orders/{id}", handler.DeleteOrder)
	return r, service
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateOrder(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"tankId":"t1","amount":"300","number":"PO-1"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, in domain.NewOrder) (*domain.Order, error) {
						assert.Equal(t, "t1", in.TankID)
						assert.True(t, in.Amount.Equal(decimal.NewFromInt(300)))
						return &domain.Order{ID: "o1", TankID: "t1", FuelID: "diesel", Amount: in.Amount, Number: in.Number}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Malformed body",
			body:          `{"tankId":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Zero amount",
			body:          `{"tankId":"t1","amount":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be greater than 0: validation failed",
		},
		{
			name:          "Amount finer than millilitres",
			body:          `{"tankId":"t1","amount":"1.0005"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must have at most 3 decimal places and be below 100000000000: validation failed",
		},
		{
			name:          "Amount beyond column range",
			body:          `{"tankId":"t1","amount":1e15}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must have at most 3 decimal places and be below 100000000000: validation failed",
		},
		{
			name: "Unknown tank",
			body: `{"tankId":"t9","amount":5}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "not found",
		},
		{
			name: "Capacity exceeded",
			body: `{"tankId":"t1","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCapacityExceeded)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "tank capacity exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := do(handler, http.MethodPost, "/api/orders", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.OrderResponseDTO
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "o1", resp.ID)
			assert.Equal(t, "diesel", resp.FuelID)
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, patch domain.OrderPatch) (*domain.Order, error) {
			require.NotNil(t, patch.Amount)
			assert.Nil(t, patch.TankID)
			assert.True(t, patch.Override)
			return &domain.Order{ID: "o1", Amount: *patch.Amount}, nil
		})
	rr := do(handler, http.MethodPut, "/api/orders/o1", `{"amount":120,"override":true}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().Update(gomock.Any(), "o9", gomock.Any()).Return(nil, domain.ErrNotFound)
	rr = do(handler, http.MethodPut, "/api/orders/o9", `{"amount":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(handler, http.MethodPut, "/api/orders/o1", `{"amount":-1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestDeleteOrder(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), "o1", false).Return(nil)
	rr := do(handler, http.MethodDelete, "/api/orders/o1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	service.EXPECT().Delete(gomock.Any(), "o2", true).Return(domain.ErrInsufficientFuel)
	rr = do(handler, http.MethodDelete, "/api/orders/o2?override=true", "")
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestGetOrders(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.Order{{ID: "o2"}, {ID: "o1"}}, nil)
	rr := do(handler, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.OrderResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "o2", resp[0].ID)

	service.EXPECT().List(gomock.Any()).Return(nil, nil)
	rr = do(handler, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	rr = do(handler, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	service.EXPECT().Get(gomock.Any(), "o1").Return(&domain.Order{ID: "o1"}, nil)
	rr = do(handler, http.MethodGet, "/api/orders/o1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
