package tanks

import (
	"encoding/json"
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
	r.Get("/api/tanks", handler.GetTanks)
	r.Post("/api/tanks", handler.CreateTank)
	r.Get("/api/tanks/{id}", handler.GetTank)
	r.Put("/api/tanks/{id}", handler.UpdateTank)
	r.Get("/api/tanks/{id}/ledger", handler.GetLedger)
	return r, service
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateTank(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Level defaults to empty",
			body: `{"name":"North yard","fuelId":"diesel","capacity":1000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "North yard", "diesel", decimal.NewFromInt(1000), decimal.Zero).
					Return(&domain.Tank{ID: "t1", Name: "North yard", Capacity: decimal.NewFromInt(1000)}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Zero capacity",
			body:          `{"name":"North yard","fuelId":"diesel","capacity":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "capacity must be greater than 0: validation failed",
		},
		{
			name: "Level above capacity",
			body: `{"name":"North yard","fuelId":"diesel","capacity":100,"currentLevel":150}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "North yard", "diesel", decimal.NewFromInt(100), decimal.NewFromInt(150)).
					Return(nil, domain.ErrValidation)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := do(handler, http.MethodPost, "/api/tanks", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestUpdateTank(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), "t1", "North yard", "diesel", decimal.NewFromInt(1000), nil).
		Return(&domain.Tank{ID: "t1"}, nil)
	rr := do(handler, http.MethodPut, "/api/tanks/t1", `{"name":"North yard","fuelId":"diesel","capacity":1000}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().Update(gomock.Any(), "t9", "North yard", "diesel", decimal.NewFromInt(1000), gomock.Not(gomock.Nil())).
		Return(nil, domain.ErrNotFound)
	rr = do(handler, http.MethodPut, "/api/tanks/t9", `{"name":"North yard","fuelId":"diesel","capacity":1000,"currentLevel":10}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetLedger(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Ledger(gomock.Any(), "t1").Return(&domain.TankLedger{
		TankID:       "t1",
		Stored:       decimal.NewFromInt(999),
		OrdersTotal:  decimal.NewFromInt(300),
		DispensedSum: decimal.NewFromInt(70),
	}, nil)
	rr := do(handler, http.MethodGet, "/api/tanks/t1/ledger", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp dto.TankLedgerResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Derived.Equal(decimal.NewFromInt(230)))
	assert.True(t, resp.Drift.Equal(decimal.NewFromInt(769)))

	service.EXPECT().List(gomock.Any()).Return([]domain.Tank{{ID: "t1"}}, nil)
	rr = do(handler, http.MethodGet, "/api/tanks", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().Get(gomock.Any(), "t2").Return(nil, domain.ErrNotFound)
	rr = do(handler, http.MethodGet, "/api/tanks/t2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
