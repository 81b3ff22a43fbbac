package fleet

import (
	"encoding/json"
	"errors"
	"fmt"
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
	r.Get("/api/fuels", handler.GetFuels)
	r.Post("/api/fuels", handler.CreateFuel)
	r.Get("/api/fuels/{id}", handler.GetFuel)
	r.Put("/api/fuels/{id}", handler.UpdateFuel)
	r.Delete("/api/fuels/{id}", handler.DeleteFuel)
	r.Get("/api/cars", handler.GetCars)
	r.Post("/api/cars", handler.CreateCar)
	r.Get("/api/cars/eaa", handler.GetEaaCars)
	r.Get("/api/cars/{id}", handler.GetCar)
	r.Put("/api/cars/{id}", handler.UpdateCar)
	r.Delete("/api/cars/{id}", handler.DeleteCar)
	r.Get("/api/maintenance", handler.GetMaintenanceList)
	r.Post("/api/maintenance", handler.CreateMaintenance)
	r.Get("/api/maintenance/types", handler.GetMaintenanceTypes)
	r.Get("/api/maintenance/eaa", handler.GetEaaBundle)
	r.Get("/api/maintenance/{id}", handler.GetMaintenance)
	r.Put("/api/maintenance/{id}", handler.UpdateMaintenance)
	r.Delete("/api/maintenance/{id}", handler.DeleteMaintenance)
	r.Get("/api/data", handler.GetFormData)
	return r, service
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func message(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

func TestFuels(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CreateFuel(gomock.Any(), "Diesel", gomock.Any()).Return(&domain.Fuel{ID: "f1", Name: "Diesel"}, nil)
	rr := do(handler, http.MethodPost, "/api/fuels", `{"name":"Diesel","price":"0.62"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = do(handler, http.MethodPost, "/api/fuels", `{"name":"Diesel","price":-1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "price must be at least 0: validation failed", message(t, rr))

	service.EXPECT().UpdateFuel(gomock.Any(), "f9", "Diesel", gomock.Any()).Return(nil, domain.ErrNotFound)
	rr = do(handler, http.MethodPut, "/api/fuels/f9", `{"name":"Diesel","price":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	service.EXPECT().ListFuels(gomock.Any()).Return(nil, nil)
	rr = do(handler, http.MethodGet, "/api/fuels", "")
	assert.JSONEq(t, `[]`, rr.Body.String())

	service.EXPECT().GetFuel(gomock.Any(), "f1").Return(&domain.Fuel{ID: "f1"}, nil)
	rr = do(handler, http.MethodGet, "/api/fuels/f1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteFuel(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Deleted",
			prepareMock: func() {
				service.EXPECT().DeleteFuel(gomock.Any(), "f1").Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Fuel in use",
			prepareMock: func() {
				service.EXPECT().DeleteFuel(gomock.Any(), "f1").Return(fmt.Errorf("fuel f1 is used by tanks, cars or orders: %w", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown fuel",
			prepareMock: func() {
				service.EXPECT().DeleteFuel(gomock.Any(), "f1").Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := do(handler, http.MethodDelete, "/api/fuels/f1", "")
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCars(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CreateCar(gomock.Any(), nil, "Canter", "EAA-7", "diesel", true).
		Return(&domain.Car{ID: "c1", Plate: "EAA-7", IsEaaCar: true}, nil)
	rr := do(handler, http.MethodPost, "/api/cars", `{"carModel":"Canter","plate":"EAA-7","fuelId":"diesel","isEaaCar":true}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var car dto.CarResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &car))
	assert.Nil(t, car.EmployeeID)

	service.EXPECT().ListEaaCars(gomock.Any()).Return([]domain.Car{{ID: "c1", IsEaaCar: true}}, nil)
	rr = do(handler, http.MethodGet, "/api/cars/eaa", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().DeleteCar(gomock.Any(), "c1").Return(domain.ErrConflict)
	rr = do(handler, http.MethodDelete, "/api/cars/c1", "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	service.EXPECT().GetCar(gomock.Any(), "c2").Return(nil, domain.ErrNotFound)
	rr = do(handler, http.MethodGet, "/api/cars/c2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	owner := "e1"
	service.EXPECT().ListCars(gomock.Any()).Return([]domain.Car{{ID: "c1", IsEaaCar: true}, {ID: "c3", EmployeeID: &owner}}, nil)
	rr = do(handler, http.MethodGet, "/api/cars", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var cars []dto.CarResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cars))
	require.Len(t, cars, 2)
	assert.Equal(t, "e1", *cars[1].EmployeeID)
}

func TestUpdateCar(t *testing.T) {
	handler, service := NewMock(t)
	owner := "e1"

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Assigned to employee",
			body: `{"employeeId":"e1","carModel":"Hilux","plate":"AB-123","fuelId":"diesel"}`,
			prepareMock: func() {
				service.EXPECT().UpdateCar(gomock.Any(), "c1", &owner, "Hilux", "AB-123", "diesel", false).
					Return(&domain.Car{ID: "c1", EmployeeID: &owner, Plate: "AB-123"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Returned to organisation",
			body: `{"carModel":"Hilux","plate":"AB-123","fuelId":"diesel","isEaaCar":true}`,
			prepareMock: func() {
				service.EXPECT().UpdateCar(gomock.Any(), "c1", nil, "Hilux", "AB-123", "diesel", true).
					Return(&domain.Car{ID: "c1", Plate: "AB-123", IsEaaCar: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Plate missing",
			body:          `{"fuelId":"diesel"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "plate is required: validation failed",
		},
		{
			name: "Unknown car",
			body: `{"plate":"AB-123","fuelId":"diesel"}`,
			prepareMock: func() {
				service.EXPECT().UpdateCar(gomock.Any(), "c1", nil, "", "AB-123", "diesel", false).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := do(handler, http.MethodPut, "/api/cars/c1", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, message(t, rr))
			}
		})
	}
}

func TestCreateMaintenance(t *testing.T) {
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
			body: `{"carId":"c1","description":"service","cost":120,"odoMeter":42000,"types":["engine-oil","oil-filter"]}`,
			prepareMock: func() {
				service.EXPECT().CreateMaintenance(gomock.Any(), "c1", "service", gomock.Any(), int64(42000), []string{"engine-oil", "oil-filter"}).
					Return(&domain.Maintenance{ID: "m1", CarID: "c1", Cost: decimal.NewFromInt(120), Types: []domain.MaintenanceType{{ID: "engine-oil"}, {ID: "oil-filter"}}}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Types missing",
			body:          `{"carId":"c1","cost":120}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "types is required: validation failed",
		},
		{
			name:          "Types empty",
			body:          `{"carId":"c1","cost":120,"types":[]}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "types must contain at least 1 items: validation failed",
		},
		{
			name: "Unknown car",
			body: `{"carId":"c9","types":["other"]}`,
			prepareMock: func() {
				service.EXPECT().CreateMaintenance(gomock.Any(), "c9", "", gomock.Any(), int64(0), []string{"other"}).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := do(handler, http.MethodPost, "/api/maintenance", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, message(t, rr))
			}
		})
	}
}

func TestUpdateMaintenance(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().UpdateMaintenance(gomock.Any(), "m1", "c1", "brakes", gomock.Any(), int64(43000), []string{"brake-pads"}).
		Return(&domain.Maintenance{ID: "m1", CarID: "c1", Description: "brakes", Types: []domain.MaintenanceType{{ID: "brake-pads", Name: "Brake pads"}}}, nil)
	rr := do(handler, http.MethodPut, "/api/maintenance/m1", `{"carId":"c1","description":"brakes","cost":200,"odoMeter":43000,"types":["brake-pads"]}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.MaintenanceResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "brakes", resp.Description)
	require.Len(t, resp.Types, 1)

	rr = do(handler, http.MethodPut, "/api/maintenance/m1", `{"carId":"c1","types":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	service.EXPECT().UpdateMaintenance(gomock.Any(), "m9", "c1", "", gomock.Any(), int64(0), []string{"other"}).
		Return(nil, domain.ErrNotFound)
	rr = do(handler, http.MethodPut, "/api/maintenance/m9", `{"carId":"c1","types":["other"]}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMaintenanceReads(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListMaintenanceTypes(gomock.Any()).Return([]domain.MaintenanceType{{ID: "other", Name: "Other"}}, nil)
	rr := do(handler, http.MethodGet, "/api/maintenance/types", "")
	assert.JSONEq(t, `[{"id":"other","name":"Other"}]`, rr.Body.String())

	service.EXPECT().EaaBundle(gomock.Any()).Return(&domain.EaaBundle{}, nil)
	rr = do(handler, http.MethodGet, "/api/maintenance/eaa", "")
	assert.JSONEq(t, `{"cars":[],"maintenanceTypes":[]}`, rr.Body.String())

	service.EXPECT().ListMaintenance(gomock.Any()).Return([]domain.Maintenance{{ID: "m1"}}, nil)
	rr = do(handler, http.MethodGet, "/api/maintenance", "")
	var list []dto.MaintenanceResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].Types)

	service.EXPECT().GetMaintenance(gomock.Any(), "m1").Return(&domain.Maintenance{ID: "m1"}, nil)
	rr = do(handler, http.MethodGet, "/api/maintenance/m1", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().DeleteMaintenance(gomock.Any(), "m1").Return(nil)
	rr = do(handler, http.MethodDelete, "/api/maintenance/m1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestFormData(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().FormData(gomock.Any()).Return(&domain.FormData{
		Employees: []domain.Employee{{ID: "e1", Cars: []domain.Car{{ID: "c1"}}}},
		Tanks:     []domain.Tank{{ID: "t1"}},
		Cars:      []domain.Car{{ID: "c1"}},
	}, nil)
	rr := do(handler, http.MethodGet, "/api/data", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.FormDataResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Employees, 1)
	assert.Len(t, resp.Employees[0].Cars, 1)
	assert.Len(t, resp.Tanks, 1)

	service.EXPECT().FormData(gomock.Any()).Return(nil, errors.New("db down"))
	rr = do(handler, http.MethodGet, "/api/data", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
