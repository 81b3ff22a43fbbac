package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/jobs"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

func NewMock(t *testing.T) (*JobHandler, *MockRunner) {
	ctrl := gomock.NewController(t)
	runner := NewMockRunner(ctrl)
	return New(runner), runner
}

func TestReconcile(t *testing.T) {
	handler, runner := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Report returned",
			prepareMock: func() {
				runner.EXPECT().Reconcile(gomock.Any()).Return(&jobs.ReconcileReport{
					StartedAt: time.Now(),
					Tanks:     2,
					Corrected: 1,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already running",
			prepareMock: func() {
				runner.EXPECT().Reconcile(gomock.Any()).Return(nil, fmt.Errorf("job reconcile is already running: %w", domain.ErrConflict))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "job reconcile is already running: conflict",
		},
		{
			name: "Store down",
			prepareMock: func() {
				runner.EXPECT().Reconcile(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/jobs/reconcile", nil)
			rr := httptest.NewRecorder()

			handler.Reconcile(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var report jobs.ReconcileReport
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&report))
			assert.Equal(t, 1, report.Corrected)
		})
	}
}

func TestResetQuotas(t *testing.T) {
	handler, runner := NewMock(t)

	runner.EXPECT().ResetQuotas(gomock.Any()).Return(int64(4), nil)
	rr := httptest.NewRecorder()
	handler.ResetQuotas(rr, httptest.NewRequest(http.MethodPost, "/api/jobs/quota-reset", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"reset":4}`, rr.Body.String())

	runner.EXPECT().ResetQuotas(gomock.Any()).Return(int64(0), domain.ErrConflict)
	rr = httptest.NewRecorder()
	handler.ResetQuotas(rr, httptest.NewRequest(http.MethodPost, "/api/jobs/quota-reset", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)
}
