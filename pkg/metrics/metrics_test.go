package metrics

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", want: ResultOK},
		{name: "quota", err: fmt.Errorf("employee e1: %w", domain.ErrQuotaExceeded), want: ResultRejected},
		{name: "not found", err: domain.ErrNotFound, want: ResultRejected},
		{name: "conflict", err: domain.ErrConflict, want: ResultError},
		{name: "database", err: errors.New("connection reset"), want: ResultError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.err))
		})
	}
}

func TestHandler(t *testing.T) {
	require.NoError(t, Create("fleet_test"))

	ObserveWorkflow("order", "create", time.Now(), nil)
	JobRun("reconcile", nil)
	JobItem("reconcile", errors.New("tank gone"))
	SetTankDrift("t1", 70)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `fleet_test_workflow_operations_total{op="create",result="ok",workflow="order"} 1`)
	assert.Contains(t, string(body), `fleet_test_job_items_total{job="reconcile",result="error"} 1`)
	assert.Contains(t, string(body), `fleet_test_tank_drift_litres{tank="t1"} 70`)
}
