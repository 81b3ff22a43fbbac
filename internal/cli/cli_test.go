package cli

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelfleet/pkg/clients"
)

func run(t *testing.T, client clients.HTTPClientI, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(client)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--addr", "http://fleet:8080/", "--token", "tok"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil)
	for _, name := range []string{"reconcile", "reset-quotas", "pending"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	pending, _, err := cmd.Find([]string{"pending"})
	require.NoError(t, err)
	require.NotNil(t, pending.Flags().Lookup("count"))
}

func TestReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)

	client.EXPECT().Post("http://fleet:8080/api/jobs/reconcile", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, h http.Header, _ []byte) (int, []byte, error) {
			assert.Equal(t, "Bearer tok", h.Get("Authorization"))
			return http.StatusOK, []byte(`{"tanks":2,"corrected":1,"failed":0,"duration":"3ms",
				"results":[{"tankId":"t1","previous":"999","level":"230"},{"tankId":"t2","previous":"0","level":"0"}]}`), nil
		})

	out, err := run(t, client, "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "tanks: 2  corrected: 1  failed: 0")
	assert.Contains(t, out, "t1  999 -> 230")
	assert.NotContains(t, out, "t2")
}

func TestReconcile_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)

	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusConflict, []byte(`{"message":"reconcile is already running: conflict"}`), nil)

	_, err := run(t, client, "reconcile")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "reconcile is already running: conflict", apiErr.Message)
}

func TestResetQuotas(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)

	client.EXPECT().Post("http://fleet:8080/api/jobs/quota-reset", gomock.Any(), gomock.Any()).
		Return(http.StatusOK, []byte(`{"reset":7}`), nil).Times(2)

	out, err := run(t, client, "reset-quotas")
	require.NoError(t, err)
	assert.Equal(t, "quotas reset: 7\n", out)

	out, err = run(t, client, "reset-quotas", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"reset":7}`, out)
}

func TestPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)

	client.EXPECT().Get("http://fleet:8080/api/transactions/pending/count", gomock.Any()).
		Return(http.StatusOK, []byte(`{"count":3}`), nil)
	out, err := run(t, client, "pending", "--count")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	client.EXPECT().Get("http://fleet:8080/api/transactions/pending", gomock.Any()).
		Return(http.StatusOK, []byte(`[{"id":"tr1","tankId":"t1","employeeId":"e1","carId":"c1","amount":"40","status":"pending","createdAt":"2024-03-01T10:00:00Z",
				"tank":{"id":"t1","name":"North"},"employee":{"id":"e1","name":"Sara"},
				"car":{"id":"c1","plate":"AB-123","fuel":{"id":"diesel","name":"Diesel"}}}]`), nil)
	out, err = run(t, client, "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "tr1")
	assert.Contains(t, out, "North")
	assert.Contains(t, out, "Sara")
	assert.Contains(t, out, "AB-123")
	assert.Contains(t, out, "Diesel")
	assert.Contains(t, out, "2024-03-01 10:00")

	client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection refused"))
	_, err = run(t, client, "pending")
	assert.ErrorContains(t, err, "connection refused")
}

func TestGlobalFlagValidation(t *testing.T) {
	_, err := run(t, nil, "pending", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")

	cmd := NewRootCommand(nil)
	cmd.SetArgs([]string{"pending", "--token", ""})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.ErrorContains(t, cmd.Execute(), "no token")
}
