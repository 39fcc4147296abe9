package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundpulse/internal/services"
	"fundpulse/internal/shared/testutil"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	h := NewHealthHandler(services.NewHealthService("1.0.0", "data/funding.csv", 100), logger)

	rr := doRequest(t, http.HandlerFunc(h.HealthCheck), http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, float64(100), body["dataset_rows"])
}

func TestHealthHandler_Readiness_EmptyDataset(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	h := NewHealthHandler(services.NewHealthService("1.0.0", "data/funding.csv", 0), logger)

	rr := doRequest(t, http.HandlerFunc(h.ReadinessCheck), http.MethodGet, "/api/health/ready")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "not_ready", body["status"])
}

func TestHealthHandler_Version(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	h := NewHealthHandler(services.NewHealthService("1.0.0", "data/funding.csv", 100), logger)

	rr := doRequest(t, http.HandlerFunc(h.Version), http.MethodGet, "/api/version")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]interface{}{"version": "1.0.0"}, decodeBody(t, rr))
}
