package services

import (
	"context"
	"time"
)

// HealthService reports liveness and build information.
type HealthService struct {
	version     string
	startedAt   time.Time
	datasetSize int
	datasetPath string
}

// NewHealthService creates a health service with build metadata.
func NewHealthService(version, datasetPath string, datasetSize int) *HealthService {
	return &HealthService{
		version:     version,
		startedAt:   time.Now(),
		datasetSize: datasetSize,
		datasetPath: datasetPath,
	}
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	UptimeSec   int64  `json:"uptime_seconds"`
	DatasetRows int    `json:"dataset_rows"`
	DatasetPath string `json:"dataset_path"`
}

// HealthCheck reports overall health. The dataset is loaded before the
// server starts, so a running process is a healthy one.
func (h *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:      "healthy",
		Version:     h.version,
		UptimeSec:   int64(time.Since(h.startedAt).Seconds()),
		DatasetRows: h.datasetSize,
		DatasetPath: h.datasetPath,
	}
}

// ReadinessCheck reports whether the service can answer queries.
func (h *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := h.HealthCheck(ctx)
	if h.datasetSize == 0 {
		status.Status = "not_ready"
	}
	return status
}

// Version returns the build version.
func (h *HealthService) Version() map[string]string {
	return map[string]string{"version": h.version}
}
