package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports database connectivity plus connection pool
// statistics for the /health endpoint.
type HealthStatus struct {
	Status          string        `json:"status"`
	ResponseTime    time.Duration `json:"response_time_ms"`
	OpenConnections int           `json:"open_connections"`
	InUse           int           `json:"in_use"`
	Idle            int           `json:"idle"`
	WaitCount       int64         `json:"wait_count"`
	WaitDuration    time.Duration `json:"wait_duration_ms"`
	MaxOpenConns    int           `json:"max_open_conns"`
}

// Health pings the database and returns pool statistics. Status is
// "degraded" when the pool is saturated (every allowed connection open and
// in use) — the job pool and dispatcher both hold connections across
// SKIP LOCKED claims, so saturation here shows up as queue latency long
// before queries start failing.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start),
		}, err
	}

	stats := db.Stats()

	status := "healthy"
	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		status = "degraded"
	}

	return &HealthStatus{
		Status:          status,
		ResponseTime:    time.Since(start),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration,
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
