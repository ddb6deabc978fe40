package database

import (
	"context"
	"database/sql"
	"time"
)

const probeTimeout = 2 * time.Second

// PoolHealth is the health endpoint's view of the connection pool.
type PoolHealth struct {
	Healthy   bool  `json:"healthy"`
	LatencyMS int64 `json:"latency_ms"`
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	WaitCount int64 `json:"wait_count"`
	MaxOpen   int   `json:"max_open"`
}

// Health pings the database with a bounded timeout and reports pool
// statistics. The stats are populated even when the ping fails, so a caller
// can tell pool exhaustion apart from an unreachable server.
func Health(ctx context.Context, db *sql.DB) (*PoolHealth, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	err := db.PingContext(ctx)
	stats := db.Stats()

	return &PoolHealth{
		Healthy:   err == nil,
		LatencyMS: time.Since(start).Milliseconds(),
		Open:      stats.OpenConnections,
		InUse:     stats.InUse,
		Idle:      stats.Idle,
		WaitCount: stats.WaitCount,
		MaxOpen:   stats.MaxOpenConnections,
	}, err
}
