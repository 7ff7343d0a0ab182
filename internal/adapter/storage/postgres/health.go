package postgres

import (
	"context"
	"errors"
	"time"
)

const healthTimeout = 2 * time.Second

// requiredTables must exist before the engine can settle anything.
var requiredTables = []string{"orders", "order_payments", "webhook_events", "settings"}

// HealthCheck implements ports.HealthChecker for PostgreSQL.
// It also reports an unmigrated schema as unhealthy.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the settlement tables are present.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var missing int
	err := h.pool.QueryRow(ctx,
		`SELECT count(*) FROM unnest($1::text[]) AS t(name) WHERE to_regclass('public.' || t.name) IS NULL`,
		requiredTables,
	).Scan(&missing)
	if err != nil {
		return err
	}
	if missing > 0 {
		return errors.New("schema not migrated")
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
