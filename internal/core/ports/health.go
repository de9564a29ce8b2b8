package ports

import "context"

// HealthChecker probes one external dependency of the ledger (PostgreSQL,
// Redis). The deep health endpoint aggregates these.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name identifies the dependency, e.g. "postgresql" or "redis".
	Name() string
}
