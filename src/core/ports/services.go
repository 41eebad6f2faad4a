package ports

import (
	"context"
)

// HealthChecker is implemented by infrastructure components whose
// reachability is reported by the health endpoint.
type HealthChecker interface {
	// Health checks if the component is reachable.
	Health(ctx context.Context) error
}
