package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"oblog/src/core/ports"
)

func TestHealthService_Check(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		svc := NewHealthService(map[string]ports.HealthChecker{"database": stubChecker{}}, discardLogger())

		status := svc.Check(context.Background())
		assert.True(t, status.Healthy())
		assert.Equal(t, "healthy", status.Components["database"].Status)
	})

	t.Run("database down", func(t *testing.T) {
		svc := NewHealthService(map[string]ports.HealthChecker{"database": stubChecker{err: errDB}}, discardLogger())

		status := svc.Check(context.Background())
		assert.Equal(t, "degraded", status.Status)
		assert.Equal(t, ComponentHealth{Status: "unhealthy", Message: "connection refused"}, status.Components["database"])
	})

	t.Run("no components", func(t *testing.T) {
		status := NewHealthService(nil, discardLogger()).Check(context.Background())
		assert.True(t, status.Healthy())
		assert.Empty(t, status.Components)
	})
}
