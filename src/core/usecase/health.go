package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"oblog/src/core/ports"
)

// HealthService reports the health of the service and its dependencies.
type HealthService struct {
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
	log      *slog.Logger
}

// NewHealthService creates a new HealthService. checkers maps a component
// name ("database") to the dependency pinged for it.
func NewHealthService(checkers map[string]ports.HealthChecker, log *slog.Logger) *HealthService {
	return &HealthService{
		checkers: checkers,
		timeout:  2 * time.Second,
		log:      log,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy reports whether every component answered.
func (h *HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

// Check pings every registered component.
// One failing component turns the overall status to "degraded".
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.checkers[name].Health(checkCtx)
		cancel()

		if err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{Status: "unhealthy", Message: err.Error()}
			s.log.Warn("health check failed", "component", name, "error", err)
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}
