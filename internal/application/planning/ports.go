package planning

import (
	"time"

	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
)

// SolveMetricsRecorder receives the outcome of every solve
type SolveMetricsRecorder interface {
	RecordSolve(project, solver string, result *services.SolveResult, duration time.Duration, err error)
}

// noOpRecorder discards metrics when collection is disabled
type noOpRecorder struct{}

func (noOpRecorder) RecordSolve(string, string, *services.SolveResult, time.Duration, error) {}

// NoOpMetricsRecorder returns a recorder that does nothing
func NoOpMetricsRecorder() SolveMetricsRecorder {
	return noOpRecorder{}
}
