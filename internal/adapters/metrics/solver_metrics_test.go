package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

func TestSolverMetricsCollector_RecordSolve(t *testing.T) {
	// Arrange
	collector := NewSolverMetricsCollector()
	best := planning.NewFactorySolution("Iron Plate")
	best.TotalTime = 120
	best.HandcraftingTime = 45
	best.MachineCount = 7
	best.CostCount = 3
	result := &services.SolveResult{
		Solutions: []*planning.FactorySolution{planning.NewFactorySolution("Start"), best},
		Stats:     services.SolveStats{Iterations: 4, CandidatesEvaluated: 20, CandidatesRejected: 5},
	}

	// Act
	collector.RecordSolve("Space Elevator", "incremental", result, 250*time.Millisecond, nil)
	collector.RecordSolve("Space Elevator", "incremental", nil, 0, errors.New("boom"))

	// Assert
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.solvesTotal.WithLabelValues("incremental", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.solvesTotal.WithLabelValues("incremental", "error")))
	assert.Equal(t, 20.0, testutil.ToFloat64(collector.candidatesEvaluated.WithLabelValues("incremental")))
	assert.Equal(t, 5.0, testutil.ToFloat64(collector.candidatesRejected.WithLabelValues("incremental")))
	assert.Equal(t, 120.0, testutil.ToFloat64(collector.bestTotalTime.WithLabelValues("Space Elevator", "incremental")))
	assert.Equal(t, 45.0, testutil.ToFloat64(collector.bestHandcraftingTime.WithLabelValues("Space Elevator", "incremental")))
	assert.Equal(t, 7.0, testutil.ToFloat64(collector.bestMachines.WithLabelValues("Space Elevator", "incremental")))
	assert.Equal(t, 3.0, testutil.ToFloat64(collector.bestCostBuildings.WithLabelValues("Space Elevator", "incremental")))
}

func TestSolverMetricsCollector_RegisterWithoutRegistry(t *testing.T) {
	Registry = nil

	assert.NoError(t, NewSolverMetricsCollector().Register())
	assert.False(t, IsEnabled())
}

func TestPrometheusMiddleware_RecordsRequestName(t *testing.T) {
	// Arrange
	type PingQuery struct{}
	collector := NewRequestMetricsCollector()
	middleware := PrometheusMiddleware(collector)
	failing := func(ctx context.Context, request common.Request) (common.Response, error) {
		return nil, errors.New("failed")
	}
	succeeding := func(ctx context.Context, request common.Request) (common.Response, error) {
		return "pong", nil
	}

	// Act
	response, err := middleware(context.Background(), &PingQuery{}, succeeding)
	require.NoError(t, err)
	_, err = middleware(context.Background(), &PingQuery{}, failing)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, "pong", response)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("PingQuery", "query", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("PingQuery", "query", "failed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.requestsInFlight.WithLabelValues("query")))
}

func TestRequestKind(t *testing.T) {
	assert.Equal(t, "command", requestKind("SolveProjectCommand"))
	assert.Equal(t, "query", requestKind("ListSolveRunsQuery"))
	assert.Equal(t, "other", requestKind("string"))
}
