package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
)

// SolverMetricsCollector records the outcome of solver runs
type SolverMetricsCollector struct {
	solvesTotal         *prometheus.CounterVec
	solveDuration       *prometheus.HistogramVec
	iterations          *prometheus.HistogramVec
	candidatesEvaluated *prometheus.CounterVec
	candidatesRejected  *prometheus.CounterVec

	bestTotalTime        *prometheus.GaugeVec
	bestHandcraftingTime *prometheus.GaugeVec
	bestMachines         *prometheus.GaugeVec
	bestCostBuildings    *prometheus.GaugeVec
}

// NewSolverMetricsCollector creates a new solver metrics collector
func NewSolverMetricsCollector() *SolverMetricsCollector {
	return &SolverMetricsCollector{
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solves_total",
				Help:      "Total number of solves by solver and status",
			},
			[]string{"solver", "status"},
		),
		solveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_duration_seconds",
				Help:      "Wall-clock duration of a solve",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"solver"},
		),
		iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "iterations",
				Help:      "Search iterations per solve",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"solver"},
		),
		candidatesEvaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "candidates_evaluated_total",
				Help:      "Total number of candidate solutions evaluated",
			},
			[]string{"solver"},
		),
		candidatesRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "candidates_rejected_total",
				Help:      "Total number of candidate solutions rejected",
			},
			[]string{"solver"},
		),
		bestTotalTime: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "best_total_time_seconds",
				Help:      "Total time of the best solution of the last solve",
			},
			[]string{"project", "solver"},
		),
		bestHandcraftingTime: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "best_handcrafting_time_seconds",
				Help:      "Manual time of the best solution of the last solve",
			},
			[]string{"project", "solver"},
		),
		bestMachines: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "best_machines",
				Help:      "Buildings used by the best solution of the last solve",
			},
			[]string{"project", "solver"},
		),
		bestCostBuildings: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "best_cost_buildings",
				Help:      "Cost buildings used by the best solution of the last solve",
			},
			[]string{"project", "solver"},
		),
	}
}

// Register registers all solver metrics with the Prometheus registry
func (c *SolverMetricsCollector) Register() error {
	return register(
		c.solvesTotal,
		c.solveDuration,
		c.iterations,
		c.candidatesEvaluated,
		c.candidatesRejected,
		c.bestTotalTime,
		c.bestHandcraftingTime,
		c.bestMachines,
		c.bestCostBuildings,
	)
}

// RecordSolve records the outcome of one solve
func (c *SolverMetricsCollector) RecordSolve(project, solver string, result *services.SolveResult, duration time.Duration, err error) {
	if err != nil || result == nil {
		c.solvesTotal.WithLabelValues(solver, "error").Inc()
		return
	}

	c.solvesTotal.WithLabelValues(solver, "success").Inc()
	c.solveDuration.WithLabelValues(solver).Observe(duration.Seconds())
	c.iterations.WithLabelValues(solver).Observe(float64(result.Stats.Iterations))
	c.candidatesEvaluated.WithLabelValues(solver).Add(float64(result.Stats.CandidatesEvaluated))
	c.candidatesRejected.WithLabelValues(solver).Add(float64(result.Stats.CandidatesRejected))

	best := result.Best()
	if best == nil {
		return
	}
	c.bestTotalTime.WithLabelValues(project, solver).Set(float64(best.TotalTime))
	c.bestHandcraftingTime.WithLabelValues(project, solver).Set(float64(best.HandcraftingTime))
	c.bestMachines.WithLabelValues(project, solver).Set(float64(best.MachineCount))
	c.bestCostBuildings.WithLabelValues(project, solver).Set(float64(best.CostCount))
}
