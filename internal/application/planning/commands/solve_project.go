package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	appPlanning "github.com/andrescamacho/factory-planner/internal/application/planning"
	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
	"github.com/andrescamacho/factory-planner/internal/domain/shared"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// Type aliases for convenience
type (
	SolveProjectCommand  = types.SolveProjectCommand
	SolveProjectResponse = types.SolveProjectResponse
)

// SolveProjectHandler flattens a project, runs the selected solver and
// optionally records the run in the solve history.
type SolveProjectHandler struct {
	catalogs production.CatalogSource
	runRepo  planning.SolveRunRepository
	metrics  appPlanning.SolveMetricsRecorder
	clock    shared.Clock
}

// NewSolveProjectHandler creates a new solve handler.
// runRepo and metrics may be nil when history or metrics are disabled.
func NewSolveProjectHandler(
	catalogs production.CatalogSource,
	runRepo planning.SolveRunRepository,
	metrics appPlanning.SolveMetricsRecorder,
	clock shared.Clock,
) *SolveProjectHandler {
	if metrics == nil {
		metrics = appPlanning.NoOpMetricsRecorder()
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &SolveProjectHandler{
		catalogs: catalogs,
		runRepo:  runRepo,
		metrics:  metrics,
		clock:    clock,
	}
}

// Handle executes the solve command
func (h *SolveProjectHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SolveProjectCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SolveProjectCommand")
	}

	catalog, err := h.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return h.solve(ctx, catalog, cmd)
}

func (h *SolveProjectHandler) solve(ctx context.Context, catalog *production.Catalog, cmd *SolveProjectCommand) (*SolveProjectResponse, error) {
	logger := common.LoggerFromContext(ctx)

	solver, err := services.NewSolver(cmd.Solver)
	if err != nil {
		return nil, err
	}

	problem, err := planning.NewProblem(catalog, cmd.Project, cmd.Constraints)
	if err != nil {
		return nil, err
	}

	logger.Log(common.LevelInfo, "Solving project", map[string]interface{}{
		"project":        cmd.Project,
		"solver":         solver.Name(),
		"products":       problem.Requirements.Len(),
		"conveyor_speed": problem.Constraints.ConveyorSpeed,
		"max_time":       problem.Constraints.MaxTime,
	})

	start := h.clock.Now()
	result, err := solver.Solve(ctx, problem)
	duration := h.clock.Now().Sub(start)
	h.metrics.RecordSolve(cmd.Project, solver.Name(), result, duration, err)
	if err != nil {
		return nil, fmt.Errorf("solve %s failed: %w", cmd.Project, err)
	}

	response := &SolveProjectResponse{
		Project:      cmd.Project,
		Solver:       solver.Name(),
		Catalog:      catalog,
		Requirements: problem.Requirements,
		Constraints:  problem.Constraints,
		Solutions:    result.Solutions,
		Milestones:   planning.SelectMilestones(result.Solutions),
		Iterations:   result.Stats.Iterations,
		Candidates:   result.Stats.CandidatesEvaluated,
		Duration:     duration,
	}

	if best := result.Best(); best != nil {
		logger.Log(common.LevelInfo, "Solve complete", map[string]interface{}{
			"project":    cmd.Project,
			"solutions":  len(result.Solutions),
			"total_time": utils.FormatSeconds(best.TotalTime),
			"machines":   best.MachineCount,
			"cost_count": best.CostCount,
		})
	}

	if cmd.Persist && h.runRepo != nil {
		run := planning.NewSolveRun(
			utils.GenerateRunID(solver.Name(), cmd.Project),
			cmd.Project,
			solver.Name(),
			problem.Constraints,
			result.Solutions,
			duration,
			h.clock.Now(),
		)
		if err := h.runRepo.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to record solve run: %w", err)
		}
		response.RunID = run.ID
	}

	return response, nil
}
