package commands

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// Type aliases for convenience
type (
	AnalyzeProjectsCommand  = types.AnalyzeProjectsCommand
	AnalyzeProjectsResponse = types.AnalyzeProjectsResponse
)

// AnalyzeProjectsHandler solves several projects concurrently against one
// catalog snapshot and reports their combined power requirement.
type AnalyzeProjectsHandler struct {
	catalogs production.CatalogSource
	solver   *SolveProjectHandler
}

// NewAnalyzeProjectsHandler creates a new analyze handler
func NewAnalyzeProjectsHandler(catalogs production.CatalogSource, solver *SolveProjectHandler) *AnalyzeProjectsHandler {
	return &AnalyzeProjectsHandler{
		catalogs: catalogs,
		solver:   solver,
	}
}

// Handle executes the analyze command
func (h *AnalyzeProjectsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AnalyzeProjectsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AnalyzeProjectsCommand")
	}

	catalog, err := h.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	projects := cmd.Projects
	if len(projects) == 0 {
		projects = catalog.ProjectNames()
	}
	for _, name := range projects {
		if _, err := catalog.Project(name); err != nil {
			return nil, err
		}
	}

	results := make([]*SolveProjectResponse, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	if cmd.Concurrency > 0 {
		g.SetLimit(cmd.Concurrency)
	}

	for i, name := range projects {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			response, err := h.solver.solve(gctx, catalog, &SolveProjectCommand{
				Project:     name,
				Solver:      cmd.Solver,
				Constraints: cmd.Constraints,
				Persist:     cmd.Persist,
			})
			if err != nil {
				return err
			}
			results[i] = response
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	requirements, err := production.FlattenProjects(catalog, projects...)
	if err != nil {
		return nil, err
	}
	power, err := production.NewPowerReport(catalog, requirements)
	if err != nil {
		return nil, err
	}

	return &AnalyzeProjectsResponse{
		Results: results,
		Power:   power,
	}, nil
}
