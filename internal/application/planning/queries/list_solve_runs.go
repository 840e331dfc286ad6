package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

const defaultRunLimit = 20

// Type aliases for convenience
type (
	ListSolveRunsQuery    = types.ListSolveRunsQuery
	ListSolveRunsResponse = types.ListSolveRunsResponse
)

// ListSolveRunsHandler handles the ListSolveRuns query
type ListSolveRunsHandler struct {
	runRepo planning.SolveRunRepository
}

// NewListSolveRunsHandler creates a new ListSolveRunsHandler
func NewListSolveRunsHandler(runRepo planning.SolveRunRepository) *ListSolveRunsHandler {
	return &ListSolveRunsHandler{runRepo: runRepo}
}

// Handle executes the ListSolveRuns query
func (h *ListSolveRunsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListSolveRunsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListSolveRunsQuery")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultRunLimit
	}

	var (
		runs []*planning.SolveRun
		err  error
	)
	if query.Project != "" {
		runs, err = h.runRepo.FindByProject(ctx, query.Project, limit)
	} else {
		runs, err = h.runRepo.FindRecent(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query solve runs: %w", err)
	}

	return &ListSolveRunsResponse{Runs: runs}, nil
}
