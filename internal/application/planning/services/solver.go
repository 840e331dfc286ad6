package services

import (
	"context"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

// Solver kinds accepted by NewSolver
const (
	SolverIncremental = "incremental"
	SolverDownshift   = "downshift"
)

// SolveStats counts the work done by one solve
type SolveStats struct {
	Iterations          int
	CandidatesEvaluated int
	CandidatesRejected  int
}

// SolveResult is the solution sequence of one solve, most improved last
type SolveResult struct {
	Solutions []*planning.FactorySolution
	Stats     SolveStats
}

// Best returns the most improved solution
func (r *SolveResult) Best() *planning.FactorySolution {
	return planning.Best(r.Solutions)
}

// Solver searches for a building allocation for one problem
type Solver interface {
	Name() string
	Solve(ctx context.Context, problem *planning.Problem) (*SolveResult, error)
}

// NewSolver returns the solver registered under kind
func NewSolver(kind string) (Solver, error) {
	switch kind {
	case SolverIncremental, "":
		return NewIncrementalSolver(NewHandcraftOptimizer()), nil
	case SolverDownshift:
		return NewDownshiftSolver(), nil
	default:
		return nil, &planning.ErrUnknownSolver{Name: kind}
	}
}
