package types

import (
	"time"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// SolveProjectCommand computes a building allocation for one project
type SolveProjectCommand struct {
	Project     string
	Solver      string // "incremental" (default) or "downshift"
	Constraints planning.FactoryConstraints
	Persist     bool // Record the run in the solve history
}

// SolveProjectResponse contains the solution sequence of one solve
type SolveProjectResponse struct {
	RunID        string
	Project      string
	Solver       string
	Catalog      *production.Catalog
	Requirements *production.Requirements
	Constraints  planning.FactoryConstraints
	Solutions    []*planning.FactorySolution
	Milestones   []*planning.FactorySolution
	Iterations   int
	Candidates   int
	Duration     time.Duration
}

// Best returns the most improved solution
func (r *SolveProjectResponse) Best() *planning.FactorySolution {
	return planning.Best(r.Solutions)
}

// AnalyzeProjectsCommand solves several projects independently
type AnalyzeProjectsCommand struct {
	Projects    []string // Empty means every project in the catalog
	Solver      string
	Constraints planning.FactoryConstraints
	Concurrency int // Maximum simultaneous solves (0 = one per project)
	Persist     bool
}

// AnalyzeProjectsResponse contains one solve result per project, in request order
type AnalyzeProjectsResponse struct {
	Results []*SolveProjectResponse
	Power   *production.PowerReport
}

// FlattenRequirementsQuery expands a project into its total demand
type FlattenRequirementsQuery struct {
	Project string
}

// FlattenRequirementsResponse contains the flattened demand
type FlattenRequirementsResponse struct {
	Project      string
	Requirements *production.Requirements
}

// PowerRequirementsQuery computes the energy needed to automate several projects
type PowerRequirementsQuery struct {
	Projects []string
}

// PowerRequirementsResponse contains the combined power report
type PowerRequirementsResponse struct {
	Projects []string
	Report   *production.PowerReport
}

// ListSolveRunsQuery lists recorded solve runs
type ListSolveRunsQuery struct {
	Project string // Empty lists every project
	Limit   int
}

// ListSolveRunsResponse contains recorded runs, newest first
type ListSolveRunsResponse struct {
	Runs []*planning.SolveRun
}

// ListProjectsQuery lists the projects of the catalog
type ListProjectsQuery struct{}

// ProjectSummary describes one project
type ProjectSummary struct {
	Name         string
	Requirements []production.Requirement
}

// ListProjectsResponse contains every project, sorted by name
type ListProjectsResponse struct {
	Projects []ProjectSummary
}
