package planning

import "context"

// SolveRunRepository defines the persistence interface for solve history
type SolveRunRepository interface {
	// Create persists a new solve run
	Create(ctx context.Context, run *SolveRun) error

	// FindByID retrieves a solve run by ID
	FindByID(ctx context.Context, id string) (*SolveRun, error)

	// FindByProject retrieves the most recent runs for a project (newest first)
	FindByProject(ctx context.Context, project string, limit int) ([]*SolveRun, error)

	// FindRecent retrieves the most recent runs across projects (newest first)
	FindRecent(ctx context.Context, limit int) ([]*SolveRun, error)
}
