package helpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

// MockSolveRunRepository is a test double for SolveRunRepository interface
type MockSolveRunRepository struct {
	mu        sync.RWMutex
	runs      []*planning.SolveRun
	createErr error
}

// NewMockSolveRunRepository creates a new mock solve run repository
func NewMockSolveRunRepository() *MockSolveRunRepository {
	return &MockSolveRunRepository{
		runs: make([]*planning.SolveRun, 0),
	}
}

// SetCreateError makes every subsequent Create call fail
func (m *MockSolveRunRepository) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErr = err
}

// Runs returns the stored runs in insertion order
func (m *MockSolveRunRepository) Runs() []*planning.SolveRun {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*planning.SolveRun(nil), m.runs...)
}

// Create stores a run
func (m *MockSolveRunRepository) Create(ctx context.Context, run *planning.SolveRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.runs = append(m.runs, run)
	return nil
}

// FindByID retrieves a run by ID
func (m *MockSolveRunRepository) FindByID(ctx context.Context, id string) (*planning.SolveRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, run := range m.runs {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, fmt.Errorf("solve run not found: %s", id)
}

// FindByProject returns the newest runs of a project first
func (m *MockSolveRunRepository) FindByProject(ctx context.Context, project string, limit int) ([]*planning.SolveRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*planning.SolveRun, 0)
	for i := len(m.runs) - 1; i >= 0 && len(result) < limit; i-- {
		if m.runs[i].Project == project {
			result = append(result, m.runs[i])
		}
	}
	return result, nil
}

// FindRecent returns the newest runs first
func (m *MockSolveRunRepository) FindRecent(ctx context.Context, limit int) ([]*planning.SolveRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*planning.SolveRun, 0)
	for i := len(m.runs) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.runs[i])
	}
	return result, nil
}
