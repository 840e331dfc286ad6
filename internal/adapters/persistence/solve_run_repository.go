package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

// GormSolveRunRepository implements SolveRunRepository using GORM
type GormSolveRunRepository struct {
	db *gorm.DB
}

// NewGormSolveRunRepository creates a new GORM solve run repository
func NewGormSolveRunRepository(db *gorm.DB) *GormSolveRunRepository {
	return &GormSolveRunRepository{db: db}
}

// Create persists a new solve run
func (r *GormSolveRunRepository) Create(ctx context.Context, run *planning.SolveRun) error {
	model, err := r.entityToModel(run)
	if err != nil {
		return fmt.Errorf("failed to convert solve run to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create solve run: %w", err)
	}
	return nil
}

// FindByID retrieves a solve run by ID
func (r *GormSolveRunRepository) FindByID(ctx context.Context, id string) (*planning.SolveRun, error) {
	var model SolveRunModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("solve run not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find solve run: %w", result.Error)
	}

	return r.modelToEntity(&model)
}

// FindByProject retrieves the most recent runs of a project
func (r *GormSolveRunRepository) FindByProject(ctx context.Context, project string, limit int) ([]*planning.SolveRun, error) {
	var models []SolveRunModel
	result := r.db.WithContext(ctx).
		Where("project = ?", project).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find solve runs for %s: %w", project, result.Error)
	}

	return r.modelsToEntities(models)
}

// FindRecent retrieves the most recent runs across all projects
func (r *GormSolveRunRepository) FindRecent(ctx context.Context, limit int) ([]*planning.SolveRun, error) {
	var models []SolveRunModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent solve runs: %w", result.Error)
	}

	return r.modelsToEntities(models)
}

func (r *GormSolveRunRepository) modelsToEntities(models []SolveRunModel) ([]*planning.SolveRun, error) {
	runs := make([]*planning.SolveRun, 0, len(models))
	for i := range models {
		run, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert solve run %s: %w", models[i].ID, err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// entityToModel converts domain entity to database model
func (r *GormSolveRunRepository) entityToModel(run *planning.SolveRun) (*SolveRunModel, error) {
	machinesJSON, err := json.Marshal(run.Machines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal machines: %w", err)
	}

	handcraftingJSON, err := json.Marshal(run.HandcraftingTimes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal handcrafting times: %w", err)
	}

	return &SolveRunModel{
		ID:                run.ID,
		Project:           run.Project,
		Solver:            run.Solver,
		ConveyorSpeed:     run.ConveyorSpeed,
		MaxTime:           run.MaxTime,
		CostBuilding:      run.CostBuilding,
		SolutionCount:     run.SolutionCount,
		TotalTime:         run.TotalTime,
		AutomationTime:    run.AutomationTime,
		HandcraftingTime:  run.HandcraftingTime,
		MachineCount:      run.MachineCount,
		CostCount:         run.CostCount,
		Machines:          string(machinesJSON),
		HandcraftingTimes: string(handcraftingJSON),
		DurationMs:        run.Duration.Milliseconds(),
		CreatedAt:         run.CreatedAt,
	}, nil
}

// modelToEntity converts database model to domain entity
func (r *GormSolveRunRepository) modelToEntity(model *SolveRunModel) (*planning.SolveRun, error) {
	machines := make(map[string]int)
	if model.Machines != "" && model.Machines != "null" {
		if err := json.Unmarshal([]byte(model.Machines), &machines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal machines: %w", err)
		}
	}

	handcrafting := make(map[string]int)
	if model.HandcraftingTimes != "" && model.HandcraftingTimes != "null" {
		if err := json.Unmarshal([]byte(model.HandcraftingTimes), &handcrafting); err != nil {
			return nil, fmt.Errorf("failed to unmarshal handcrafting times: %w", err)
		}
	}

	return &planning.SolveRun{
		ID:                model.ID,
		Project:           model.Project,
		Solver:            model.Solver,
		ConveyorSpeed:     model.ConveyorSpeed,
		MaxTime:           model.MaxTime,
		CostBuilding:      model.CostBuilding,
		SolutionCount:     model.SolutionCount,
		TotalTime:         model.TotalTime,
		AutomationTime:    model.AutomationTime,
		HandcraftingTime:  model.HandcraftingTime,
		MachineCount:      model.MachineCount,
		CostCount:         model.CostCount,
		Machines:          machines,
		HandcraftingTimes: handcrafting,
		Duration:          time.Duration(model.DurationMs) * time.Millisecond,
		CreatedAt:         model.CreatedAt,
	}, nil
}
