package persistence

import (
	"time"
)

// BuildingModel represents the buildings table
type BuildingModel struct {
	Name     string  `gorm:"column:name;primaryKey"`
	Power    float64 `gorm:"column:power;not null;default:0"`
	Position int     `gorm:"column:position;not null"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// RecipeModel represents the recipes table
type RecipeModel struct {
	Name        string  `gorm:"column:name;primaryKey"`
	Ingredients string  `gorm:"column:ingredients;type:text"` // JSON array as text
	Produced    float64 `gorm:"column:produced;not null;default:0"`
	Rate        float64 `gorm:"column:rate;not null"`
	Building    string  `gorm:"column:building;not null;index"`
	BuildSteps  int     `gorm:"column:build_steps;not null;default:0"`
	Position    int     `gorm:"column:position;not null"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// ProjectModel represents the projects table
type ProjectModel struct {
	Name         string `gorm:"column:name;primaryKey"`
	Requirements string `gorm:"column:requirements;type:text"` // JSON array as text
	Position     int    `gorm:"column:position;not null"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

// SolveRunModel represents the solve_runs table
type SolveRunModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	Project           string    `gorm:"column:project;not null;index"`
	Solver            string    `gorm:"column:solver;not null"`
	ConveyorSpeed     float64   `gorm:"column:conveyor_speed;not null"`
	MaxTime           int       `gorm:"column:max_time;not null;default:0"`
	CostBuilding      string    `gorm:"column:cost_building"`
	SolutionCount     int       `gorm:"column:solution_count;not null;default:0"`
	TotalTime         int       `gorm:"column:total_time;not null;default:0"`
	AutomationTime    int       `gorm:"column:automation_time;not null;default:0"`
	HandcraftingTime  int       `gorm:"column:handcrafting_time;not null;default:0"`
	MachineCount      int       `gorm:"column:machine_count;not null;default:0"`
	CostCount         int       `gorm:"column:cost_count;not null;default:0"`
	Machines          string    `gorm:"column:machines;type:text"`           // JSON object as text
	HandcraftingTimes string    `gorm:"column:handcrafting_times;type:text"` // JSON object as text
	DurationMs        int64     `gorm:"column:duration_ms;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;not null;index"`
}

func (SolveRunModel) TableName() string {
	return "solve_runs"
}
