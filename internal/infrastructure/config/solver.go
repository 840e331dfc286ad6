package config

import (
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

// SolverConfig holds the default constraints applied to every solve
type SolverConfig struct {
	// Solver kind used when a command does not name one
	Default string `mapstructure:"default" validate:"required,oneof=incremental downshift"`

	// Per-building throughput cap in units per minute
	ConveyorSpeed float64 `mapstructure:"conveyor_speed" validate:"gt=0"`

	// Total time budget in seconds
	MaxTime int `mapstructure:"max_time" validate:"min=0"`

	// Building type counted as the cost metric
	CostBuilding string `mapstructure:"cost_building" validate:"required"`

	// Per-product building caps
	MaxBuildings map[string]int `mapstructure:"max_buildings" validate:"dive,min=0"`

	// Maximum simultaneous solves for multi-project analysis
	Concurrency int `mapstructure:"concurrency" validate:"min=1"`
}

// Constraints converts the configured defaults into solve constraints
func (c SolverConfig) Constraints() planning.FactoryConstraints {
	constraints := planning.NewFactoryConstraints(c.ConveyorSpeed, c.MaxTime)
	constraints.CostBuilding = c.CostBuilding
	for product, limit := range c.MaxBuildings {
		constraints.MaxBuildings[product] = limit
	}
	return constraints
}
