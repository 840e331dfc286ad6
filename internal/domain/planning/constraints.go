package planning

import (
	"strings"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

const (
	// DefaultMaxBuildings is the per-product automation cap when none is configured
	DefaultMaxBuildings = 1000

	// DefaultCostBuilding is the building type counted as the primary cost metric
	DefaultCostBuilding = "Constructor"

	// MinimumTotalTime stops the incremental search once a solution is this fast
	MinimumTotalTime = 60

	// MaxCostBuildings stops the incremental search at this many cost buildings
	MaxCostBuildings = 200
)

// FactoryConstraints parameterizes a solve
type FactoryConstraints struct {
	// ConveyorSpeed caps the per-building throughput (units per minute)
	ConveyorSpeed float64

	// MaxTime is the total time budget in seconds; zero means no budget
	MaxTime int

	// MaxBuildings caps the automation units per product
	MaxBuildings map[string]int

	// CostBuilding is the building type whose count is minimized
	CostBuilding string
}

// NewFactoryConstraints creates constraints with the default cost building
func NewFactoryConstraints(conveyorSpeed float64, maxTime int) FactoryConstraints {
	return FactoryConstraints{
		ConveyorSpeed: conveyorSpeed,
		MaxTime:       maxTime,
		MaxBuildings:  make(map[string]int),
		CostBuilding:  DefaultCostBuilding,
	}
}

// MaxBuildingsFor returns the automation cap for a product.
// Caps loaded from config files arrive with lowercased keys, so a
// lowercase entry matches as well.
func (c FactoryConstraints) MaxBuildingsFor(product string) int {
	if limit, ok := c.MaxBuildings[product]; ok {
		return limit
	}
	if limit, ok := c.MaxBuildings[strings.ToLower(product)]; ok {
		return limit
	}
	return DefaultMaxBuildings
}

// HasTimeBudget returns true if a total time budget is configured
func (c FactoryConstraints) HasTimeBudget() bool {
	return c.MaxTime > 0
}

// CappedRate returns the effective per-building rate for a recipe
func (c FactoryConstraints) CappedRate(recipe *production.Recipe) float64 {
	if c.ConveyorSpeed <= 0 || recipe.Rate < c.ConveyorSpeed {
		return recipe.Rate
	}
	return c.ConveyorSpeed
}

// Problem bundles the read-only inputs of one solve
type Problem struct {
	Project      string
	Catalog      *production.Catalog
	Requirements *production.Requirements
	Constraints  FactoryConstraints
}

// NewProblem flattens a project's demand and bundles it with the constraints
func NewProblem(catalog *production.Catalog, projectName string, constraints FactoryConstraints) (*Problem, error) {
	project, err := catalog.Project(projectName)
	if err != nil {
		return nil, err
	}

	requirements, err := production.FlattenProject(catalog, project)
	if err != nil {
		return nil, err
	}

	if constraints.CostBuilding == "" {
		constraints.CostBuilding = DefaultCostBuilding
	}
	if constraints.MaxBuildings == nil {
		constraints.MaxBuildings = make(map[string]int)
	}

	return &Problem{
		Project:      projectName,
		Catalog:      catalog,
		Requirements: requirements,
		Constraints:  constraints,
	}, nil
}

// Recipe looks up a recipe in the problem's catalog
func (p *Problem) Recipe(product string) (*production.Recipe, error) {
	return p.Catalog.Recipe(product)
}

// Products returns the demanded products in first-demand order
func (p *Problem) Products() []string {
	return p.Requirements.Products()
}
