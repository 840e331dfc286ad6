package helpers

import (
	"testing"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// Fixture project names
const (
	ProjectSpaceElevator = "Space Elevator"
	ProjectTierZero      = "Tier 0"
)

// FixtureBuildings returns the buildings used by the fixture catalog
func FixtureBuildings() []production.Building {
	return []production.Building{
		{Name: "Miner", Power: 5},
		{Name: "Smelter", Power: 4},
		{Name: "Constructor", Power: 4},
		{Name: "Assembler", Power: 15},
	}
}

// FixtureRecipes returns a small iron production chain.
//
// Flattening "Space Elevator" (10 Reinforced Iron Plate) yields:
//
//	Reinforced Iron Plate 10, Iron Plate 60, Iron Ingot 120,
//	Iron Ore 120, Screw 120, Iron Rod 30
func FixtureRecipes() []production.Recipe {
	return []production.Recipe{
		fixtureRecipe("Iron Ore", "Miner", 1, 60, 1),
		fixtureRecipe("Iron Ingot", "Smelter", 1, 30, 1, ingredient("Iron Ore", 1)),
		fixtureRecipe("Iron Plate", "Constructor", 2, 20, 2, ingredient("Iron Ingot", 3)),
		fixtureRecipe("Iron Rod", "Constructor", 1, 15, 1, ingredient("Iron Ingot", 1)),
		fixtureRecipe("Screw", "Constructor", 4, 40, 1, ingredient("Iron Rod", 1)),
		fixtureRecipe("Reinforced Iron Plate", "Assembler", 1, 5, 4,
			ingredient("Iron Plate", 6),
			ingredient("Screw", 12),
		),
	}
}

func fixtureRecipe(name, building string, produced, rate float64, buildSteps int, ingredients ...production.Ingredient) production.Recipe {
	return production.Recipe{
		Name:        name,
		Ingredients: ingredients,
		Produced:    produced,
		Rate:        rate,
		Building:    building,
		BuildSteps:  buildSteps,
	}
}

func ingredient(name string, quantity float64) production.Ingredient {
	return production.Ingredient{Name: name, Quantity: quantity}
}

// FixtureProjects returns the projects used by the fixture catalog
func FixtureProjects() []production.Project {
	return []production.Project{
		{
			Name:         ProjectSpaceElevator,
			Requirements: []production.Requirement{{Name: "Reinforced Iron Plate", Quantity: 10}},
		},
		{
			Name: ProjectTierZero,
			Requirements: []production.Requirement{
				{Name: "Iron Plate", Quantity: 10},
				{Name: "Iron Rod", Quantity: 10},
			},
		},
	}
}

// NewFixtureCatalog builds the fixture catalog, failing the test on error
func NewFixtureCatalog(t testing.TB) *production.Catalog {
	t.Helper()
	catalog, err := production.NewCatalog(FixtureRecipes(), FixtureProjects(), FixtureBuildings())
	if err != nil {
		t.Fatalf("failed to build fixture catalog: %v", err)
	}
	return catalog
}

// MustFixtureCatalog builds the fixture catalog outside of a test
func MustFixtureCatalog() *production.Catalog {
	catalog, err := production.NewCatalog(FixtureRecipes(), FixtureProjects(), FixtureBuildings())
	if err != nil {
		panic("failed to build fixture catalog: " + err.Error())
	}
	return catalog
}
