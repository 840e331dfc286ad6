package production_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
	"github.com/andrescamacho/factory-planner/test/helpers"
)

func buildCatalog(t *testing.T, recipes []production.Recipe, projects ...production.Project) *production.Catalog {
	t.Helper()
	buildings := []production.Building{{Name: "Constructor", Power: 4}}
	catalog, err := production.NewCatalog(recipes, projects, buildings)
	require.NoError(t, err)
	return catalog
}

func TestFlattenProject_ScalesIngredientDemand(t *testing.T) {
	// Arrange
	catalog := buildCatalog(t,
		[]production.Recipe{
			{Name: "A", Ingredients: []production.Ingredient{{Name: "B", Quantity: 2}}, Produced: 1, Rate: 10, Building: "Constructor"},
			{Name: "B", Produced: 1, Rate: 30, Building: "Constructor"},
		},
		production.Project{Name: "P", Requirements: []production.Requirement{{Name: "A", Quantity: 5}}},
	)
	project, err := catalog.Project("P")
	require.NoError(t, err)

	// Act
	requirements, err := production.FlattenProject(catalog, project)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 5, "B": 10}, requirements.AsMap())
	assert.Equal(t, []string{"A", "B"}, requirements.Products())
}

func TestFlattenProject_FixtureCatalog(t *testing.T) {
	// Arrange
	catalog := helpers.NewFixtureCatalog(t)
	project, err := catalog.Project(helpers.ProjectSpaceElevator)
	require.NoError(t, err)

	// Act
	requirements, err := production.FlattenProject(catalog, project)

	// Assert
	require.NoError(t, err)
	expected := map[string]float64{
		"Reinforced Iron Plate": 10,
		"Iron Plate":            60,
		"Iron Ingot":            120,
		"Iron Ore":              120,
		"Screw":                 120,
		"Iron Rod":              30,
	}
	if diff := cmp.Diff(expected, requirements.AsMap()); diff != "" {
		t.Errorf("requirements mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t,
		[]string{"Reinforced Iron Plate", "Iron Plate", "Iron Ingot", "Iron Ore", "Screw", "Iron Rod"},
		requirements.Products())
}

func TestFlattenProject_IndependentOfRecipeOrder(t *testing.T) {
	// Arrange
	recipes := helpers.FixtureRecipes()
	reversed := make([]production.Recipe, len(recipes))
	for i, r := range recipes {
		reversed[len(recipes)-1-i] = r
	}
	forward, err := production.NewCatalog(recipes, helpers.FixtureProjects(), helpers.FixtureBuildings())
	require.NoError(t, err)
	backward, err := production.NewCatalog(reversed, helpers.FixtureProjects(), helpers.FixtureBuildings())
	require.NoError(t, err)

	// Act
	a, err := production.FlattenProjects(forward, helpers.ProjectSpaceElevator)
	require.NoError(t, err)
	b, err := production.FlattenProjects(backward, helpers.ProjectSpaceElevator)
	require.NoError(t, err)

	// Assert
	if diff := cmp.Diff(a.AsMap(), b.AsMap()); diff != "" {
		t.Errorf("recipe order changed the demand (-forward +backward):\n%s", diff)
	}
}

func TestFlattenProject_IndependentOfRequirementOrder(t *testing.T) {
	// Arrange
	recipes := []production.Recipe{
		{Name: "A", Ingredients: []production.Ingredient{{Name: "C", Quantity: 1}}, Rate: 10, Building: "Constructor"},
		{Name: "B", Ingredients: []production.Ingredient{{Name: "C", Quantity: 1}}, Rate: 10, Building: "Constructor"},
		{Name: "D", Ingredients: []production.Ingredient{{Name: "C", Quantity: 1}}, Rate: 10, Building: "Constructor"},
		{Name: "C", Rate: 36, Building: "Constructor"},
	}
	orders := [][]production.Requirement{
		{{Name: "A", Quantity: 0.1}, {Name: "B", Quantity: 0.2}, {Name: "D", Quantity: 0.3}},
		{{Name: "A", Quantity: 0.1}, {Name: "D", Quantity: 0.3}, {Name: "B", Quantity: 0.2}},
		{{Name: "B", Quantity: 0.2}, {Name: "A", Quantity: 0.1}, {Name: "D", Quantity: 0.3}},
		{{Name: "B", Quantity: 0.2}, {Name: "D", Quantity: 0.3}, {Name: "A", Quantity: 0.1}},
		{{Name: "D", Quantity: 0.3}, {Name: "A", Quantity: 0.1}, {Name: "B", Quantity: 0.2}},
		{{Name: "D", Quantity: 0.3}, {Name: "B", Quantity: 0.2}, {Name: "A", Quantity: 0.1}},
	}
	expected := map[string]float64{"A": 0.1, "B": 0.2, "D": 0.3, "C": 0.6}

	for _, order := range orders {
		catalog := buildCatalog(t, recipes, production.Project{Name: "Mix", Requirements: order})

		// Act
		requirements, err := production.FlattenProjects(catalog, "Mix")

		// Assert
		require.NoError(t, err)
		if diff := cmp.Diff(expected, requirements.AsMap()); diff != "" {
			t.Errorf("order %v changed the demand (-want +got):\n%s", order, diff)
		}
	}
}

func TestRequirements_AddIsExact(t *testing.T) {
	requirements := production.NewRequirements()

	for i := 0; i < 10; i++ {
		requirements.Add("Screw", 0.1)
	}

	assert.Equal(t, 1.0, requirements.Quantity("Screw"))
	assert.Equal(t, []string{"Screw"}, requirements.Products())
}

func TestFlattenProject_DetectsCycles(t *testing.T) {
	// Arrange
	catalog := buildCatalog(t,
		[]production.Recipe{
			{Name: "X", Ingredients: []production.Ingredient{{Name: "Y", Quantity: 1}}, Rate: 10, Building: "Constructor"},
			{Name: "Y", Ingredients: []production.Ingredient{{Name: "X", Quantity: 1}}, Rate: 10, Building: "Constructor"},
		},
		production.Project{Name: "Loop", Requirements: []production.Requirement{{Name: "X", Quantity: 1}}},
	)
	project, err := catalog.Project("Loop")
	require.NoError(t, err)

	// Act
	_, err = production.FlattenProject(catalog, project)

	// Assert
	var circular *production.ErrCircularRecipe
	require.True(t, errors.As(err, &circular), "expected circular recipe error, got %v", err)
	assert.Equal(t, "X", circular.Product)
	assert.Equal(t, []string{"X", "Y", "X"}, circular.Chain)
}

func TestFlattenProject_SharedIngredientIsNotACycle(t *testing.T) {
	// Arrange
	catalog := buildCatalog(t,
		[]production.Recipe{
			{Name: "A", Ingredients: []production.Ingredient{{Name: "B", Quantity: 1}, {Name: "C", Quantity: 1}}, Rate: 10, Building: "Constructor"},
			{Name: "B", Ingredients: []production.Ingredient{{Name: "C", Quantity: 2}}, Rate: 10, Building: "Constructor"},
			{Name: "C", Rate: 10, Building: "Constructor"},
		},
		production.Project{Name: "Diamond", Requirements: []production.Requirement{{Name: "A", Quantity: 3}}},
	)

	// Act
	requirements, err := production.FlattenProjects(catalog, "Diamond")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9.0, requirements.Quantity("C"))
}

func TestFlattenProjects_MergesDemand(t *testing.T) {
	// Arrange
	catalog := helpers.NewFixtureCatalog(t)

	// Act
	requirements, err := production.FlattenProjects(catalog, helpers.ProjectSpaceElevator, helpers.ProjectTierZero)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 70.0, requirements.Quantity("Iron Plate"))
	assert.Equal(t, 40.0, requirements.Quantity("Iron Rod"))
	// Tier 0: 10 plates need 15 ingots, 10 rods need 10 ingots
	assert.Equal(t, 145.0, requirements.Quantity("Iron Ingot"))
}

func TestFlattenProjects_UnknownProject(t *testing.T) {
	catalog := helpers.NewFixtureCatalog(t)

	_, err := production.FlattenProjects(catalog, "Nope")

	var unknown *production.ErrUnknownProject
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Nope", unknown.Project)
}
