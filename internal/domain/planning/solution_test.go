package planning_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

var (
	widgetRecipe = production.Recipe{Name: "Widget", Rate: 30, Building: "Constructor"}
	plateRecipe  = production.Recipe{Name: "Plate", Rate: 20, Building: "Constructor", BuildSteps: 2}
	ingotRecipe  = production.Recipe{Name: "Ingot", Rate: 30, Building: "Smelter", BuildSteps: 1}
)

// newTestProblem builds a one-project problem from the given demand
func newTestProblem(t *testing.T, constraints planning.FactoryConstraints, demand ...production.Requirement) *planning.Problem {
	t.Helper()
	catalog, err := production.NewCatalog(
		[]production.Recipe{widgetRecipe, plateRecipe, ingotRecipe},
		[]production.Project{{Name: "Test", Requirements: demand}},
		[]production.Building{{Name: "Constructor", Power: 4}, {Name: "Smelter", Power: 4}},
	)
	require.NoError(t, err)

	problem, err := planning.NewProblem(catalog, "Test", constraints)
	require.NoError(t, err)
	return problem
}

func TestFactorySolution_CloneIsIndependent(t *testing.T) {
	// Arrange
	problem := newTestProblem(t, planning.NewFactoryConstraints(60, 0),
		production.Requirement{Name: "Widget", Quantity: 60},
		production.Requirement{Name: "Plate", Quantity: 100},
	)
	original := planning.NewFactorySolution("Start")
	original.Machines["Widget"] = 1
	require.NoError(t, original.EvaluateTimes(problem))

	// Act
	clone := original.Clone()

	// Assert
	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone differs from original (-original +clone):\n%s", diff)
	}

	clone.Machines["Widget"] = 7
	clone.AutomationTimes["Widget"] = 1
	clone.HandcraftingTimes["Plate"] = 1
	clone.AutomationProduction["Widget"] = 1
	clone.HandcraftingProduction["Plate"] = 1
	clone.HandcraftingOrder[0] = "Widget"
	clone.HandcraftingOrder = append(clone.HandcraftingOrder, "Plate")

	assert.Equal(t, 1, original.Machines["Widget"])
	assert.Equal(t, 120, original.AutomationTimes["Widget"])
	assert.Equal(t, 90, original.HandcraftingTimes["Plate"])
	assert.Equal(t, 60.0, original.AutomationProduction["Widget"])
	assert.Equal(t, 100.0, original.HandcraftingProduction["Plate"])
	assert.Equal(t, []string{"Plate"}, original.HandcraftingOrder)
}

func TestFactorySolution_EvaluateTimes(t *testing.T) {
	// Arrange
	problem := newTestProblem(t, planning.NewFactoryConstraints(60, 0),
		production.Requirement{Name: "Widget", Quantity: 60},
		production.Requirement{Name: "Plate", Quantity: 100},
		production.Requirement{Name: "Ingot", Quantity: 30},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Widget"] = 2
	solution.Machines["Ingot"] = 1

	// Act
	err := solution.EvaluateTimes(problem)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Widget": 60, "Ingot": 60}, solution.AutomationTimes)
	assert.Equal(t, map[string]int{"Plate": 90}, solution.HandcraftingTimes)
	assert.Equal(t, []string{"Plate"}, solution.HandcraftingOrder)
	assert.Equal(t, 60, solution.AutomationTime)
	assert.Equal(t, 90, solution.HandcraftingTime)
	assert.Equal(t, 90, solution.TotalTime)
	assert.Equal(t, 3, solution.MachineCount)
	assert.Equal(t, 2, solution.CostCount, "only Constructor buildings count toward cost")
}

func TestFactorySolution_EvaluateTimesCapsRateAtConveyorSpeed(t *testing.T) {
	problem := newTestProblem(t, planning.NewFactoryConstraints(15, 0),
		production.Requirement{Name: "Widget", Quantity: 60},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Widget"] = 2

	require.NoError(t, solution.EvaluateTimes(problem))

	assert.Equal(t, 120, solution.AutomationTimes["Widget"])
}

func TestFactorySolution_EvaluateTimesRequiresBuildingsForNonHandcraftable(t *testing.T) {
	problem := newTestProblem(t, planning.NewFactoryConstraints(60, 0),
		production.Requirement{Name: "Widget", Quantity: 60},
	)
	solution := planning.NewFactorySolution("Start")

	err := solution.EvaluateTimes(problem)

	var invalid *production.ErrInvalidRecipe
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Widget", invalid.Product)
}

func TestFactorySolution_Blockers(t *testing.T) {
	problem := newTestProblem(t, planning.NewFactoryConstraints(60, 0),
		production.Requirement{Name: "Widget", Quantity: 60},
		production.Requirement{Name: "Ingot", Quantity: 60},
		production.Requirement{Name: "Plate", Quantity: 10},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Widget"] = 1
	solution.Machines["Ingot"] = 1
	require.NoError(t, solution.EvaluateTimes(problem))

	assert.Equal(t, []string{"Widget", "Ingot"}, solution.Blockers(problem))
	assert.True(t, solution.IsBlocker("Widget"))
	assert.False(t, solution.IsBlocker("Plate"), "handcrafted products never block")
	assert.True(t, solution.IsHandcrafted("Plate"))
}

func TestFactorySolution_AllocateRemainingHandcrafting(t *testing.T) {
	// Arrange
	problem := newTestProblem(t, planning.NewFactoryConstraints(0, 0),
		production.Requirement{Name: "Plate", Quantity: 100},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Plate"] = 1
	require.NoError(t, solution.EvaluateTimes(problem))
	require.Equal(t, 300, solution.TotalTime)

	// Act
	applied, err := solution.AllocateRemainingHandcrafting(problem, "Plate")

	// Assert
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 70, solution.AutomationTimes["Plate"])
	assert.Equal(t, 23.0, solution.AutomationProduction["Plate"])
	assert.Equal(t, 70, solution.HandcraftingTimes["Plate"])
	assert.Equal(t, 77.0, solution.HandcraftingProduction["Plate"])
	assert.Equal(t, []string{"Plate"}, solution.HandcraftingOrder)
	assert.Equal(t, 70, solution.TotalTime)
	assert.GreaterOrEqual(t,
		solution.AutomationProduction["Plate"]+solution.HandcraftingProduction["Plate"],
		problem.Requirements.Quantity("Plate"))
}

func TestFactorySolution_AllocateRemainingHandcraftingSkipsIneligible(t *testing.T) {
	problem := newTestProblem(t, planning.NewFactoryConstraints(0, 0),
		production.Requirement{Name: "Widget", Quantity: 60},
		production.Requirement{Name: "Plate", Quantity: 100},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Widget"] = 1
	require.NoError(t, solution.EvaluateTimes(problem))

	// Widget has no build steps
	applied, err := solution.AllocateRemainingHandcrafting(problem, "Widget")
	require.NoError(t, err)
	assert.False(t, applied)

	// Plate is already handcrafted in full
	applied, err = solution.AllocateRemainingHandcrafting(problem, "Plate")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestFactorySolution_RemoveMachine(t *testing.T) {
	// Arrange
	problem := newTestProblem(t, planning.NewFactoryConstraints(60, 60),
		production.Requirement{Name: "Plate", Quantity: 100},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Plate"] = 5
	require.NoError(t, solution.EvaluateTimes(problem))

	// Act
	require.NoError(t, solution.RemoveMachine(problem, "Plate"))

	// Assert
	assert.Equal(t, "Plate", solution.Name)
	assert.Equal(t, 4, solution.Machines["Plate"])
	assert.Equal(t, 60, solution.AutomationTimes["Plate"])
	assert.Equal(t, 80.0, solution.AutomationProduction["Plate"])
	assert.Equal(t, 18, solution.HandcraftingTimes["Plate"])
	assert.Equal(t, 20.0, solution.HandcraftingProduction["Plate"])
	assert.Equal(t, []string{"Plate"}, solution.HandcraftingOrder)
	assert.Equal(t, 60, solution.TotalTime)
}

func TestFactorySolution_RemoveLastMachineDropsAutomationLane(t *testing.T) {
	problem := newTestProblem(t, planning.NewFactoryConstraints(60, 120),
		production.Requirement{Name: "Plate", Quantity: 100},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Plate"] = 1
	require.NoError(t, solution.EvaluateTimes(problem))

	require.NoError(t, solution.RemoveMachine(problem, "Plate"))

	_, automated := solution.AutomationTimes["Plate"]
	assert.False(t, automated)
	assert.Equal(t, 0, solution.MachineCount)
	assert.Equal(t, 90, solution.HandcraftingTime)
	assert.Equal(t, 90, solution.TotalTime)
}

func TestFactorySolution_RemoveMachineErrors(t *testing.T) {
	noBudget := newTestProblem(t, planning.NewFactoryConstraints(60, 0),
		production.Requirement{Name: "Plate", Quantity: 100},
	)
	solution := planning.NewFactorySolution("Start")
	solution.Machines["Plate"] = 1
	err := solution.RemoveMachine(noBudget, "Plate")
	assert.True(t, errors.Is(err, planning.ErrMissingTimeBudget))

	budget := newTestProblem(t, planning.NewFactoryConstraints(60, 60),
		production.Requirement{Name: "Widget", Quantity: 60},
	)
	solution = planning.NewFactorySolution("Start")
	solution.Machines["Widget"] = 2
	var invalid *production.ErrInvalidRecipe
	assert.ErrorAs(t, solution.RemoveMachine(budget, "Widget"), &invalid)
}
