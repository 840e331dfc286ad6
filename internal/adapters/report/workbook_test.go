package report_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/andrescamacho/factory-planner/internal/adapters/report"
	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/test/helpers"
)

func solveFixture(t *testing.T) *types.SolveProjectResponse {
	t.Helper()
	catalog := helpers.NewFixtureCatalog(t)
	constraints := planning.NewFactoryConstraints(120, 600)
	problem, err := planning.NewProblem(catalog, helpers.ProjectTierZero, constraints)
	require.NoError(t, err)

	result, err := services.NewDownshiftSolver().Solve(context.Background(), problem)
	require.NoError(t, err)

	return &types.SolveProjectResponse{
		RunID:        "downshift-tier-0-0000aaaa",
		Project:      helpers.ProjectTierZero,
		Solver:       services.SolverDownshift,
		Catalog:      catalog,
		Requirements: problem.Requirements,
		Constraints:  problem.Constraints,
		Solutions:    result.Solutions,
		Milestones:   planning.SelectMilestones(result.Solutions),
		Iterations:   result.Stats.Iterations,
	}
}

func TestWriteSolveWorkbook(t *testing.T) {
	// Arrange
	response := solveFixture(t)
	var buf bytes.Buffer

	// Act
	err := report.WriteSolveWorkbook(&buf, response)
	require.NoError(t, err)

	// Assert
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{report.SummarySheet, report.RequirementsSheet, report.MachinesSheet, report.MilestonesSheet, report.SolutionsSheet},
		f.GetSheetList())

	project, err := f.GetCellValue(report.SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, helpers.ProjectTierZero, project)

	requirements, err := f.GetRows(report.RequirementsSheet)
	require.NoError(t, err)
	require.Len(t, requirements, 1+response.Requirements.Len())
	assert.Equal(t, []string{"Product", "Quantity"}, requirements[0])
	assert.Equal(t, "Iron Plate", requirements[1][0])
	assert.Equal(t, "10", requirements[1][1])

	solutions, err := f.GetRows(report.SolutionsSheet)
	require.NoError(t, err)
	assert.Len(t, solutions, 1+len(response.Solutions))
	assert.Equal(t, "Start", solutions[1][1])
}

func TestSaveSolveWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tier-0.xlsx")

	require.NoError(t, report.SaveSolveWorkbook(path, solveFixture(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), report.MachinesSheet)
}
