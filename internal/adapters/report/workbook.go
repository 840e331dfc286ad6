package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// Sheet names of an exported workbook
const (
	SummarySheet      = "Summary"
	RequirementsSheet = "Requirements"
	MachinesSheet     = "Machines"
	MilestonesSheet   = "Milestones"
	SolutionsSheet    = "Solutions"
)

// NewSolveWorkbook builds a workbook describing one solve: a summary, the
// flattened demand, the best solution's lanes, the milestones and every
// intermediate solution. The caller must Close the returned file.
func NewSolveWorkbook(response *types.SolveProjectResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	writers := []func(*excelize.File, *types.SolveProjectResponse) error{
		writeSummary,
		writeRequirements,
		writeMachines,
		writeSolutionRows(MilestonesSheet, func(r *types.SolveProjectResponse) []*planning.FactorySolution { return r.Milestones }),
		writeSolutionRows(SolutionsSheet, func(r *types.SolveProjectResponse) []*planning.FactorySolution { return r.Solutions }),
	}
	for _, write := range writers {
		if err := write(f, response); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteSolveWorkbook writes the workbook of a solve to w
func WriteSolveWorkbook(w io.Writer, response *types.SolveProjectResponse) error {
	f, err := NewSolveWorkbook(response)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveSolveWorkbook writes the workbook of a solve to path
func SaveSolveWorkbook(path string, response *types.SolveProjectResponse) error {
	f, err := NewSolveWorkbook(response)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, r *types.SolveProjectResponse) error {
	rows := [][]interface{}{
		{"Project", r.Project},
		{"Solver", r.Solver},
		{"Conveyor speed", r.Constraints.ConveyorSpeed},
		{"Max time", utils.FormatSeconds(r.Constraints.MaxTime)},
		{"Cost building", r.Constraints.CostBuilding},
		{"Solutions", len(r.Solutions)},
		{"Iterations", r.Iterations},
	}
	if best := r.Best(); best != nil {
		rows = append(rows,
			[]interface{}{"Total time", utils.FormatSeconds(best.TotalTime)},
			[]interface{}{"Automation time", utils.FormatSeconds(best.AutomationTime)},
			[]interface{}{"Handcrafting time", utils.FormatSeconds(best.HandcraftingTime)},
			[]interface{}{"Buildings", best.MachineCount},
			[]interface{}{"Cost buildings", best.CostCount},
		)
	}
	return writeRows(f, SummarySheet, rows)
}

func writeRequirements(f *excelize.File, r *types.SolveProjectResponse) error {
	if _, err := f.NewSheet(RequirementsSheet); err != nil {
		return fmt.Errorf("failed to create requirements sheet: %w", err)
	}
	rows := [][]interface{}{{"Product", "Quantity"}}
	for _, product := range r.Requirements.Products() {
		rows = append(rows, []interface{}{product, r.Requirements.Quantity(product)})
	}
	return writeRows(f, RequirementsSheet, rows)
}

func writeMachines(f *excelize.File, r *types.SolveProjectResponse) error {
	if _, err := f.NewSheet(MachinesSheet); err != nil {
		return fmt.Errorf("failed to create machines sheet: %w", err)
	}
	rows := [][]interface{}{{"Product", "Buildings", "Automation time", "Automated", "Handcrafting time", "Handcrafted"}}
	if best := r.Best(); best != nil {
		for _, product := range r.Requirements.Products() {
			rows = append(rows, []interface{}{
				product,
				best.Machines[product],
				utils.FormatSeconds(best.AutomationTimes[product]),
				best.AutomationProduction[product],
				utils.FormatSeconds(best.HandcraftingTimes[product]),
				best.HandcraftingProduction[product],
			})
		}
	}
	return writeRows(f, MachinesSheet, rows)
}

func writeSolutionRows(sheet string, pick func(*types.SolveProjectResponse) []*planning.FactorySolution) func(*excelize.File, *types.SolveProjectResponse) error {
	return func(f *excelize.File, r *types.SolveProjectResponse) error {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create %s sheet: %w", sheet, err)
		}
		rows := [][]interface{}{{"#", "Change", "Total time", "Automation time", "Handcrafting time", "Buildings", "Cost buildings"}}
		for i, solution := range pick(r) {
			rows = append(rows, []interface{}{
				i,
				solution.Name,
				utils.FormatSeconds(solution.TotalTime),
				utils.FormatSeconds(solution.AutomationTime),
				utils.FormatSeconds(solution.HandcraftingTime),
				solution.MachineCount,
				solution.CostCount,
			})
		}
		return writeRows(f, sheet, rows)
	}
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
