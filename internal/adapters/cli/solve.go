package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/adapters/report"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/config"
)

// constraintFlags holds the solve constraint overrides shared by solve and analyze
type constraintFlags struct {
	solver        string
	conveyorSpeed float64
	maxTime       int
	costBuilding  string
	maxBuildings  map[string]int
	persist       bool
}

func (f *constraintFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.solver, "solver", "", "Solver: incremental or downshift (default from config)")
	cmd.Flags().Float64Var(&f.conveyorSpeed, "conveyor-speed", 0, "Per-building throughput cap in units/min (default from config)")
	cmd.Flags().IntVar(&f.maxTime, "max-time", -1, "Time budget in seconds, 0 for none (default from config)")
	cmd.Flags().StringVar(&f.costBuilding, "cost-building", "", "Building type counted as cost (default from config)")
	cmd.Flags().StringToIntVar(&f.maxBuildings, "max-buildings", nil, "Per-product building caps, e.g. \"Iron Ingot=3,Concrete=2\"")
	cmd.Flags().BoolVar(&f.persist, "save", false, "Record the run in the solve history")
}

func (f *constraintFlags) solverName(cfg config.SolverConfig) string {
	if f.solver != "" {
		return f.solver
	}
	if userCfg := loadUserConfig(); userCfg.DefaultSolver != "" {
		return userCfg.DefaultSolver
	}
	return cfg.Default
}

func (f *constraintFlags) constraints(cfg config.SolverConfig) planning.FactoryConstraints {
	constraints := cfg.Constraints()
	if f.conveyorSpeed > 0 {
		constraints.ConveyorSpeed = f.conveyorSpeed
	}
	if f.maxTime >= 0 {
		constraints.MaxTime = f.maxTime
	}
	if f.costBuilding != "" {
		constraints.CostBuilding = f.costBuilding
	}
	for product, limit := range f.maxBuildings {
		constraints.MaxBuildings[product] = limit
	}
	return constraints
}

// NewSolveCommand creates the solve command
func NewSolveCommand() *cobra.Command {
	var (
		flags    constraintFlags
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "solve [project]",
		Short: "Compute a building allocation for a project",
		Long: `Search for the number of buildings per product and the manual work that
completes a project fastest for its building cost.

The incremental solver starts from an all-manual plan and adds one building
per iteration. The downshift solver starts from enough buildings to meet the
time budget and removes one per iteration while the manual queue fits.

Examples:
  factory-planner solve "Space Elevator"
  factory-planner solve "Space Elevator" --solver downshift --max-time 600
  factory-planner solve "Space Elevator" --max-buildings "Iron Ingot=3" --save
  factory-planner solve "Space Elevator" --xlsx plan.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			project, err := resolveProject(args)
			if err != nil {
				return err
			}

			response, err := app.mediator.Send(app.context(cmd.Context()), &types.SolveProjectCommand{
				Project:     project,
				Solver:      flags.solverName(app.cfg.Solver),
				Constraints: flags.constraints(app.cfg.Solver),
				Persist:     flags.persist,
			})
			if err != nil {
				return err
			}
			result := response.(*types.SolveProjectResponse)

			writeSolveReport(cmd.OutOrStdout(), result)

			if xlsxPath != "" {
				if err := report.SaveSolveWorkbook(xlsxPath, result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nWorkbook written to %s\n", xlsxPath)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also export the solve to an Excel workbook")

	return cmd
}
