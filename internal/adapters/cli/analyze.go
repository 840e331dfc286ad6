package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand() *cobra.Command {
	var (
		flags       constraintFlags
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "analyze [project...]",
		Short: "Solve several projects and report their combined power needs",
		Long: `Solve each project independently and concurrently (all projects when none
are given), then print one summary line per project and the power needed to
automate all of them.

Examples:
  factory-planner analyze
  factory-planner analyze Logistics "Part Assembly" --concurrency 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			if concurrency <= 0 {
				concurrency = app.cfg.Solver.Concurrency
			}

			response, err := app.mediator.Send(app.context(cmd.Context()), &types.AnalyzeProjectsCommand{
				Projects:    args,
				Solver:      flags.solverName(app.cfg.Solver),
				Constraints: flags.constraints(app.cfg.Solver),
				Concurrency: concurrency,
				Persist:     flags.persist,
			})
			if err != nil {
				return err
			}
			result := response.(*types.AnalyzeProjectsResponse)

			out := cmd.OutOrStdout()
			projects := make([]string, 0, len(result.Results))
			for _, r := range result.Results {
				projects = append(projects, r.Project)
				best := r.Best()
				if best == nil {
					fmt.Fprintf(out, "%-28s no solution\n", r.Project)
					continue
				}
				fmt.Fprintf(out, "%-28s %6s  hand %6s  %3d machines  %3d %s\n",
					r.Project,
					utils.FormatSeconds(best.TotalTime),
					utils.FormatSeconds(best.HandcraftingTime),
					best.MachineCount,
					best.CostCount,
					r.Constraints.CostBuilding)
			}
			fmt.Fprintln(out)
			writePowerReport(out, projects, result.Power)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum simultaneous solves (default from config)")

	return cmd
}
