package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// NewRunsCommand creates the runs command with subcommands
func NewRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the solve history",
		Long: `List solves recorded with --save.

Examples:
  factory-planner runs list
  factory-planner runs list --project "Space Elevator" --limit 5`,
	}

	cmd.AddCommand(newRunsListCommand())

	return cmd
}

// newRunsListCommand creates the runs list subcommand
func newRunsListCommand() *cobra.Command {
	var (
		project string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded solves, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.mediator.Send(app.context(cmd.Context()), &types.ListSolveRunsQuery{
				Project: project,
				Limit:   limit,
			})
			if err != nil {
				return err
			}
			result := response.(*types.ListSolveRunsResponse)

			out := cmd.OutOrStdout()
			if len(result.Runs) == 0 {
				fmt.Fprintln(out, "No recorded solves")
				return nil
			}
			for _, run := range result.Runs {
				fmt.Fprintf(out, "%s  %s  %-22s %-11s total %6s  hand %6s  %3d machines  %3d %s\n",
					run.CreatedAt.Format("2006-01-02 15:04"),
					run.ID,
					run.Project,
					run.Solver,
					utils.FormatSeconds(run.TotalTime),
					utils.FormatSeconds(run.HandcraftingTime),
					run.MachineCount,
					run.CostCount,
					run.CostBuilding)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only list runs of this project")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs")

	return cmd
}
