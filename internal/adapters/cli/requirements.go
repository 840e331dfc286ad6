package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
)

// NewRequirementsCommand creates the requirements command
func NewRequirementsCommand() *cobra.Command {
	var (
		showTree  bool
		useColors bool
	)

	cmd := &cobra.Command{
		Use:   "requirements [project]",
		Short: "Show the flattened demand of a project",
		Long: `Expand every root requirement of a project through its recipes and print
the total quantity of each product, in the order products are first needed.

With --tree the ingredient tree is printed instead.

Examples:
  factory-planner requirements "Space Elevator"
  factory-planner requirements "Space Elevator" --tree`,
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
			ctx := app.context(cmd.Context())

			if showTree {
				catalog, err := app.catalogs.Load(ctx)
				if err != nil {
					return err
				}
				p, err := catalog.Project(project)
				if err != nil {
					return err
				}
				tree, err := NewTreeFormatter(useColors).FormatProject(catalog, p)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tree)
				return nil
			}

			response, err := app.mediator.Send(ctx, &types.FlattenRequirementsQuery{Project: project})
			if err != nil {
				return err
			}
			result := response.(*types.FlattenRequirementsResponse)

			fmt.Fprintf(cmd.OutOrStdout(), "%s requires:\n", result.Project)
			writeRequirements(cmd.OutOrStdout(), result.Requirements)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "Print the ingredient tree")
	cmd.Flags().BoolVar(&useColors, "color", false, "Color buildings in the tree")

	return cmd
}
