package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/adapters/catalogfile"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage game data (recipes, projects, buildings)",
		Long: `Manage the game data used by every command.

Game data is read from the file named by --catalog or catalog.path when set,
otherwise from the database. Import a file once to store it in the database.

Examples:
  factory-planner catalog import game_data.json
  factory-planner catalog list`,
	}

	cmd.AddCommand(newCatalogImportCommand())
	cmd.AddCommand(newCatalogListCommand())

	return cmd
}

// newCatalogImportCommand creates the catalog import subcommand
func newCatalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a game data file and store it in the database",
		Long: `Parse a JSON or YAML game data file, validate every recipe, project and
building reference, and replace the catalog stored in the database.

Example:
  factory-planner catalog import game_data.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := app.context(cmd.Context())
			catalog, err := catalogfile.NewFileCatalogSource(args[0]).Load(ctx)
			if err != nil {
				return err
			}

			if err := app.store.Replace(ctx, catalog); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d recipes, %d projects, %d buildings from %s\n",
				len(catalog.Recipes()), len(catalog.Projects()), len(catalog.Buildings()), args[0])
			return nil
		},
	}
}

// newCatalogListCommand creates the catalog list subcommand
func newCatalogListCommand() *cobra.Command {
	var showRecipes bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects (and optionally recipes) of the catalog",
		Example: `  factory-planner catalog list
  factory-planner catalog list --recipes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			catalog, err := app.catalogs.Load(app.context(cmd.Context()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Projects:")
			for _, project := range catalog.Projects() {
				parts := make([]string, 0, len(project.Requirements))
				for _, req := range project.Requirements {
					parts = append(parts, fmt.Sprintf("%s %s", formatQuantity(req.Quantity), req.Name))
				}
				fmt.Fprintf(out, "  %s: %s\n", project.Name, strings.Join(parts, ", "))
			}

			if showRecipes {
				fmt.Fprintln(out, "\nRecipes:")
				for _, recipe := range catalog.Recipes() {
					hand := "-"
					if recipe.CanHandcraft() {
						hand = fmt.Sprintf("%d steps", recipe.BuildSteps)
					}
					fmt.Fprintf(out, "  %-24s %-14s %6g/min  hand %s\n", recipe.Name, recipe.Building, recipe.Rate, hand)
				}

				fmt.Fprintln(out, "\nBuildings:")
				for _, building := range catalog.Buildings() {
					fmt.Fprintf(out, "  %-14s %g MW\n", building.Name, building.Power)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRecipes, "recipes", false, "Also list recipes and buildings")

	return cmd
}
