package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	catalogPath string
	verbose     bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "factory-planner",
		Short: "Factory planner - allocate buildings and manual work for build projects",
		Long: `Factory planner computes how many production buildings to place for each
product of a project, and which products the operator should craft by hand,
so the project finishes as fast as possible for a given building cost.

Examples:
  factory-planner catalog import game_data.json
  factory-planner requirements "Space Elevator" --tree
  factory-planner solve "Space Elevator" --max-time 600
  factory-planner solve "Space Elevator" --solver downshift --xlsx plan.xlsx
  factory-planner power Logistics "Part Assembly"
  factory-planner analyze --concurrency 4
  factory-planner serve`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/factory-planner)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"Game data file (JSON or YAML); overrides catalog.path and the database catalog")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewRequirementsCommand())
	rootCmd.AddCommand(NewPowerCommand())
	rootCmd.AddCommand(NewSolveCommand())
	rootCmd.AddCommand(NewAnalyzeCommand())
	rootCmd.AddCommand(NewRunsCommand())
	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
