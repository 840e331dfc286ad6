package cli

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage factory planner configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (FP_* prefix, e.g. FP_SOLVER_MAX_TIME)
2. Config file (config.yaml)
3. Default values

User preferences (default project and solver) are stored in
~/.factory-planner/preferences.json

Examples:
  factory-planner config show
  factory-planner config set-project "Space Elevator"
  factory-planner config set-solver downshift
  factory-planner config clear`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetProjectCommand())
	cmd.AddCommand(newConfigSetSolverCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Fprintln(out, "Factory Planner Configuration")
			fmt.Fprintln(out, "=============================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.GetConfigPath())
			fmt.Fprintf(out, "  Default Project:  %s\n", valueOrUnset(userCfg.DefaultProject))
			fmt.Fprintf(out, "  Default Solver:   %s\n", valueOrUnset(userCfg.DefaultSolver))

			fmt.Fprintln(out, "\nSolver:")
			fmt.Fprintf(out, "  Default:          %s\n", cfg.Solver.Default)
			fmt.Fprintf(out, "  Conveyor Speed:   %g/min\n", cfg.Solver.ConveyorSpeed)
			fmt.Fprintf(out, "  Max Time:         %ds\n", cfg.Solver.MaxTime)
			fmt.Fprintf(out, "  Cost Building:    %s\n", cfg.Solver.CostBuilding)
			fmt.Fprintf(out, "  Concurrency:      %d\n", cfg.Solver.Concurrency)
			products := make([]string, 0, len(cfg.Solver.MaxBuildings))
			for product := range cfg.Solver.MaxBuildings {
				products = append(products, product)
			}
			sort.Strings(products)
			for _, product := range products {
				fmt.Fprintf(out, "  Max %-14s %d\n", product+":", cfg.Solver.MaxBuildings[product])
			}

			fmt.Fprintln(out, "\nCatalog:")
			fmt.Fprintf(out, "  Path:             %s\n", valueOrUnset(cfg.Catalog.Path))

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			fmt.Fprintln(out, "\nHTTP API:")
			fmt.Fprintf(out, "  Address:          %s:%d\n", cfg.API.Host, cfg.API.Port)
			fmt.Fprintf(out, "  Request Timeout:  %s\n", cfg.API.RequestTimeout)
			fmt.Fprintf(out, "  Rate Limit:       %d req/s (burst: %d)\n",
				cfg.API.RateLimit.Requests, cfg.API.RateLimit.Burst)
			fmt.Fprintf(out, "  Metrics:          %v (%s)\n", cfg.Metrics.Enabled, cfg.Metrics.Path)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

// newConfigSetProjectCommand creates the config set-project subcommand
func newConfigSetProjectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-project <project>",
		Short: "Set the default project",
		Long: `Set the project used by solve and requirements when none is given.

The project must exist in the catalog.

Example:
  factory-planner config set-project "Space Elevator"`,
		Args: cobra.ExactArgs(1),
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
			if _, err := catalog.Project(args[0]); err != nil {
				return err
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultProject(args[0]); err != nil {
				return fmt.Errorf("failed to set default project: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default project set to %s\n", args[0])
			return nil
		},
	}
}

// newConfigSetSolverCommand creates the config set-solver subcommand
func newConfigSetSolverCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "set-solver <incremental|downshift>",
		Short:     "Set the default solver",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{services.SolverIncremental, services.SolverDownshift},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.NewSolver(args[0]); err != nil {
				return err
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultSolver(args[0]); err != nil {
				return fmt.Errorf("failed to set default solver: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default solver set to %s\n", args[0])
			return nil
		},
	}
}

// newConfigClearCommand creates the config clear subcommand
func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear stored user preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := userConfigHandler.ClearDefaults(); err != nil {
				return fmt.Errorf("failed to clear preferences: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ User preferences cleared")
			return nil
		},
	}
}

func valueOrUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}
