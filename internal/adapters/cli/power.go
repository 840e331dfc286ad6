package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
)

// NewPowerCommand creates the power command
func NewPowerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power [project...]",
		Short: "Estimate the power needed to automate projects",
		Long: `Combine the flattened demand of the given projects (all projects when none
are given) and compute the energy needed to produce it with buildings, with
biofuel, biomass, wood and leaves estimates.

Examples:
  factory-planner power
  factory-planner power Logistics "Part Assembly" "Space Elevator"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.mediator.Send(app.context(cmd.Context()), &types.PowerRequirementsQuery{Projects: args})
			if err != nil {
				return err
			}
			result := response.(*types.PowerRequirementsResponse)

			writePowerReport(cmd.OutOrStdout(), result.Projects, result.Report)
			return nil
		},
	}

	return cmd
}
