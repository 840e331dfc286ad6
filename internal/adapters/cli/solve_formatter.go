package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// writeRequirements prints one "quantity product" line per demanded product
func writeRequirements(w io.Writer, requirements *production.Requirements) {
	for _, product := range requirements.Products() {
		fmt.Fprintf(w, "%.0f %s\n", requirements.Quantity(product), product)
	}
}

// writePowerReport prints the energy requirement and fuel estimates
func writePowerReport(w io.Writer, projects []string, report *production.PowerReport) {
	fmt.Fprintf(w, "Projects: %s\n", strings.Join(projects, ", "))
	fmt.Fprintf(w, "Power requirement is %.1f GJ (%d biofuel, %d biomass, %d wood, %d leaves).\n",
		float64(report.Energy)/1000.0, report.Biofuel, report.Biomass, report.Wood, report.Leaves)
}

// writeSolutionTimes prints the headline times of a solution
func writeSolutionTimes(w io.Writer, solution *planning.FactorySolution) {
	fmt.Fprintf(w, "Solution time ===> %s, automation %s, manual %s <===\n",
		utils.FormatSeconds(solution.TotalTime),
		utils.FormatSeconds(solution.AutomationTime),
		utils.FormatSeconds(solution.HandcraftingTime))
}

// writeMachines lists the buildings of a solution in demand order
func writeMachines(w io.Writer, response *types.SolveProjectResponse, solution *planning.FactorySolution) {
	costBuilding := response.Constraints.CostBuilding
	fmt.Fprintln(w, "Machines allocated:")
	for _, product := range response.Requirements.Products() {
		count := solution.Machines[product]
		if count == 0 {
			continue
		}
		rate := 0.0
		if recipe, err := response.Catalog.Recipe(product); err == nil {
			rate = recipe.Rate
		}
		fmt.Fprintf(w, "%d %s %s (%.0f @ %d * %g/min)\n",
			count,
			product,
			utils.FormatSeconds(solution.AutomationTimes[product]),
			response.Requirements.Quantity(product),
			count,
			rate)
	}
	fmt.Fprintf(w, "Total automation time %s\n", utils.FormatSeconds(solution.AutomationTime))
	fmt.Fprintf(w, "%d %s buildings\n", solution.CostCount, costBuilding)
	fmt.Fprintf(w, "%d machines\n", solution.MachineCount)
}

// writeHandcrafting lists the manual queue of a solution in queue order
func writeHandcrafting(w io.Writer, solution *planning.FactorySolution) {
	if len(solution.HandcraftingOrder) == 0 {
		return
	}
	fmt.Fprintln(w, "Handcrafting order:")
	for _, product := range solution.HandcraftingOrder {
		fmt.Fprintf(w, "%.0f %s %s\n",
			solution.HandcraftingProduction[product],
			product,
			utils.FormatSeconds(solution.HandcraftingTimes[product]))
	}
}

// writeMilestones prints the best time reached at each cost building count
func writeMilestones(w io.Writer, response *types.SolveProjectResponse) {
	fmt.Fprintf(w, "Best times per %s count:\n", response.Constraints.CostBuilding)
	for _, milestone := range response.Milestones {
		fmt.Fprintf(w, "%d machines: %s hand %s %s %s\n",
			milestone.CostCount,
			utils.FormatSeconds(milestone.TotalTime),
			utils.FormatSeconds(milestone.HandcraftingTime),
			costBuildingCounts(response, milestone),
			handcraftingTimes(milestone))
	}
}

// costBuildingCounts renders {product: count} for products built by the cost building
func costBuildingCounts(response *types.SolveProjectResponse, solution *planning.FactorySolution) string {
	parts := make([]string, 0)
	for _, product := range response.Requirements.Products() {
		count := solution.Machines[product]
		if count == 0 {
			continue
		}
		recipe, err := response.Catalog.Recipe(product)
		if err != nil || recipe.Building != response.Constraints.CostBuilding {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d", product, count))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// handcraftingTimes renders {product: time} sorted by product name
func handcraftingTimes(solution *planning.FactorySolution) string {
	products := make([]string, 0, len(solution.HandcraftingTimes))
	for product, t := range solution.HandcraftingTimes {
		if t > 0 {
			products = append(products, product)
		}
	}
	sort.Strings(products)

	parts := make([]string, 0, len(products))
	for _, product := range products {
		parts = append(parts, fmt.Sprintf("%s: %s", product, utils.FormatSeconds(solution.HandcraftingTimes[product])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// writeSolveReport prints the full text report of a solve
func writeSolveReport(w io.Writer, response *types.SolveProjectResponse) {
	fmt.Fprintf(w, "Project %s (%s solver, %d solutions, %d iterations)\n",
		response.Project, response.Solver, len(response.Solutions), response.Iterations)
	if response.RunID != "" {
		fmt.Fprintf(w, "Run %s\n", response.RunID)
	}

	best := response.Best()
	if best == nil {
		fmt.Fprintln(w, "No solution found")
		return
	}

	fmt.Fprintln(w)
	writeSolutionTimes(w, best)
	fmt.Fprintln(w)
	writeMachines(w, response, best)
	fmt.Fprintln(w)
	writeHandcrafting(w, best)
	fmt.Fprintln(w)
	writeMilestones(w, response)
}
