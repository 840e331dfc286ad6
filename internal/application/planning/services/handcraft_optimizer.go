package services

import (
	"context"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// efficiencyTolerance groups products whose handcrafting efficiency is this close
const efficiencyTolerance = 0.01

// HandcraftOptimizer spends idle operator time on the products where manual
// work gives the most leverage over automation.
type HandcraftOptimizer struct{}

// NewHandcraftOptimizer creates a new handcraft optimizer
func NewHandcraftOptimizer() *HandcraftOptimizer {
	return &HandcraftOptimizer{}
}

// Optimize repeatedly assigns manual work to the most efficient eligible
// product while that shortens the total time. Products already handcrafted
// are never reconsidered. Solutions whose manual queue is already longer than
// the automation are returned unchanged.
func (o *HandcraftOptimizer) Optimize(ctx context.Context, problem *planning.Problem, solution *planning.FactorySolution) (*planning.FactorySolution, error) {
	logger := common.LoggerFromContext(ctx)

	logger.Log(common.LevelDebug, "Optimizing handcrafting", map[string]interface{}{
		"handcrafting_time": utils.FormatSeconds(solution.HandcraftingTime),
		"automation_time":   utils.FormatSeconds(solution.AutomationTime),
		"crafting":          solution.HandcraftingOrder,
	})

	if solution.HandcraftingTime > solution.AutomationTime {
		return solution, nil
	}

	current := solution
	for {
		candidates, err := o.mostEfficientProducts(problem, current)
		if err != nil {
			return nil, err
		}

		best := current
		bestProduct := ""
		for _, product := range candidates {
			candidate := current.Clone()
			applied, err := candidate.AllocateRemainingHandcrafting(problem, product)
			if err != nil {
				return nil, err
			}
			if applied && candidate.TotalTime < best.TotalTime {
				best = candidate
				bestProduct = product
			}
		}

		if best == current {
			return current, nil
		}

		logger.Log(common.LevelDebug, "Handcrafting product", map[string]interface{}{
			"product":           bestProduct,
			"duration":          utils.FormatSeconds(best.HandcraftingTimes[bestProduct]),
			"total_time":        utils.FormatSeconds(best.TotalTime),
			"previous_total":    utils.FormatSeconds(current.TotalTime),
			"handcrafting_time": utils.FormatSeconds(best.HandcraftingTime),
		})
		current = best
	}
}

// mostEfficientProducts returns the eligible products whose handcrafting
// efficiency lies within tolerance of the best one seen, in demand order.
func (o *HandcraftOptimizer) mostEfficientProducts(problem *planning.Problem, solution *planning.FactorySolution) ([]string, error) {
	candidates := make([]string, 0)
	bestRatio := 0.0

	for _, product := range problem.Products() {
		recipe, err := problem.Recipe(product)
		if err != nil {
			return nil, err
		}
		if !recipe.CanHandcraft() || solution.IsHandcrafted(product) {
			continue
		}

		ratio := recipe.HandcraftingEfficiency()
		if utils.NearlyEqual(ratio, bestRatio, efficiencyTolerance) {
			candidates = append(candidates, product)
		} else if ratio > bestRatio {
			candidates = []string{product}
			bestRatio = ratio
		}
	}

	return candidates, nil
}
