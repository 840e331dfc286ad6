package services

import (
	"context"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// downshiftCandidate is the subject compared by the downshift stages
type downshiftCandidate struct {
	candidate      *planning.FactorySolution
	best           *planning.FactorySolution
	efficiency     float64
	bestEfficiency float64
}

var downshiftStages = []planning.Stage[*downshiftCandidate]{
	{
		Name: "fewer buildings",
		Compare: func(c *downshiftCandidate) planning.Preference {
			return planning.Fewer(c.candidate.MachineCount, c.best.MachineCount)
		},
	},
	{
		Name: "shorter handcrafting time",
		Compare: func(c *downshiftCandidate) planning.Preference {
			return planning.Fewer(c.candidate.HandcraftingTime, c.best.HandcraftingTime)
		},
	},
	{
		Name: "better handcrafting efficiency",
		Compare: func(c *downshiftCandidate) planning.Preference {
			return planning.More(c.efficiency, c.bestEfficiency)
		},
	},
}

// DownshiftSolver starts with just enough buildings to meet the time budget
// and removes one building per iteration, moving the shortfall onto the
// operator while the manual queue still fits in the budget.
type DownshiftSolver struct{}

// NewDownshiftSolver creates a new downshift solver
func NewDownshiftSolver() *DownshiftSolver {
	return &DownshiftSolver{}
}

// Name returns the solver kind
func (s *DownshiftSolver) Name() string {
	return SolverDownshift
}

// Solve runs the capacity down-shift search until no single building removal
// improves the current solution.
func (s *DownshiftSolver) Solve(ctx context.Context, problem *planning.Problem) (*SolveResult, error) {
	if !problem.Constraints.HasTimeBudget() {
		return nil, planning.ErrMissingTimeBudget
	}

	logger := common.LoggerFromContext(ctx)
	result := &SolveResult{}

	initial, err := s.initialSolution(problem)
	if err != nil {
		return nil, err
	}
	logSolutionTimes(logger, "Initial solution", initial)
	result.Solutions = append(result.Solutions, initial)

	for {
		last := planning.Best(result.Solutions)
		result.Stats.Iterations++

		logger.Log(common.LevelInfo, "Starting iteration", map[string]interface{}{
			"iteration":  result.Stats.Iterations,
			"machines":   last.MachineCount,
			"cost_count": last.CostCount,
			"total_time": utils.FormatSeconds(last.TotalTime),
		})

		best, err := s.runIteration(ctx, problem, last, &result.Stats)
		if err != nil {
			return nil, err
		}

		if best == last {
			logger.Log(common.LevelInfo, "No further improvement to solution", nil)
			break
		}

		logger.Log(common.LevelInfo, "Removing building", map[string]interface{}{
			"product":       best.Name,
			"machines":      best.Machines[best.Name],
			"manual_before": utils.FormatSeconds(last.HandcraftingTime),
			"manual_after":  utils.FormatSeconds(best.HandcraftingTime),
		})
		result.Solutions = append(result.Solutions, best)
	}

	return result, nil
}

// initialSolution assigns every product the fewest buildings that finish its
// demand within the budget, with no manual work.
func (s *DownshiftSolver) initialSolution(problem *planning.Problem) (*planning.FactorySolution, error) {
	solution := planning.NewFactorySolution("Start")
	budget := problem.Constraints.MaxTime

	for _, product := range problem.Products() {
		recipe, err := problem.Recipe(product)
		if err != nil {
			return nil, err
		}
		quantity := problem.Requirements.Quantity(product)
		rate := problem.Constraints.CappedRate(recipe)

		machines := planning.MachinesForBudget(quantity, rate, budget)
		solution.Machines[product] = machines
		if t, ok := planning.AutomationTime(machines, rate, quantity); ok {
			solution.AutomationTimes[product] = t
		}
		solution.AutomationProduction[product] = quantity
		solution.HandcraftingTimes[product] = 0
		solution.HandcraftingProduction[product] = 0
	}

	if err := solution.ComputeDerivedValues(problem); err != nil {
		return nil, err
	}
	return solution, nil
}

// runIteration tries removing one building from every eligible product and
// returns the winner, or last itself when no removal is acceptable.
func (s *DownshiftSolver) runIteration(
	ctx context.Context,
	problem *planning.Problem,
	last *planning.FactorySolution,
	stats *SolveStats,
) (*planning.FactorySolution, error) {
	logger := common.LoggerFromContext(ctx)
	budget := problem.Constraints.MaxTime
	best := last

	for _, product := range problem.Products() {
		recipe, err := problem.Recipe(product)
		if err != nil {
			return nil, err
		}
		if last.Machines[product] == 0 || !recipe.CanHandcraft() {
			continue
		}

		candidate := last.Clone()
		if err := candidate.RemoveMachine(problem, product); err != nil {
			return nil, err
		}
		stats.CandidatesEvaluated++

		logger.Log(common.LevelDebug, "Evaluating building removal", map[string]interface{}{
			"product":           product,
			"machines":          candidate.Machines[product],
			"manual_quantity":   candidate.HandcraftingProduction[product],
			"manual_time":       utils.FormatSeconds(candidate.HandcraftingTimes[product]),
			"handcrafting_time": utils.FormatSeconds(candidate.HandcraftingTime),
		})

		if candidate.HandcraftingTime > budget {
			stats.CandidatesRejected++
			logger.Log(common.LevelDebug, "Manual time exceeds budget", map[string]interface{}{
				"product":           product,
				"handcrafting_time": utils.FormatSeconds(candidate.HandcraftingTime),
				"budget":            utils.FormatSeconds(budget),
			})
			continue
		}

		subject := &downshiftCandidate{
			candidate:      candidate,
			best:           best,
			efficiency:     recipe.HandcraftingEfficiency(),
			bestEfficiency: s.efficiencyOf(problem, best.Name),
		}

		preference, reason := planning.Decide(downshiftStages, subject)
		switch preference {
		case planning.PreferCandidate:
			logger.Log(common.LevelDebug, "Candidate is better than prior best", map[string]interface{}{
				"product":    product,
				"prior_best": best.Name,
				"reason":     reason,
			})
			best = candidate
		case planning.Tie:
			logger.Log(common.LevelDebug, "Candidate is a tie", map[string]interface{}{
				"product":    product,
				"prior_best": best.Name,
			})
		default:
			stats.CandidatesRejected++
		}
	}

	return best, nil
}

// efficiencyOf returns the handcrafting efficiency of the product a solution
// was named after, or zero for the initial solution.
func (s *DownshiftSolver) efficiencyOf(problem *planning.Problem, product string) float64 {
	recipe, err := problem.Recipe(product)
	if err != nil {
		return 0
	}
	return recipe.HandcraftingEfficiency()
}
