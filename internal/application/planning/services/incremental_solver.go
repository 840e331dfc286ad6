package services

import (
	"context"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// incrementalCandidate is the subject compared by the incremental stages
type incrementalCandidate struct {
	product     string
	bestProduct string
	candidate   *planning.FactorySolution
	best        *planning.FactorySolution

	blockers     []string
	bestBlockers []string

	handcraftingSaved     int
	bestHandcraftingSaved int
	automationSaved       int
	bestAutomationSaved   int
}

// incrementalStages ranks candidates that each add one building.
// Order matters: the first stage that is not a tie decides.
var incrementalStages = []planning.Stage[*incrementalCandidate]{
	{
		Name: "shorter total time",
		Compare: func(c *incrementalCandidate) planning.Preference {
			return planning.Fewer(c.candidate.TotalTime, c.best.TotalTime)
		},
	},
	{
		Name: "resolves a blocker",
		Compare: func(c *incrementalCandidate) planning.Preference {
			if c.best.IsBlocker(c.product) && !c.best.IsBlocker(c.bestProduct) {
				return planning.PreferCandidate
			}
			if len(c.blockers) != len(c.bestBlockers) {
				return planning.PreferIncumbent
			}
			return planning.Tie
		},
	},
	{
		Name: "shorter handcrafting time",
		Compare: func(c *incrementalCandidate) planning.Preference {
			return planning.Fewer(c.candidate.HandcraftingTime, c.best.HandcraftingTime)
		},
	},
	{
		Name: "more handcrafting time saved",
		Compare: func(c *incrementalCandidate) planning.Preference {
			return planning.More(c.handcraftingSaved, c.bestHandcraftingSaved)
		},
	},
	{
		Name: "more automation time saved",
		Compare: func(c *incrementalCandidate) planning.Preference {
			return planning.More(c.automationSaved, c.bestAutomationSaved)
		},
	},
	{
		Name: "fewer cost buildings",
		Compare: func(c *incrementalCandidate) planning.Preference {
			return planning.Fewer(c.candidate.CostCount, c.best.CostCount)
		},
	},
}

// IncrementalSolver starts from an all-manual baseline and adds one building
// per iteration to whichever product improves the solution most, letting the
// operator absorb bottlenecks between increments.
type IncrementalSolver struct {
	optimizer *HandcraftOptimizer
}

// NewIncrementalSolver creates a new incremental solver
func NewIncrementalSolver(optimizer *HandcraftOptimizer) *IncrementalSolver {
	return &IncrementalSolver{optimizer: optimizer}
}

// Name returns the solver kind
func (s *IncrementalSolver) Name() string {
	return SolverIncremental
}

// Solve runs the build-up search until no candidate improves the current
// solution, the total time drops to the minimum, or the cost building cap is reached.
func (s *IncrementalSolver) Solve(ctx context.Context, problem *planning.Problem) (*SolveResult, error) {
	logger := common.LoggerFromContext(ctx)
	result := &SolveResult{}

	initial, err := s.initialSolution(ctx, problem)
	if err != nil {
		return nil, err
	}
	logSolutionTimes(logger, "Initial solution", initial)
	result.Solutions = append(result.Solutions, initial)

	for {
		last := planning.Best(result.Solutions)
		if last.TotalTime <= planning.MinimumTotalTime || last.CostCount >= planning.MaxCostBuildings {
			break
		}

		result.Stats.Iterations++
		logger.Log(common.LevelInfo, "Starting iteration", map[string]interface{}{
			"iteration":  result.Stats.Iterations,
			"total_time": utils.FormatSeconds(last.TotalTime),
			"cost_count": last.CostCount,
		})

		best, bestProduct, err := s.runIteration(ctx, problem, last, &result.Stats)
		if err != nil {
			return nil, err
		}

		if bestProduct == "" {
			logger.Log(common.LevelInfo, "No candidate improves the solution", nil)
			break
		}

		if err := logAddition(logger, problem, bestProduct, best); err != nil {
			return nil, err
		}
		result.Solutions = append(result.Solutions, best)
	}

	return result, nil
}

// initialSolution handcrafts everything that can be handcrafted and gives
// every other product a single building.
func (s *IncrementalSolver) initialSolution(ctx context.Context, problem *planning.Problem) (*planning.FactorySolution, error) {
	solution := planning.NewFactorySolution("Start")
	for _, product := range problem.Products() {
		recipe, err := problem.Recipe(product)
		if err != nil {
			return nil, err
		}
		if recipe.CanHandcraft() {
			solution.Machines[product] = 0
		} else {
			solution.Machines[product] = 1
		}
	}

	if err := solution.EvaluateTimes(problem); err != nil {
		return nil, err
	}
	return s.optimizer.Optimize(ctx, problem, solution)
}

// runIteration tries one extra building for every product and returns the
// winning candidate. bestProduct is empty when nothing beats last.
func (s *IncrementalSolver) runIteration(
	ctx context.Context,
	problem *planning.Problem,
	last *planning.FactorySolution,
	stats *SolveStats,
) (*planning.FactorySolution, string, error) {
	logger := common.LoggerFromContext(ctx)

	best := last.Clone()
	bestProduct := ""
	bestHandcraftingSaved := 0
	bestAutomationSaved := 0

	for _, product := range problem.Products() {
		if last.Machines[product] >= problem.Constraints.MaxBuildingsFor(product) {
			continue
		}

		candidate := last.Clone()
		candidate.Name = product
		candidate.Machines[product]++
		if err := candidate.EvaluateTimes(problem); err != nil {
			return nil, "", err
		}
		candidate, err := s.optimizer.Optimize(ctx, problem, candidate)
		if err != nil {
			return nil, "", err
		}
		stats.CandidatesEvaluated++

		subject := &incrementalCandidate{
			product:               product,
			bestProduct:           bestProduct,
			candidate:             candidate,
			best:                  best,
			blockers:              candidate.Blockers(problem),
			bestBlockers:          best.Blockers(problem),
			handcraftingSaved:     best.HandcraftingTimes[product] - candidate.HandcraftingTimes[product],
			bestHandcraftingSaved: bestHandcraftingSaved,
			automationSaved:       best.AutomationTimes[product] - candidate.AutomationTimes[product],
			bestAutomationSaved:   bestAutomationSaved,
		}

		logger.Log(common.LevelDebug, "Candidate solution", map[string]interface{}{
			"product":           product,
			"machines":          candidate.Machines[product],
			"total_time":        utils.FormatSeconds(candidate.TotalTime),
			"automation_time":   utils.FormatSeconds(candidate.AutomationTime),
			"handcrafting_time": utils.FormatSeconds(candidate.HandcraftingTime),
			"automation_before": utils.FormatSeconds(best.AutomationTimes[product]),
			"automation_after":  utils.FormatSeconds(candidate.AutomationTimes[product]),
			"manual_saved":      utils.FormatSeconds(subject.handcraftingSaved),
			"blockers":          subject.blockers,
			"handcrafting":      candidate.HandcraftingOrder,
		})

		preference, reason := planning.Decide(incrementalStages, subject)
		switch preference {
		case planning.PreferCandidate:
			logger.Log(common.LevelDebug, "Candidate is better than previous best", map[string]interface{}{
				"product": product,
				"reason":  reason,
			})
			bestHandcraftingSaved = subject.handcraftingSaved
			bestAutomationSaved = subject.automationSaved
			best = candidate
			bestProduct = product
		case planning.Tie:
			logger.Log(common.LevelDebug, "Candidate is a tie", map[string]interface{}{
				"product": product,
			})
		default:
			stats.CandidatesRejected++
		}
	}

	return best, bestProduct, nil
}

// logAddition reports the building an iteration added for product
func logAddition(logger common.Logger, problem *planning.Problem, product string, solution *planning.FactorySolution) error {
	recipe, err := problem.Recipe(product)
	if err != nil {
		return err
	}
	logger.Log(common.LevelInfo, "Adding building", map[string]interface{}{
		"product":    product,
		"building":   recipe.Building,
		"machines":   solution.Machines[product],
		"total_time": utils.FormatSeconds(solution.TotalTime),
	})
	return nil
}

func logSolutionTimes(logger common.Logger, message string, solution *planning.FactorySolution) {
	logger.Log(common.LevelInfo, message, map[string]interface{}{
		"total_time":        utils.FormatSeconds(solution.TotalTime),
		"automation_time":   utils.FormatSeconds(solution.AutomationTime),
		"handcrafting_time": utils.FormatSeconds(solution.HandcraftingTime),
		"machines":          solution.MachineCount,
		"cost_count":        solution.CostCount,
	})
}
