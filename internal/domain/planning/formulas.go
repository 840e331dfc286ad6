package planning

import (
	"math"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// AutomationTime is the completion time of n buildings at the capped rate.
// Returns false when no building is assigned.
func AutomationTime(machines int, cappedRate, quantity float64) (int, bool) {
	if machines <= 0 {
		return 0, false
	}
	return int(math.Ceil(60.0 * quantity / (float64(machines) * cappedRate))), true
}

// HandcraftTime is the time for one operator to produce quantity by hand
func HandcraftTime(recipe *production.Recipe, quantity float64) int {
	return int(math.Ceil(quantity / recipe.Yield() * float64(recipe.BuildSteps) * production.HandcraftSecondsPerStep))
}

// AutomatedOutput is the whole number of units n buildings finish within seconds
func AutomatedOutput(seconds, machines int, cappedRate float64) float64 {
	return math.Floor(float64(seconds) * float64(machines) * cappedRate / 60.0)
}

// CombinedLaneTime is the time at which n buildings and one operator working
// concurrently finish toProduce units:  t * (n * r + manual rate) = toProduce.
func CombinedLaneTime(recipe *production.Recipe, machines int, cappedRate, toProduce float64) int {
	return int(math.Ceil(60.0 * toProduce / (float64(machines)*cappedRate + recipe.HandcraftRate())))
}

// HandcraftOutput is the whole number of units one operator finishes within seconds
func HandcraftOutput(recipe *production.Recipe, seconds int) float64 {
	return math.Floor(recipe.Yield() * float64(seconds) / (production.HandcraftSecondsPerStep * float64(recipe.BuildSteps)))
}

// MachinesForBudget is the fewest buildings that produce quantity within maxTime seconds
func MachinesForBudget(quantity, cappedRate float64, maxTime int) int {
	if quantity <= 0 {
		return 0
	}
	return int(math.Ceil(quantity / (cappedRate * float64(maxTime) / 60.0)))
}
