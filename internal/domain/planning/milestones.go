package planning

// SelectMilestones keeps the first solution and every later solution that adds
// cost buildings and strictly shortens the total time relative to its predecessor.
func SelectMilestones(solutions []*FactorySolution) []*FactorySolution {
	milestones := make([]*FactorySolution, 0, len(solutions))
	for i, solution := range solutions {
		if i == 0 {
			milestones = append(milestones, solution)
			continue
		}
		prev := solutions[i-1]
		if solution.CostCount > prev.CostCount && solution.TotalTime < prev.TotalTime {
			milestones = append(milestones, solution)
		}
	}
	return milestones
}

// Best returns the last solution of a sequence, or nil for an empty one
func Best(solutions []*FactorySolution) *FactorySolution {
	if len(solutions) == 0 {
		return nil
	}
	return solutions[len(solutions)-1]
}
