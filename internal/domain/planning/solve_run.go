package planning

import "time"

// SolveRun is the recorded outcome of one solve, kept for history listings
type SolveRun struct {
	ID                string
	Project           string
	Solver            string
	ConveyorSpeed     float64
	MaxTime           int
	CostBuilding      string
	SolutionCount     int
	TotalTime         int
	AutomationTime    int
	HandcraftingTime  int
	MachineCount      int
	CostCount         int
	Machines          map[string]int
	HandcraftingTimes map[string]int
	Duration          time.Duration
	CreatedAt         time.Time
}

// NewSolveRun summarizes the best solution of a sequence
func NewSolveRun(id, project, solver string, constraints FactoryConstraints, solutions []*FactorySolution, duration time.Duration, createdAt time.Time) *SolveRun {
	run := &SolveRun{
		ID:                id,
		Project:           project,
		Solver:            solver,
		ConveyorSpeed:     constraints.ConveyorSpeed,
		MaxTime:           constraints.MaxTime,
		CostBuilding:      constraints.CostBuilding,
		SolutionCount:     len(solutions),
		Machines:          make(map[string]int),
		HandcraftingTimes: make(map[string]int),
		Duration:          duration,
		CreatedAt:         createdAt,
	}

	best := Best(solutions)
	if best == nil {
		return run
	}

	run.TotalTime = best.TotalTime
	run.AutomationTime = best.AutomationTime
	run.HandcraftingTime = best.HandcraftingTime
	run.MachineCount = best.MachineCount
	run.CostCount = best.CostCount
	for k, v := range best.Machines {
		run.Machines[k] = v
	}
	for k, v := range best.HandcraftingTimes {
		if v > 0 {
			run.HandcraftingTimes[k] = v
		}
	}
	return run
}
