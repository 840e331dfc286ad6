package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

// Given steps

func (pc *planningContext) theConveyorSpeedIsPerMinute(speed float64) error {
	pc.constraints.ConveyorSpeed = speed
	return nil
}

func (pc *planningContext) theTimeBudgetIsSeconds(seconds int) error {
	pc.constraints.MaxTime = seconds
	return nil
}

func (pc *planningContext) atMostBuildingsAreAllowed(limit int, product string) error {
	pc.constraints.MaxBuildings[product] = limit
	return nil
}

// When steps

func (pc *planningContext) iSolveWithTheSolver(project, kind string) error {
	if err := pc.buildCatalog(); err != nil {
		return err
	}

	solver, err := services.NewSolver(kind)
	if err != nil {
		pc.err = err
		return nil
	}

	problem, err := planning.NewProblem(pc.catalog, project, pc.constraints)
	if err != nil {
		pc.err = err
		return nil
	}

	pc.result, pc.err = solver.Solve(context.Background(), problem)
	return nil
}

// Then steps

func (pc *planningContext) theSolveShouldSucceed() error {
	if pc.err != nil {
		return fmt.Errorf("expected solve to succeed, but got error: %v", pc.err)
	}
	if pc.result == nil || pc.result.Best() == nil {
		return fmt.Errorf("expected at least one solution")
	}
	return nil
}

func (pc *planningContext) theSolveShouldFailBecauseTheTimeBudgetIsMissing() error {
	if !errors.Is(pc.err, planning.ErrMissingTimeBudget) {
		return fmt.Errorf("expected missing time budget error, got %v", pc.err)
	}
	return nil
}

func (pc *planningContext) theSolveShouldFailWithAnUnknownSolverError() error {
	var unknown *planning.ErrUnknownSolver
	if !errors.As(pc.err, &unknown) {
		return fmt.Errorf("expected unknown solver error, got %v", pc.err)
	}
	return nil
}

func (pc *planningContext) theSolverShouldHaveRunIterations(expected int) error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	if pc.result.Stats.Iterations != expected {
		return fmt.Errorf("expected %d iterations, got %d", expected, pc.result.Stats.Iterations)
	}
	return nil
}

func (pc *planningContext) theSolverShouldHaveProducedSolutions(expected int) error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	if len(pc.result.Solutions) != expected {
		return fmt.Errorf("expected %d solutions, got %d", expected, len(pc.result.Solutions))
	}
	return nil
}

func (pc *planningContext) theBestSolutionShouldAssignBuildingsTo(expected int, product string) error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	if actual := pc.result.Best().Machines[product]; actual != expected {
		return fmt.Errorf("expected %d buildings for %s, got %d", expected, product, actual)
	}
	return nil
}

func (pc *planningContext) theBestSolutionTotalTimeShouldBeSeconds(expected int) error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	if actual := pc.result.Best().TotalTime; actual != expected {
		return fmt.Errorf("expected total time %ds, got %ds", expected, actual)
	}
	return nil
}

func (pc *planningContext) theBestSolutionHandcraftingTimeShouldBeSeconds(expected int) error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	if actual := pc.result.Best().HandcraftingTime; actual != expected {
		return fmt.Errorf("expected handcrafting time %ds, got %ds", expected, actual)
	}
	return nil
}

func (pc *planningContext) theBestSolutionShouldHandcraft(product string) error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	if !pc.result.Best().IsHandcrafted(product) {
		return fmt.Errorf("expected %s to be handcrafted, order was %v", product, pc.result.Best().HandcraftingOrder)
	}
	return nil
}

func (pc *planningContext) theTotalTimeShouldNeverIncreaseBetweenSolutions() error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	for i := 1; i < len(pc.result.Solutions); i++ {
		prev, curr := pc.result.Solutions[i-1], pc.result.Solutions[i]
		if curr.TotalTime > prev.TotalTime {
			return fmt.Errorf("solution %d total time %ds exceeds previous %ds", i, curr.TotalTime, prev.TotalTime)
		}
	}
	return nil
}

func (pc *planningContext) everySolutionShouldKeepHandcraftingWithinTheTimeBudget() error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	for i, solution := range pc.result.Solutions {
		if solution.HandcraftingTime > pc.constraints.MaxTime {
			return fmt.Errorf("solution %d handcrafting time %ds exceeds budget %ds", i, solution.HandcraftingTime, pc.constraints.MaxTime)
		}
	}
	return nil
}

func (pc *planningContext) eachSolutionShouldUseOneBuildingFewerThanThePreviousOne() error {
	if err := pc.theSolveShouldSucceed(); err != nil {
		return err
	}
	for i := 1; i < len(pc.result.Solutions); i++ {
		prev, curr := pc.result.Solutions[i-1], pc.result.Solutions[i]
		if curr.MachineCount != prev.MachineCount-1 {
			return fmt.Errorf("solution %d has %d buildings, previous had %d", i, curr.MachineCount, prev.MachineCount)
		}
	}
	return nil
}
