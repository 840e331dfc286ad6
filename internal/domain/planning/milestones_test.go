package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

func solutionWith(name string, costCount, totalTime int) *planning.FactorySolution {
	s := planning.NewFactorySolution(name)
	s.CostCount = costCount
	s.TotalTime = totalTime
	return s
}

func TestSelectMilestones(t *testing.T) {
	// Arrange
	start := solutionWith("Start", 0, 600)
	faster := solutionWith("A", 1, 400)
	sameCost := solutionWith("B", 1, 300)
	slower := solutionWith("C", 2, 300)
	fastest := solutionWith("D", 3, 200)

	// Act
	milestones := planning.SelectMilestones([]*planning.FactorySolution{start, faster, sameCost, slower, fastest})

	// Assert
	assert.Equal(t, []*planning.FactorySolution{start, faster, fastest}, milestones)
}

func TestSelectMilestones_Empty(t *testing.T) {
	assert.Empty(t, planning.SelectMilestones(nil))
	assert.Nil(t, planning.Best(nil))
}

func TestBest(t *testing.T) {
	first := solutionWith("Start", 0, 100)
	last := solutionWith("A", 1, 60)

	assert.Same(t, last, planning.Best([]*planning.FactorySolution{first, last}))
}
