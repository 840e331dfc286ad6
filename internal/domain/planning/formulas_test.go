package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

func TestAutomationTime(t *testing.T) {
	// 60 units at 30/min on 2 buildings
	time, ok := planning.AutomationTime(2, 30, 60)
	assert.True(t, ok)
	assert.Equal(t, 60, time)

	// partial seconds round up
	time, ok = planning.AutomationTime(3, 7, 10)
	assert.True(t, ok)
	assert.Equal(t, 29, time)

	_, ok = planning.AutomationTime(0, 30, 60)
	assert.False(t, ok)
}

func TestHandcraftTime(t *testing.T) {
	recipe := &production.Recipe{Name: "Gear", Rate: 10, BuildSteps: 2}
	assert.Equal(t, 9, planning.HandcraftTime(recipe, 10))

	batched := &production.Recipe{Name: "Screw", Produced: 4, Rate: 40, BuildSteps: 1}
	assert.Equal(t, 5, planning.HandcraftTime(batched, 40))
}

func TestAutomatedOutput(t *testing.T) {
	assert.Equal(t, 80.0, planning.AutomatedOutput(60, 4, 20))
	assert.Equal(t, 0.0, planning.AutomatedOutput(60, 0, 20))
	assert.Equal(t, 3.0, planning.AutomatedOutput(10, 1, 20))
}

func TestCombinedLaneTime(t *testing.T) {
	recipe := &production.Recipe{Name: "Plate", Rate: 20, BuildSteps: 2}

	// one building at 20/min plus the operator at 66.67/min
	assert.Equal(t, 70, planning.CombinedLaneTime(recipe, 1, 20, 100))

	// no buildings falls back to the manual rate
	assert.Equal(t, 90, planning.CombinedLaneTime(recipe, 0, 20, 100))
}

func TestHandcraftOutput(t *testing.T) {
	recipe := &production.Recipe{Name: "Plate", Rate: 20, BuildSteps: 2}
	assert.Equal(t, 77.0, planning.HandcraftOutput(recipe, 70))
	assert.Equal(t, 100.0, planning.HandcraftOutput(recipe, 90))
}

func TestMachinesForBudget(t *testing.T) {
	assert.Equal(t, 3, planning.MachinesForBudget(100, 20, 120))
	assert.Equal(t, 5, planning.MachinesForBudget(100, 20, 60))
	assert.Equal(t, 0, planning.MachinesForBudget(0, 20, 60))
}
