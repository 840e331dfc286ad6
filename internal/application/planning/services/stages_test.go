package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

func newIncrementalSubject() *incrementalCandidate {
	candidate := planning.NewFactorySolution("Screw")
	candidate.TotalTime = 100
	candidate.HandcraftingTime = 40
	candidate.CostCount = 4

	best := planning.NewFactorySolution("Start")
	best.TotalTime = 100
	best.HandcraftingTime = 40
	best.CostCount = 4

	return &incrementalCandidate{
		product:               "Screw",
		candidate:             candidate,
		best:                  best,
		handcraftingSaved:     10,
		bestHandcraftingSaved: 10,
		automationSaved:       10,
		bestAutomationSaved:   10,
	}
}

func TestIncrementalStages(t *testing.T) {
	tests := []struct {
		name       string
		arrange    func(c *incrementalCandidate)
		preference planning.Preference
		reason     string
	}{
		{
			name:       "equal candidates tie",
			arrange:    func(c *incrementalCandidate) {},
			preference: planning.Tie,
			reason:     "",
		},
		{
			name:       "shorter total time wins",
			arrange:    func(c *incrementalCandidate) { c.candidate.TotalTime = 90 },
			preference: planning.PreferCandidate,
			reason:     "shorter total time",
		},
		{
			name:       "longer total time loses",
			arrange:    func(c *incrementalCandidate) { c.candidate.TotalTime = 110 },
			preference: planning.PreferIncumbent,
			reason:     "shorter total time",
		},
		{
			name: "building a bottleneck beats a non-bottleneck incumbent",
			arrange: func(c *incrementalCandidate) {
				c.best.AutomationTimes["Screw"] = 100
				c.bestProduct = "Iron Plate"
				c.best.AutomationTimes["Iron Plate"] = 60
				c.blockers = []string{"Screw"}
				c.bestBlockers = []string{"Screw"}
			},
			preference: planning.PreferCandidate,
			reason:     "resolves a blocker",
		},
		{
			name: "blocker count change keeps the incumbent",
			arrange: func(c *incrementalCandidate) {
				c.best.AutomationTimes["Screw"] = 100
				c.best.AutomationTimes["Iron Plate"] = 100
				c.bestProduct = "Iron Plate"
				c.blockers = []string{"Iron Plate"}
				c.bestBlockers = []string{"Screw", "Iron Plate"}
			},
			preference: planning.PreferIncumbent,
			reason:     "resolves a blocker",
		},
		{
			name: "same blocker count falls through",
			arrange: func(c *incrementalCandidate) {
				c.blockers = []string{"Iron Plate"}
				c.bestBlockers = []string{"Iron Plate"}
				c.candidate.HandcraftingTime = 30
			},
			preference: planning.PreferCandidate,
			reason:     "shorter handcrafting time",
		},
		{
			name:       "longer handcrafting time loses",
			arrange:    func(c *incrementalCandidate) { c.candidate.HandcraftingTime = 50 },
			preference: planning.PreferIncumbent,
			reason:     "shorter handcrafting time",
		},
		{
			name:       "more handcrafting saved wins",
			arrange:    func(c *incrementalCandidate) { c.handcraftingSaved = 20 },
			preference: planning.PreferCandidate,
			reason:     "more handcrafting time saved",
		},
		{
			name:       "less handcrafting saved loses",
			arrange:    func(c *incrementalCandidate) { c.handcraftingSaved = 5 },
			preference: planning.PreferIncumbent,
			reason:     "more handcrafting time saved",
		},
		{
			name:       "more automation saved wins",
			arrange:    func(c *incrementalCandidate) { c.automationSaved = 20 },
			preference: planning.PreferCandidate,
			reason:     "more automation time saved",
		},
		{
			name:       "less automation saved loses",
			arrange:    func(c *incrementalCandidate) { c.automationSaved = 0 },
			preference: planning.PreferIncumbent,
			reason:     "more automation time saved",
		},
		{
			name:       "fewer cost buildings wins",
			arrange:    func(c *incrementalCandidate) { c.candidate.CostCount = 3 },
			preference: planning.PreferCandidate,
			reason:     "fewer cost buildings",
		},
		{
			name:       "more cost buildings loses",
			arrange:    func(c *incrementalCandidate) { c.candidate.CostCount = 5 },
			preference: planning.PreferIncumbent,
			reason:     "fewer cost buildings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			subject := newIncrementalSubject()
			tt.arrange(subject)

			// Act
			preference, reason := planning.Decide(incrementalStages, subject)

			// Assert
			assert.Equal(t, tt.preference, preference)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestIncrementalStages_EarlierStageDecides(t *testing.T) {
	// Arrange: worse on every later stage, but faster overall
	subject := newIncrementalSubject()
	subject.candidate.TotalTime = 90
	subject.candidate.HandcraftingTime = 80
	subject.handcraftingSaved = 0
	subject.automationSaved = 0
	subject.candidate.CostCount = 9

	// Act
	preference, reason := planning.Decide(incrementalStages, subject)

	// Assert
	assert.Equal(t, planning.PreferCandidate, preference)
	assert.Equal(t, "shorter total time", reason)
}

func newDownshiftSubject() *downshiftCandidate {
	candidate := planning.NewFactorySolution("Screw")
	candidate.MachineCount = 5
	candidate.HandcraftingTime = 40

	best := planning.NewFactorySolution("Iron Plate")
	best.MachineCount = 5
	best.HandcraftingTime = 40

	return &downshiftCandidate{
		candidate:      candidate,
		best:           best,
		efficiency:     0.5,
		bestEfficiency: 0.5,
	}
}

func TestDownshiftStages(t *testing.T) {
	tests := []struct {
		name       string
		arrange    func(c *downshiftCandidate)
		preference planning.Preference
		reason     string
	}{
		{
			name:       "equal candidates tie",
			arrange:    func(c *downshiftCandidate) {},
			preference: planning.Tie,
			reason:     "",
		},
		{
			name:       "fewer buildings wins",
			arrange:    func(c *downshiftCandidate) { c.candidate.MachineCount = 4 },
			preference: planning.PreferCandidate,
			reason:     "fewer buildings",
		},
		{
			name:       "more buildings loses",
			arrange:    func(c *downshiftCandidate) { c.candidate.MachineCount = 6 },
			preference: planning.PreferIncumbent,
			reason:     "fewer buildings",
		},
		{
			name:       "shorter handcrafting time wins",
			arrange:    func(c *downshiftCandidate) { c.candidate.HandcraftingTime = 30 },
			preference: planning.PreferCandidate,
			reason:     "shorter handcrafting time",
		},
		{
			name:       "longer handcrafting time loses",
			arrange:    func(c *downshiftCandidate) { c.candidate.HandcraftingTime = 50 },
			preference: planning.PreferIncumbent,
			reason:     "shorter handcrafting time",
		},
		{
			name:       "better efficiency wins",
			arrange:    func(c *downshiftCandidate) { c.efficiency = 0.75 },
			preference: planning.PreferCandidate,
			reason:     "better handcrafting efficiency",
		},
		{
			name:       "worse efficiency loses",
			arrange:    func(c *downshiftCandidate) { c.efficiency = 0.25 },
			preference: planning.PreferIncumbent,
			reason:     "better handcrafting efficiency",
		},
		{
			name: "building count outranks handcrafting",
			arrange: func(c *downshiftCandidate) {
				c.candidate.MachineCount = 4
				c.candidate.HandcraftingTime = 90
				c.efficiency = 0
			},
			preference: planning.PreferCandidate,
			reason:     "fewer buildings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			subject := newDownshiftSubject()
			tt.arrange(subject)

			// Act
			preference, reason := planning.Decide(downshiftStages, subject)

			// Assert
			assert.Equal(t, tt.preference, preference)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

type recordingLogger struct {
	messages []string
	metadata []map[string]interface{}
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.messages = append(l.messages, message)
	l.metadata = append(l.metadata, metadata)
}

func newStageTestProblem(t *testing.T) *planning.Problem {
	t.Helper()
	catalog, err := production.NewCatalog(
		[]production.Recipe{{Name: "Widget", Rate: 30, Building: "Constructor"}},
		[]production.Project{{Name: "Test", Requirements: []production.Requirement{{Name: "Widget", Quantity: 60}}}},
		[]production.Building{{Name: "Constructor", Power: 4}},
	)
	require.NoError(t, err)
	problem, err := planning.NewProblem(catalog, "Test", planning.NewFactoryConstraints(60, 0))
	require.NoError(t, err)
	return problem
}

func TestLogAddition(t *testing.T) {
	// Arrange
	problem := newStageTestProblem(t)
	solution := planning.NewFactorySolution("Widget")
	solution.Machines["Widget"] = 2
	logger := &recordingLogger{}

	// Act
	err := logAddition(logger, problem, "Widget", solution)

	// Assert
	require.NoError(t, err)
	require.Len(t, logger.messages, 1)
	assert.Equal(t, "Adding building", logger.messages[0])
	assert.Equal(t, "Constructor", logger.metadata[0]["building"])
	assert.Equal(t, 2, logger.metadata[0]["machines"])
}

func TestLogAddition_UnknownProduct(t *testing.T) {
	// Arrange
	problem := newStageTestProblem(t)
	logger := &recordingLogger{}

	// Act
	err := logAddition(logger, problem, "Motor", planning.NewFactorySolution("Motor"))

	// Assert
	var unknown *production.ErrUnknownProduct
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Motor", unknown.Product)
	assert.Empty(t, logger.messages)
}
