package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factory-planner/internal/domain/planning"
)

type pair struct {
	a, b int
}

func TestDecide_FirstNonTieStageWins(t *testing.T) {
	stages := []planning.Stage[pair]{
		{Name: "smaller a", Compare: func(p pair) planning.Preference { return planning.Fewer(p.a, 5) }},
		{Name: "larger b", Compare: func(p pair) planning.Preference { return planning.More(p.b, 5) }},
	}

	tests := []struct {
		name       string
		subject    pair
		preference planning.Preference
		reason     string
	}{
		{"first stage prefers candidate", pair{a: 1, b: 0}, planning.PreferCandidate, "smaller a"},
		{"first stage prefers incumbent", pair{a: 9, b: 9}, planning.PreferIncumbent, "smaller a"},
		{"second stage decides a tie", pair{a: 5, b: 9}, planning.PreferCandidate, "larger b"},
		{"all stages tie", pair{a: 5, b: 5}, planning.Tie, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preference, reason := planning.Decide(stages, tt.subject)
			assert.Equal(t, tt.preference, preference)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestPreference_String(t *testing.T) {
	assert.Equal(t, "candidate", planning.PreferCandidate.String())
	assert.Equal(t, "incumbent", planning.PreferIncumbent.String())
	assert.Equal(t, "tie", planning.Tie.String())
}
