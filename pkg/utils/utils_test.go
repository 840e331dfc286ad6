package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs     int
		expected string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1:00"},
		{605, "10:05"},
		{3725, "62:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSeconds(tt.secs))
	}
}

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID("downshift", "Space Elevator")

	assert.Regexp(t, regexp.MustCompile(`^downshift-space-elevator-[0-9a-f]{8}$`), id)
	assert.NotEqual(t, id, GenerateRunID("downshift", "Space Elevator"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "tier-0", slugify("Tier 0"))
	assert.Equal(t, "phase-2-project-assembly", slugify("  Phase 2: Project_Assembly "))
	assert.Equal(t, "project", slugify("!!!"))
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(3.333, 3.337, 0.01))
	assert.False(t, NearlyEqual(3.33, 6.67, 0.01))
	assert.Equal(t, 2.5, Abs(-2.5))
}
