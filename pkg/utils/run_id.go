package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRunID creates a human-readable identifier for a solve run.
// Format: {solver}-{project-slug}-{8charHexUUID}
//
// Example:
//   - Input: solver="downshift", project="Space Elevator"
//   - Output: "downshift-space-elevator-a3f8e2b1"
func GenerateRunID(solver, project string) string {
	return solver + "-" + slugify(project) + "-" + generateShortUUID()
}

// slugify lowercases a name and joins its words with dashes
func slugify(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if len(fields) == 0 {
		return "project"
	}
	return strings.Join(fields, "-")
}

// generateShortUUID returns the first 8 hex characters of a random UUID
func generateShortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
