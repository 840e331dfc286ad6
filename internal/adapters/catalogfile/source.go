package catalogfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// FileCatalogSource loads the catalog from a JSON or YAML game data file.
// The format is chosen by file extension.
type FileCatalogSource struct {
	path string
}

// NewFileCatalogSource creates a catalog source reading path
func NewFileCatalogSource(path string) *FileCatalogSource {
	return &FileCatalogSource{path: path}
}

// Path returns the game data file location
func (s *FileCatalogSource) Path() string {
	return s.path
}

// Load reads and parses the game data file
func (s *FileCatalogSource) Load(ctx context.Context) (*production.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game data: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported game data format %q (expected .json, .yaml or .yml)", ext)
	}
}
