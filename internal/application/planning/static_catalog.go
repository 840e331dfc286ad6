package planning

import (
	"context"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// StaticCatalogSource serves an already loaded catalog
type StaticCatalogSource struct {
	catalog *production.Catalog
}

// NewStaticCatalogSource wraps a catalog as a CatalogSource
func NewStaticCatalogSource(catalog *production.Catalog) *StaticCatalogSource {
	return &StaticCatalogSource{catalog: catalog}
}

// Load returns the wrapped catalog
func (s *StaticCatalogSource) Load(ctx context.Context) (*production.Catalog, error) {
	return s.catalog, nil
}
