package production

import "context"

// CatalogRepository defines the persistence interface for game data
type CatalogRepository interface {
	// Load reads every recipe, project and building and builds a Catalog
	Load(ctx context.Context) (*Catalog, error)

	// Replace stores the catalog contents, discarding existing records
	Replace(ctx context.Context, catalog *Catalog) error
}

// CatalogSource produces a Catalog from an external representation (file, API)
type CatalogSource interface {
	Load(ctx context.Context) (*Catalog, error)
}
