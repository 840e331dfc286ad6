package config

// CatalogConfig holds the location of the game data
type CatalogConfig struct {
	// Path to a JSON or YAML game data file; empty loads the catalog from the database
	Path string `mapstructure:"path"`
}
