package config

import "time"

// DatabaseConfig holds the catalog and solve history store configuration
type DatabaseConfig struct {
	// Connection type: "sqlite" (default) or "postgres"
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// Full PostgreSQL connection URL, takes precedence over the individual fields
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	// SQLite file path or ":memory:"
	Path string `mapstructure:"path"`

	// Log every SQL statement
	Debug bool `mapstructure:"debug"`

	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig holds connection pool configuration (PostgreSQL only)
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
