package config

import "time"

// APIConfig holds HTTP API server configuration
type APIConfig struct {
	// Host to bind the HTTP server
	Host string `mapstructure:"host" validate:"required"`

	// Port for the HTTP server
	Port int `mapstructure:"port" validate:"min=1,max=65535"`

	// Upper bound on the catalog and history I/O of a single request.
	// Solves do not observe it and run until their own caps stop them.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required"`

	// Rate limiting settings for solve endpoints
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
