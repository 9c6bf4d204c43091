package config

import "github.com/me/gosched/internal/registry"

// ServerConfig holds configuration for the simulator server.
type ServerConfig struct {
	Addr           string // Listen address (default ":8080")
	LogLevel       string // Log level: debug, info, warn, error
	LogFormat      string // Log format: text, json
	DBPath         string // SQLite workload library path (":memory:" for testing)
	Capacity       int    // Per-session job registry capacity
	DefaultQuantum int    // Round-Robin quantum used when a request omits one
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		Capacity:       registry.DefaultCapacity,
		DefaultQuantum: 2,
	}
}
