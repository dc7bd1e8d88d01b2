package types

import (
	"fmt"
	"time"
)

// Config holds runtime configuration combining command-line flags and defaults
type Config struct {
	// PostgreSQL connection (run command only)
	ConnectionString string

	// Execution
	Timeout time.Duration // Per-statement timeout

	// Parsing
	Strict bool // Reject trailing statement text without a final ';'

	// Output
	Format     string // Listing format (text or json)
	OutputFile string // Output path ("-" for stdout)
	Verbose    bool   // Enable debug logging
}

// ConfigError reports an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values no command can work with.
// The format value is validated by the cli package, which knows the
// formats the report package implements.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Message: "must not be negative"}
	}
	if c.OutputFile == "" {
		return &ConfigError{Field: "output", Message: "must not be empty (use - for stdout)"}
	}
	return nil
}
