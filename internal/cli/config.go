package cli

import (
	"fmt"
	"time"

	"github.com/thyringer/smake/internal/report"
	"github.com/thyringer/smake/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	ConnectionString: "",
	Timeout:          30 * time.Second,
	Strict:           false,
	Format:           "text",
	OutputFile:       "-",
	Verbose:          false,
}

// ValidateConfig runs the shared Config checks plus the checks whose valid
// range other packages own, such as the listing formats.
func ValidateConfig(c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !report.ValidFormat(c.Format) {
		return &ConfigError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q (supported: text, json)", c.Format),
		}
	}
	return nil
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, connection string, timeout time.Duration,
	strict bool, format, output string, verbose bool) {

	if connection != "" {
		c.ConnectionString = connection
	}
	if timeout != 0 {
		c.Timeout = timeout
	}
	if format != "" {
		c.Format = format
	}
	if output != "" {
		c.OutputFile = output
	}
	c.Strict = strict
	c.Verbose = verbose
}
