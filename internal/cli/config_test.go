package cli

import (
	"errors"
	"testing"
	"time"
)

func TestApplyFlagsToConfig(t *testing.T) {
	config := DefaultConfig

	ApplyFlagsToConfig(&config, "host=localhost", 5*time.Second, true, "json", "out.json", true)

	if config.ConnectionString != "host=localhost" {
		t.Errorf("ConnectionString = %q", config.ConnectionString)
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", config.Timeout)
	}
	if !config.Strict || !config.Verbose {
		t.Errorf("Strict/Verbose = %v/%v, want true/true", config.Strict, config.Verbose)
	}
	if config.Format != "json" || config.OutputFile != "out.json" {
		t.Errorf("Format/OutputFile = %q/%q", config.Format, config.OutputFile)
	}
}

func TestApplyFlagsToConfig_ZeroValuesKeepDefaults(t *testing.T) {
	config := DefaultConfig

	ApplyFlagsToConfig(&config, "", 0, false, "", "", false)

	if config.Timeout != DefaultConfig.Timeout {
		t.Errorf("Timeout = %v, want default %v", config.Timeout, DefaultConfig.Timeout)
	}
	if config.Format != "text" || config.OutputFile != "-" {
		t.Errorf("Format/OutputFile = %q/%q, want text/-", config.Format, config.OutputFile)
	}
}

func TestValidateConfig(t *testing.T) {
	config := DefaultConfig
	if err := ValidateConfig(&config); err != nil {
		t.Errorf("ValidateConfig() on defaults = %v", err)
	}

	config = DefaultConfig
	config.Format = "json"
	if err := ValidateConfig(&config); err != nil {
		t.Errorf("ValidateConfig() with json format = %v", err)
	}

	config = DefaultConfig
	config.Format = "yaml"
	var cerr *ConfigError
	if err := ValidateConfig(&config); !errors.As(err, &cerr) {
		t.Errorf("ValidateConfig() error = %v, want *ConfigError", err)
	} else if cerr.Field != "format" {
		t.Errorf("ValidateConfig() error field = %q, want format", cerr.Field)
	}

	config = DefaultConfig
	config.Timeout = -time.Second
	if err := ValidateConfig(&config); err == nil {
		t.Error("ValidateConfig() accepted negative timeout")
	}

	config = DefaultConfig
	config.OutputFile = ""
	if err := ValidateConfig(&config); err == nil {
		t.Error("ValidateConfig() accepted empty output path")
	}
}
