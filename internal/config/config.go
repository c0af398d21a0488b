// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/gpa-calculator/internal/types"
)

// Output formats accepted by the compute command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	NoColor bool   `json:"no_color,omitempty"` // Disable colored output
	Verbose bool   `json:"verbose,omitempty"`  // Print detailed debug information
	Output  string `json:"output,omitempty" validate:"omitempty,oneof=text json"`

	// Remarks overrides the text or media shown for individual tiers.
	Remarks map[types.RemarkTier]types.Remark `json:"remarks,omitempty" validate:"omitempty,dive,keys,oneof=outstanding great good average try_again,endkeys,required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Output: OutputText}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names so messages match what users wrote in the file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return fmt.Errorf("config error: %w", err)
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("config error: '%s' must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	case "url":
		return fmt.Errorf("config error: '%s' must be a URL, got %q", fe.Namespace(), fe.Value())
	default:
		return fmt.Errorf("config error: '%s' failed %s", fe.Namespace(), fe.Tag())
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Remarks: defaults first, then this config's entries on top
	if len(defaults.Remarks) > 0 {
		merged := make(map[types.RemarkTier]types.Remark, len(defaults.Remarks)+len(c.Remarks))
		for tier, r := range defaults.Remarks {
			merged[tier] = r
		}
		for tier, r := range c.Remarks {
			merged[tier] = r
		}
		result.Remarks = merged
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
