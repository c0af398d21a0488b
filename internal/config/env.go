package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "GPA_CALC_CONFIG"
	EnvOutput     = "GPA_CALC_OUTPUT"
	EnvVerbose    = "GPA_CALC_VERBOSE"
)

// FromEnv builds a Config from GPA_CALC_* environment variables.
// If GPA_CALC_CONFIG names a file, that file is loaded first and the other variables override it.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv(EnvConfigPath); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if output := os.Getenv(EnvOutput); output != "" {
		cfg.Output = output
	}

	if verboseStr := os.Getenv(EnvVerbose); verboseStr != "" {
		verbose, err := strconv.ParseBool(verboseStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvVerbose, err)
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}
