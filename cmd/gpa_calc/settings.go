package main

import (
	"fmt"
	"io"

	gokitlog "github.com/go-kit/log"
	"github.com/jonathan/gpa-calculator/internal/config"
	"github.com/jonathan/gpa-calculator/internal/gpa"
	"github.com/jonathan/gpa-calculator/internal/grades"
	"github.com/jonathan/gpa-calculator/internal/observability"
)

// settings is the resolved configuration shared by every command.
type settings struct {
	cfg       config.Config
	logger    gokitlog.Logger
	evaluator *gpa.Evaluator
}

// loadSettings resolves flags > config file > defaults. The config file is --config when given,
// otherwise GPA_CALC_CONFIG with GPA_CALC_OUTPUT and GPA_CALC_VERBOSE applied on top.
func loadSettings(configPath string, noColor, verbose bool, logOut io.Writer) (*settings, error) {
	var (
		base *config.Config
		err  error
	)
	if configPath != "" {
		base, err = config.LoadConfig(configPath)
	} else {
		base, err = config.FromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := base.MergeWithDefaults(config.Default())
	if noColor {
		cfg.NoColor = true
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := observability.NewLogger(logOut, cfg.Verbose)
	observability.Debug(logger, "msg", "config resolved", "config", configSource(configPath), "output", cfg.Output, "remark_overrides", len(cfg.Remarks))

	return &settings{
		cfg:       cfg,
		logger:    logger,
		evaluator: gpa.New(grades.Default, gpa.DefaultRemarks().WithOverrides(cfg.Remarks)),
	}, nil
}

func configSource(path string) string {
	if path != "" {
		return path
	}
	return "env"
}
