package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jonathan/gpa-calculator/internal/config"
	"github.com/jonathan/gpa-calculator/internal/observability"
	"github.com/jonathan/gpa-calculator/internal/rendering"
	"github.com/jonathan/gpa-calculator/internal/schemas"
	"github.com/jonathan/gpa-calculator/internal/sheet"
	"github.com/jonathan/gpa-calculator/internal/types"
	rootschemas "github.com/jonathan/gpa-calculator/schemas"
	"github.com/spf13/cobra"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute a GPA from a subject sheet or credits:grade pairs",
	Long: `Computes the credit-weighted GPA for a list of subjects and prints it with a remark.

Subjects come either from a JSON subject sheet (--in) or from repeated --subject flags:

  gpa_calc compute --subject 3:A+ --subject 2:B
  gpa_calc compute --in subjects.json --out result.json`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCompute,
}

var (
	computeInput       string
	computeSubjects    []string
	computeOutput      string
	computeFormat      string
	computeTemplate    string
	computeNoBreakdown bool
)

func init() {
	computeCmd.Flags().StringVarP(&computeInput, "in", "i", "", "Path to input subject sheet JSON file")
	computeCmd.Flags().StringArrayVarP(&computeSubjects, "subject", "s", nil, "Subject as credits:grade (repeatable)")
	computeCmd.Flags().StringVarP(&computeOutput, "out", "o", "", "Path to write the result JSON file")
	computeCmd.Flags().StringVarP(&computeFormat, "format", "f", "", "Output format: text or json (default from config, else text)")
	computeCmd.Flags().StringVarP(&computeTemplate, "template", "t", "", "Path to a text/template file for the text output")
	computeCmd.Flags().BoolVar(&computeNoBreakdown, "no-breakdown", false, "Omit the per-subject table from text output")

	computeCmd.MarkFlagsMutuallyExclusive("in", "subject")
	computeCmd.MarkFlagsOneRequired("in", "subject")

	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(rootConfigPath, rootNoColor, rootVerbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	format := s.cfg.Output
	if computeFormat != "" {
		format = computeFormat
	}
	if format != config.OutputText && format != config.OutputJSON {
		return fmt.Errorf("unknown format %q: expected text or json", format)
	}

	// 1. Collect entries
	entries, err := collectEntries(computeInput, computeSubjects)
	if err != nil {
		return err
	}
	observability.Debug(s.logger, "msg", "entries collected", "count", len(entries))
	if s.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSubjects(entries)
	}

	// 2. Compute
	result, err := s.evaluator.Compute(entries)
	if err != nil {
		rendering.Notice(cmd.ErrOrStderr(), err, s.cfg.NoColor)
		return err
	}
	if s.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintResult(result)
	}

	// 3. Render
	switch format {
	case config.OutputJSON:
		err = rendering.JSON(cmd.OutOrStdout(), result)
	default:
		var tmpl *template.Template
		if computeTemplate != "" {
			if tmpl, err = rendering.ParseTemplate(computeTemplate); err != nil {
				return err
			}
		}
		err = rendering.Text(cmd.OutOrStdout(), result, s.evaluator.Contributions(entries), rendering.Options{
			NoColor:       s.cfg.NoColor,
			Template:      tmpl,
			HideBreakdown: computeNoBreakdown,
		})
	}
	if err != nil {
		return err
	}

	// 4. Optional result file
	if computeOutput != "" {
		if err := writeResult(computeOutput, result); err != nil {
			return err
		}
		observability.Debug(s.logger, "msg", "result written", "path", computeOutput)

		// Output validation is a safety check, not a requirement
		if err := schemas.ValidateFile(rootschemas.Result, computeOutput); err != nil {
			observability.Warn(s.logger, "msg", "output validation failed", "err", err)
		}
	}

	return nil
}

func collectEntries(inputPath string, pairs []string) ([]types.SubjectEntry, error) {
	switch {
	case inputPath != "" && len(pairs) > 0:
		return nil, errors.New("--in and --subject cannot be used together")
	case inputPath != "":
		s, err := sheet.Load(inputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load subject sheet: %w", err)
		}
		return s.Subjects, nil
	case len(pairs) > 0:
		entries, err := sheet.ParsePairs(pairs)
		if err != nil {
			return nil, fmt.Errorf("failed to parse subjects: %w", err)
		}
		return entries, nil
	default:
		return nil, errors.New("no subjects given: use --in or --subject")
	}
}

func writeResult(path string, result *types.Result) error {
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write result to output file %s: %w", path, err)
	}
	return nil
}
