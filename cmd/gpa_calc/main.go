// Package main provides the entry point for the gpa_calc command-line GPA calculator.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/gpa-calculator/internal/gpa"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "gpa_calc",
	Short:         "Credit-weighted GPA calculator",
	Long:          "gpa_calc computes a credit-weighted grade-point average from per-subject credits and letter grades (O, A+, A, B, C, D, F) and shows a remark for the result.",
	SilenceErrors: true,
}

var (
	rootConfigPath string
	rootNoColor    bool
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigPath, "config", "c", "", "Path to JSON config file (overrides GPA_CALC_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err unless a notice for it was already shown.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func reportError(w io.Writer, err error) {
	if errors.Is(err, gpa.ErrIncompleteInput) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
