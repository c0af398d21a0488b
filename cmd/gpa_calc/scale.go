package main

import (
	"github.com/jonathan/gpa-calculator/internal/grades"
	"github.com/jonathan/gpa-calculator/internal/rendering"
	"github.com/spf13/cobra"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Show the grade scale",
	Long:  "Prints every accepted grade label with the points it is worth.",
	Args:  cobra.NoArgs,
	RunE:  runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, _ []string) error {
	rendering.Scale(cmd.OutOrStdout(), grades.Default)
	return nil
}
