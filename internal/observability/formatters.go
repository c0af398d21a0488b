// Package observability provides verbose-mode summaries and the CLI's structured logger.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/gpa-calculator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSubjects outputs the entries about to be evaluated, marking missing fields.
func (p *Printer) PrintSubjects(entries []types.SubjectEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Subjects: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("#%-3d credits %-8s grade %s\n", i+1, orMissing(e.Credits), orMissing(e.Grade)))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(entries)-maxItemsToShow))
	}

	p.printBox("SUBJECT ENTRIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the computed GPA with its tier.
func (p *Printer) PrintResult(result *types.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("GPA:       %s\n", result.Display))
	sb.WriteString(fmt.Sprintf("Credits:   %g\n", result.TotalCredits))
	sb.WriteString(fmt.Sprintf("Tier:      %s\n", result.Tier))
	sb.WriteString(fmt.Sprintf("Celebrate: %t", result.Celebrate))

	p.printBox("GPA RESULT", sb.String())
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(missing)"
	}
	return s
}
