package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	gokitlog "github.com/go-kit/log"
	"github.com/jonathan/gpa-calculator/internal/gpa"
	"github.com/jonathan/gpa-calculator/internal/grades"
	"github.com/jonathan/gpa-calculator/internal/observability"
	"github.com/jonathan/gpa-calculator/internal/rendering"
	"github.com/jonathan/gpa-calculator/internal/types"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:          "interactive",
	Aliases:      []string{"form"},
	Short:        "Enter subjects one at a time and calculate",
	Long:         "Starts a line-oriented form: add subjects, edit them by row number, then run 'calc'. Type 'help' for commands.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(rootConfigPath, rootNoColor, rootVerbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sess := newSession(cmd.InOrStdin(), cmd.OutOrStdout(), s.evaluator, grades.Default, s.cfg.NoColor)
	sess.logger = s.logger
	return sess.Run()
}

const missingField = "-"

const sessionHelp = `Commands:
  add [credits] [grade]           add a subject row (use - to leave a field empty)
  set <row> credits|grade [value] replace one field of a row (no value clears it)
  list                            show the rows entered so far
  calc                            calculate the GPA
  result                          show the last calculated GPA
  scale                           show the grade scale
  reset                           start over with one empty row
  help                            show this help
  quit                            leave`

// session is the terminal form. It owns the mutable rows and passes the evaluator a copy on every calc.
type session struct {
	in        *bufio.Scanner
	out       io.Writer
	evaluator *gpa.Evaluator
	scale     *grades.Scale
	noColor   bool
	logger    gokitlog.Logger

	subjects []types.SubjectEntry
	// result is nil until the first successful calc
	result *types.Result
}

func newSession(in io.Reader, out io.Writer, ev *gpa.Evaluator, scale *grades.Scale, noColor bool) *session {
	return &session{
		in:        bufio.NewScanner(in),
		out:       out,
		evaluator: ev,
		scale:     scale,
		noColor:   noColor,
		logger:    gokitlog.NewNopLogger(),
		subjects:  []types.SubjectEntry{{}},
	}
}

// Run reads commands until quit or end of input.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) Run() error {
	fmt.Fprintln(s.out, "GPA Calculator. Type 'help' for commands.")
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if quit := s.handle(s.in.Text()); quit {
			return nil
		}
	}
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "add":
		s.add(fields[1:])
	case "set":
		s.set(fields[1:])
	case "list":
		s.list()
	case "calc", "calculate":
		s.calc()
	case "result":
		s.showResult()
	case "scale":
		rendering.Scale(s.out, s.scale)
	case "reset":
		s.subjects = []types.SubjectEntry{{}}
		s.result = nil
		fmt.Fprintln(s.out, "Form cleared.")
	case "help", "?":
		fmt.Fprintln(s.out, sessionHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", fields[0])
	}
	return false
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) add(args []string) {
	if len(args) > 2 {
		fmt.Fprintln(s.out, "Usage: add [credits] [grade]")
		return
	}

	var entry types.SubjectEntry
	if len(args) > 0 {
		entry.Credits = fieldValue(args[0])
	}
	if len(args) > 1 {
		entry.Grade = fieldValue(args[1])
		if !s.checkGrade(entry.Grade) {
			return
		}
	}

	s.subjects = append(s.subjects, entry)
	fmt.Fprintf(s.out, "Added subject %d.\n", len(s.subjects))
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) set(args []string) {
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(s.out, "Usage: set <row> credits|grade [value]")
		return
	}

	row, err := strconv.Atoi(args[0])
	if err != nil || row < 1 || row > len(s.subjects) {
		fmt.Fprintf(s.out, "No subject %s; rows are 1 to %d.\n", args[0], len(s.subjects))
		return
	}

	value := ""
	if len(args) == 3 {
		value = fieldValue(args[2])
	}

	entry := s.subjects[row-1]
	switch strings.ToLower(args[1]) {
	case "credits":
		entry.Credits = value
	case "grade":
		if !s.checkGrade(value) {
			return
		}
		entry.Grade = value
	default:
		fmt.Fprintf(s.out, "Unknown field %q; use credits or grade.\n", args[1])
		return
	}

	s.subjects[row-1] = entry
	fmt.Fprintf(s.out, "Updated subject %d.\n", row)
}

// checkGrade limits the form to the scale's labels, the way a select box would.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) checkGrade(label string) bool {
	if label == "" || s.scale.Known(label) {
		return true
	}
	fmt.Fprintf(s.out, "Grade must be one of %s.\n", strings.Join(s.scale.Labels(), ", "))
	return false
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) list() {
	for i, e := range s.subjects {
		fmt.Fprintf(s.out, "%d. credits: %-8s grade: %s\n", i+1, displayField(e.Credits), displayField(e.Grade))
	}
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) calc() {
	snapshot := append([]types.SubjectEntry(nil), s.subjects...)
	observability.Debug(s.logger, "msg", "calculating", "count", len(snapshot))

	result, err := s.evaluator.Compute(snapshot)
	if err != nil {
		rendering.Notice(s.out, err, s.noColor)
		return
	}

	s.result = result
	s.render(s.evaluator.Contributions(snapshot))
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (s *session) showResult() {
	if s.result == nil {
		fmt.Fprintln(s.out, "No GPA calculated yet.")
		return
	}
	s.render(nil)
}

func (s *session) render(breakdown []gpa.Breakdown) {
	if err := rendering.Text(s.out, s.result, breakdown, rendering.Options{NoColor: s.noColor}); err != nil {
		rendering.Notice(s.out, err, s.noColor)
	}
}

func fieldValue(arg string) string {
	if arg == missingField {
		return ""
	}
	return arg
}

func displayField(v string) string {
	if v == "" {
		return missingField
	}
	return v
}
