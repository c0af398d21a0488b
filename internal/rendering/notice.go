package rendering

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/gpa-calculator/internal/gpa"
)

// IncompleteMessage is shown in place of a result when a row is missing its credits or grade.
const IncompleteMessage = "Please fill in all credits and grades."

// Notice writes the blocking message for a failed computation.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func Notice(w io.Writer, err error, noColor bool) {
	p := newPalette(noColor)

	var vErr *gpa.ValidationError
	if !errors.As(err, &vErr) {
		fmt.Fprintln(w, p.poor.Sprint("Error: "+err.Error()))
		return
	}

	fmt.Fprintln(w, p.poor.Sprint(IncompleteMessage))
	if len(vErr.Rows) == 0 {
		fmt.Fprintln(w, "Add at least one subject.")
		return
	}

	rows := make([]string, len(vErr.Rows))
	for i, r := range vErr.Rows {
		rows[i] = strconv.Itoa(r + 1)
	}
	fmt.Fprintf(w, "Incomplete subjects: %s\n", strings.Join(rows, ", "))
}
