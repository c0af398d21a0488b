package gpa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteInput matches any ValidationError through errors.Is.
var ErrIncompleteInput = errors.New("incomplete input")

// ValidationError is returned when the entry list is empty or a row is missing its credits or grade.
type ValidationError struct {
	Message string
	// Rows holds the zero-based indexes of incomplete entries; empty when the list itself is empty.
	Rows []int
}

func (e *ValidationError) Error() string {
	if len(e.Rows) == 0 {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	rows := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		rows[i] = fmt.Sprintf("%d", r+1)
	}
	return fmt.Sprintf("validation error: %s (rows %s)", e.Message, strings.Join(rows, ", "))
}

// Is reports whether target is ErrIncompleteInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrIncompleteInput
}
