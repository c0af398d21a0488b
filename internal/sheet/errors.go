// Package sheet loads subject entries from sheet files and command-line pairs.
package sheet

import "fmt"

// LoadError represents an error during file I/O, schema validation or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError represents a malformed credits:grade pair
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %q: %s", e.Input, e.Message)
}
