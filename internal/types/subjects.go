// Package types provides type definitions for structured data used throughout the gpa-calculator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SubjectEntry is one row of the GPA form: the credits text as entered and the selected grade label.
// Credits stay as text so that a missing value and an unparseable value remain distinguishable.
type SubjectEntry struct {
	Credits string `json:"credits"`
	Grade   string `json:"grade"`
}

// UnmarshalJSON accepts credits as either a JSON string or a JSON number.
func (e *SubjectEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Credits json.RawMessage `json:"credits"`
		Grade   string          `json:"grade"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Grade = raw.Grade
	e.Credits = ""

	credits := bytes.TrimSpace(raw.Credits)
	switch {
	case len(credits) == 0, bytes.Equal(credits, []byte("null")):
		// missing
	case credits[0] == '"':
		if err := json.Unmarshal(credits, &e.Credits); err != nil {
			return fmt.Errorf("invalid credits: %w", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(credits, &n); err != nil {
			return fmt.Errorf("credits must be a string or number: %w", err)
		}
		e.Credits = n.String()
	}
	return nil
}

// SubjectSheet is the on-disk input format listing the subjects to evaluate.
type SubjectSheet struct {
	Subjects []SubjectEntry `json:"subjects"`
}
