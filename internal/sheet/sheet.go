package sheet

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/gpa-calculator/internal/schemas"
	"github.com/jonathan/gpa-calculator/internal/types"
	rootschemas "github.com/jonathan/gpa-calculator/schemas"
)

// Load reads a subject sheet from a JSON file and checks it against the sheet schema.
func Load(path string) (*types.SubjectSheet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Parse(content)
}

// Parse decodes a subject sheet from JSON content.
func Parse(content []byte) (*types.SubjectSheet, error) {
	if !json.Valid(content) {
		return nil, &LoadError{Message: "sheet is not valid JSON"}
	}

	if err := schemas.ValidateJSONString(rootschemas.SubjectSheet, string(content)); err != nil {
		return nil, &LoadError{
			Message: "sheet does not match schema",
			Cause:   err,
		}
	}

	var s types.SubjectSheet
	if err := json.Unmarshal(content, &s); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &s, nil
}

// ParsePairs turns "credits:grade" strings into entries.
// Either side may be empty; the evaluator reports such rows as incomplete.
func ParsePairs(pairs []string) ([]types.SubjectEntry, error) {
	entries := make([]types.SubjectEntry, 0, len(pairs))
	for _, pair := range pairs {
		credits, grade, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, &ParseError{Input: pair, Message: "expected credits:grade"}
		}
		entries = append(entries, types.SubjectEntry{
			Credits: strings.TrimSpace(credits),
			Grade:   strings.TrimSpace(grade),
		})
	}
	return entries, nil
}
