// Package schemas embeds the JSON Schema documents for the files the CLI reads and writes.
package schemas

import _ "embed"

// SubjectSheet is the schema for subject sheet input files.
//
//go:embed subject_sheet.schema.json
var SubjectSheet string

// Result is the schema for result output files.
//
//go:embed result.schema.json
var Result string
