package rendering

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/gpa-calculator/internal/gpa"
	"github.com/jonathan/gpa-calculator/internal/grades"
	"github.com/jonathan/gpa-calculator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeFor(t *testing.T, entries ...types.SubjectEntry) (*types.Result, []gpa.Breakdown) {
	t.Helper()
	ev := gpa.Default()
	result, err := ev.Compute(entries)
	require.NoError(t, err)
	return result, ev.Contributions(entries)
}

func TestText_DefaultTemplate(t *testing.T) {
	result, breakdown := computeFor(t,
		types.SubjectEntry{Credits: "3", Grade: "A+"},
		types.SubjectEntry{Credits: "2", Grade: "B"},
	)

	var buf bytes.Buffer
	err := Text(&buf, result, breakdown, Options{NoColor: true})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "GPA Result")
	assert.Contains(t, output, "Your GPA is 8.20.")
	assert.Contains(t, output, "Great job! You're doing really well.")
	assert.Contains(t, output, "Media: https://media.giphy.com/media/xT5LMDsUy5QGmk0LrO/giphy.gif")
	assert.NotContains(t, output, "Congratulations")
	assert.NotContains(t, output, "\x1b[", "no escape codes when color is off")

	// breakdown table
	assert.Contains(t, output, "WEIGHTED")
	assert.Contains(t, output, "27")
	assert.Contains(t, output, "GPA 8.20")
}

func TestText_Celebrate(t *testing.T) {
	result, breakdown := computeFor(t, types.SubjectEntry{Credits: "4", Grade: "O"})

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, result, breakdown, Options{NoColor: true, HideBreakdown: true}))

	output := buf.String()
	assert.Contains(t, output, "Your GPA is 10.00.")
	assert.Contains(t, output, "*** Congratulations! ***")
	assert.NotContains(t, output, "WEIGHTED")
}

func TestText_NilResult(t *testing.T) {
	var buf bytes.Buffer
	err := Text(&buf, nil, nil, Options{})

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Empty(t, buf.String())
}

func TestText_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.tmpl")
	content := `{{.Result.Tier}}={{.Result.Display}} over {{len .Breakdown}} subjects
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tmpl, err := ParseTemplate(path)
	require.NoError(t, err)

	result, breakdown := computeFor(t,
		types.SubjectEntry{Credits: "4", Grade: "O"},
		types.SubjectEntry{Credits: "4", Grade: "F"},
	)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, result, breakdown, Options{NoColor: true, Template: tmpl, HideBreakdown: true}))
	assert.Equal(t, "average=5.00 over 2 subjects\n", buf.String())
}

func TestParseTemplate_Errors(t *testing.T) {
	_, err := ParseTemplate("/nonexistent/result.tmpl")
	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, err.Error(), "template file not found")

	path := filepath.Join(t.TempDir(), "broken.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.Result"), 0644))
	_, err = ParseTemplate(path)
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestText_ExecuteError(t *testing.T) {
	tmpl, err := parse(`{{.Result.Missing}}`)
	require.NoError(t, err)

	result, _ := computeFor(t, types.SubjectEntry{Credits: "1", Grade: "A"})

	var buf bytes.Buffer
	err = Text(&buf, result, nil, Options{Template: tmpl})
	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, err.Error(), "failed to execute template")
}

func TestJSON(t *testing.T) {
	result, _ := computeFor(t,
		types.SubjectEntry{Credits: "3", Grade: "A+"},
		types.SubjectEntry{Credits: "2", Grade: "B"},
	)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, result))

	var decoded types.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *result, decoded)
	assert.Contains(t, buf.String(), `"display": "8.20"`)
	assert.Contains(t, buf.String(), `"tier": "great"`)
}

func TestNotice_Incomplete(t *testing.T) {
	_, err := gpa.Default().Compute([]types.SubjectEntry{
		{Credits: "3", Grade: "A"},
		{Credits: "", Grade: "B"},
		{Credits: "2", Grade: ""},
	})
	require.Error(t, err)

	var buf bytes.Buffer
	Notice(&buf, err, true)

	assert.Contains(t, buf.String(), IncompleteMessage)
	assert.Contains(t, buf.String(), "Incomplete subjects: 2, 3")
}

func TestNotice_EmptyList(t *testing.T) {
	_, err := gpa.Default().Compute(nil)
	require.Error(t, err)

	var buf bytes.Buffer
	Notice(&buf, err, true)

	assert.Contains(t, buf.String(), IncompleteMessage)
	assert.Contains(t, buf.String(), "Add at least one subject.")
}

func TestNotice_OtherError(t *testing.T) {
	var buf bytes.Buffer
	Notice(&buf, errors.New("disk on fire"), true)

	assert.Equal(t, "Error: disk on fire\n", buf.String())
}

func TestScale(t *testing.T) {
	var buf bytes.Buffer
	Scale(&buf, grades.Default)

	output := buf.String()
	assert.Contains(t, output, "GRADE")
	assert.Contains(t, output, "POINTS")
	for _, label := range grades.Default.Labels() {
		assert.Contains(t, output, label)
	}
	assert.Contains(t, output, "10")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "3", formatNumber(3))
	assert.Equal(t, "1.5", formatNumber(1.5))
	assert.Equal(t, "2.7", formatNumber(0.3*9))
	assert.Equal(t, "0", formatNumber(0))
}
