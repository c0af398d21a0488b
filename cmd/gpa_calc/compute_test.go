package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/gpa-calculator/internal/config"
	"github.com/jonathan/gpa-calculator/internal/gpa"
	"github.com/jonathan/gpa-calculator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectEntries_FromPairs(t *testing.T) {
	entries, err := collectEntries("", []string{"3:A+", "2:B"})
	require.NoError(t, err)
	assert.Equal(t, []types.SubjectEntry{{Credits: "3", Grade: "A+"}, {Credits: "2", Grade: "B"}}, entries)
}

func TestCollectEntries_FromSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"subjects": [{"credits": 4, "grade": "O"}]}`), 0644))

	entries, err := collectEntries(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []types.SubjectEntry{{Credits: "4", Grade: "O"}}, entries)
}

func TestCollectEntries_Errors(t *testing.T) {
	_, err := collectEntries("", nil)
	assert.ErrorContains(t, err, "no subjects given")

	_, err = collectEntries("sheet.json", []string{"3:A"})
	assert.ErrorContains(t, err, "cannot be used together")

	_, err = collectEntries("", []string{"3A"})
	assert.ErrorContains(t, err, "failed to parse subjects")

	_, err = collectEntries("/nonexistent/sheet.json", nil)
	assert.ErrorContains(t, err, "failed to load subject sheet")
}

func TestWriteResult_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "result.json")
	result := &types.Result{GPA: 8.2, Display: "8.20", TotalCredits: 5, Tier: types.TierGreat}

	require.NoError(t, writeResult(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *result, decoded)
}

func TestLoadSettings_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"output": "json", "remarks": {"great": {"text": "Configured great"}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var logs bytes.Buffer
	s, err := loadSettings(path, true, true, &logs)
	require.NoError(t, err)

	assert.Equal(t, config.OutputJSON, s.cfg.Output)
	assert.True(t, s.cfg.NoColor)
	assert.True(t, s.cfg.Verbose)
	assert.Contains(t, logs.String(), "config resolved")

	result, err := s.evaluator.Compute([]types.SubjectEntry{{Credits: "3", Grade: "A+"}, {Credits: "2", Grade: "B"}})
	require.NoError(t, err)
	assert.Equal(t, "Configured great", result.Remark)
}

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvVerbose, "")

	var logs bytes.Buffer
	s, err := loadSettings("", false, false, &logs)
	require.NoError(t, err)

	assert.Equal(t, config.OutputText, s.cfg.Output)
	assert.False(t, s.cfg.Verbose)
	assert.Empty(t, logs.String())
}

func TestLoadSettings_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": "yaml"}`), 0644))

	_, err := loadSettings(path, false, false, &bytes.Buffer{})
	assert.ErrorContains(t, err, "config error")
}

func TestComputeCommand_Subjects(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "compute", "--no-color",
		"--subject", "3:A+",
		"--subject", "2:B")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Your GPA is 8.20.")
	assert.Contains(t, string(output), "Great job!")
}

func TestComputeCommand_MissingSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "compute")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "at least one of the flags in the group [in subject] is required")
}

func TestComputeCommand_Incomplete(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "compute", "--no-color", "--subject", "3:")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "Please fill in all credits and grades.")
	assert.Contains(t, string(output), "Incomplete subjects: 1")
	assert.NotContains(t, string(output), "Error:")
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, fmt.Errorf("compute: %w", &gpa.ValidationError{Message: "incomplete input", Rows: []int{0}}))
	assert.Empty(t, buf.String(), "notice already shown for incomplete input")

	reportError(&buf, errors.New("failed to load config: boom"))
	assert.Equal(t, "Error: failed to load config: boom\n", buf.String())
}

func TestComputeCommand_JSONAndOutFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	sheetFile := filepath.Join(tmpDir, "sheet.json")
	outFile := filepath.Join(tmpDir, "out", "result.json")

	require.NoError(t, os.WriteFile(sheetFile, []byte(`{"subjects": [{"credits": "4", "grade": "O"}, {"credits": "4", "grade": "F"}]}`), 0644))

	cmd := exec.Command(binaryPath, "compute",
		"--in", sheetFile,
		"--format", "json",
		"--out", outFile)
	output, err := cmd.Output()
	require.NoError(t, err)

	var printed types.Result
	require.NoError(t, json.Unmarshal(output, &printed))
	assert.Equal(t, "5.00", printed.Display)
	assert.Equal(t, types.TierAverage, printed.Tier)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var written types.Result
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, printed, written)
}

func TestScaleCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "scale").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "A+")
	assert.Contains(t, string(output), "10")
}
