package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "doseplan.yaml", `duration: 30
interval_min: 2
interval_max: 3
start_date: "2025-06-01"
output_file_path: plan.txt
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Duration)
	assert.Equal(t, 2, cfg.IntervalMin)
	assert.Equal(t, 3, cfg.IntervalMax)
	assert.Equal(t, "2025-06-01", cfg.StartDate)
	assert.Equal(t, "plan.txt", cfg.OutputFilePath)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "doseplan.json", `{
  "duration": 14,
  "start_date": "2025-02-01"
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Duration)
	assert.Equal(t, "2025-02-01", cfg.StartDate)
}

// Values absent from the file keep the built-in defaults.
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "doseplan.yaml", "duration: 60\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Duration)
	assert.Equal(t, Default().IntervalMin, cfg.IntervalMin)
	assert.Equal(t, Default().IntervalMax, cfg.IntervalMax)
	assert.Equal(t, Default().StartDate, cfg.StartDate)
	assert.Equal(t, Default().OutputFilePath, cfg.OutputFilePath)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "doseplan.toml", "duration = 10\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestLoad_InvalidBounds(t *testing.T) {
	path := writeConfig(t, "doseplan.yaml", "interval_min: 5\ninterval_max: 4\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval bounds")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 120, cfg.Duration)
	assert.Equal(t, 4, cfg.IntervalMin)
	assert.Equal(t, 5, cfg.IntervalMax)
	assert.Equal(t, "2025-01-01", cfg.StartDate)
	assert.Equal(t, "output.txt", cfg.OutputFilePath)
	assert.NoError(t, cfg.Validate())
}
