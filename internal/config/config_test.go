package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 64, cfg.Precision)
	assert.False(t, cfg.Degrees)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rot3.yaml")

	yamlContent := `
precision: 32
degrees: true
format: yaml

logging:
  level: "debug"
  log_file: "rot3.log"
`

	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Precision)
	assert.True(t, cfg.Degrees)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "rot3.log", cfg.Logging.LogFile)
}

func TestLoadPartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rot3.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("degrees: true\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Unset values keep their defaults.
	assert.True(t, cfg.Degrees)
	assert.Equal(t, 64, cfg.Precision)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("precision: [not, a, number]\n"), 0644))

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Precision = 16
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Format = "json"
	assert.Error(t, cfg.Validate())
}
