package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/churnboard/internal/artifact"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "churnboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, lvl)
	assert.Equal(t, artifact.PathsIn("artifacts"), cfg.ArtifactPaths())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
artifact_dir: /srv/churn
model_path: /srv/churn/rf.json
log_level: debug
form:
  tenure_months: 24
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/churn", cfg.ArtifactDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 24, cfg.Form.TenureMonths)
	assert.Equal(t, 70.0, cfg.Form.MonthlyCharges, "unset keys keep defaults")

	paths := cfg.ArtifactPaths()
	assert.Equal(t, "/srv/churn/rf.json", paths.Model)
	assert.Equal(t, filepath.Join("/srv/churn", artifact.DefaultScalerFile), paths.Scaler)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "artifact_dri: /tmp\n")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWithEnv(t *testing.T) {
	t.Setenv("CHURNBOARD_ARTIFACT_DIR", "/opt/models")
	t.Setenv("CHURNBOARD_COLUMNS", "/opt/cols.json")
	t.Setenv("CHURNBOARD_LOG_LEVEL", "info")

	cfg := ConfigFromEnv()
	assert.Equal(t, "/opt/models", cfg.ArtifactDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/opt/cols.json", cfg.ArtifactPaths().Columns)
	assert.Equal(t, filepath.Join("/opt/models", artifact.DefaultModelFile), cfg.ArtifactPaths().Model)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"no artifact location", func(c *Config) { c.ArtifactDir = "" }},
		{"tenure out of range", func(c *Config) { c.Form.TenureMonths = 80 }},
		{"monthly out of range", func(c *Config) { c.Form.MonthlyCharges = -1 }},
		{"total out of range", func(c *Config) { c.Form.TotalCharges = 10001 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateExplicitPathsWithoutDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArtifactDir = ""
	cfg.ModelPath = "m.json"
	cfg.ScalerPath = "s.json"
	cfg.ColumnsPath = "c.json"
	assert.NoError(t, cfg.Validate())
}
