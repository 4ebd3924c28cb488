package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/churnboard/internal/artifact"
	"github.com/abhisek/churnboard/internal/churn"
)

// Config holds runtime configuration for the dashboard and CLI.
type Config struct {
	// ArtifactDir holds model.json, scaler.json and columns.json.
	ArtifactDir string `yaml:"artifact_dir"`

	// Per-file overrides. Empty means <ArtifactDir>/<default name>.
	ModelPath   string `yaml:"model_path"`
	ScalerPath  string `yaml:"scaler_path"`
	ColumnsPath string `yaml:"columns_path"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Form FormDefaults `yaml:"form"`
}

// FormDefaults are the values the numeric inputs start with.
type FormDefaults struct {
	TenureMonths   int     `yaml:"tenure_months"`
	MonthlyCharges float64 `yaml:"monthly_charges"`
	TotalCharges   float64 `yaml:"total_charges"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ArtifactDir: "artifacts",
		LogLevel:    "warn",
		Form: FormDefaults{
			TenureMonths:   12,
			MonthlyCharges: 70.0,
			TotalCharges:   2500.0,
		},
	}
}

// LoadFile reads a YAML config over the defaults. Unknown keys are errors so
// typos do not pass silently.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WithEnv returns a copy of c with CHURNBOARD_* environment variables applied.
func (c Config) WithEnv() Config {
	if v := os.Getenv("CHURNBOARD_ARTIFACT_DIR"); v != "" {
		c.ArtifactDir = v
	}
	if v := os.Getenv("CHURNBOARD_MODEL"); v != "" {
		c.ModelPath = v
	}
	if v := os.Getenv("CHURNBOARD_SCALER"); v != "" {
		c.ScalerPath = v
	}
	if v := os.Getenv("CHURNBOARD_COLUMNS"); v != "" {
		c.ColumnsPath = v
	}
	if v := os.Getenv("CHURNBOARD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CHURNBOARD_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	return c
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	return DefaultConfig().WithEnv()
}

// ArtifactPaths resolves the three artifact locations.
func (c Config) ArtifactPaths() artifact.Paths {
	p := artifact.PathsIn(c.ArtifactDir)
	if c.ModelPath != "" {
		p.Model = c.ModelPath
	}
	if c.ScalerPath != "" {
		p.Scaler = c.ScalerPath
	}
	if c.ColumnsPath != "" {
		p.Columns = c.ColumnsPath
	}
	return p
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Validate checks the log level, artifact locations and form defaults.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.ArtifactDir == "" && (c.ModelPath == "" || c.ScalerPath == "" || c.ColumnsPath == "") {
		return fmt.Errorf("artifact_dir is required unless model, scaler and columns paths are all set")
	}

	f := c.Form
	if f.TenureMonths < churn.MinTenureMonths || f.TenureMonths > churn.MaxTenureMonths {
		return fmt.Errorf("form.tenure_months %d outside [%d, %d]", f.TenureMonths, churn.MinTenureMonths, churn.MaxTenureMonths)
	}
	if f.MonthlyCharges < churn.MinMonthlyCharges || f.MonthlyCharges > churn.MaxMonthlyCharges {
		return fmt.Errorf("form.monthly_charges %v outside [%v, %v]", f.MonthlyCharges, churn.MinMonthlyCharges, churn.MaxMonthlyCharges)
	}
	if f.TotalCharges < churn.MinTotalCharges || f.TotalCharges > churn.MaxTotalCharges {
		return fmt.Errorf("form.total_charges %v outside [%v, %v]", f.TotalCharges, churn.MinTotalCharges, churn.MaxTotalCharges)
	}
	return nil
}
