package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/churnboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "churnboard",
	Short: "Customer churn risk dashboard",
	Long:  "Churnboard scores a customer profile against a pre-trained churn classifier and shows the risk with a probability gauge.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("artifacts", "", "Directory holding model.json, scaler.json and columns.json (overrides CHURNBOARD_ARTIFACT_DIR)")
	pf.String("model", "", "Path to the model artifact (overrides CHURNBOARD_MODEL)")
	pf.String("scaler", "", "Path to the scaler artifact (overrides CHURNBOARD_SCALER)")
	pf.String("columns", "", "Path to the feature column list (overrides CHURNBOARD_COLUMNS)")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides CHURNBOARD_LOG_LEVEL)")
	pf.String("log-file", "", "Append logs to this file (overrides CHURNBOARD_LOG_FILE)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers defaults, the optional --config file, CHURNBOARD_*
// variables and flags, in increasing priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		var err error
		if cfg, err = config.LoadFile(p); err != nil {
			return cfg, err
		}
	}
	cfg = cfg.WithEnv()

	for _, o := range []struct {
		flag string
		dst  *string
	}{
		{"artifacts", &cfg.ArtifactDir},
		{"model", &cfg.ModelPath},
		{"scaler", &cfg.ScalerPath},
		{"columns", &cfg.ColumnsPath},
		{"log-level", &cfg.LogLevel},
		{"log-file", &cfg.LogFile},
	} {
		if v, _ := cmd.Flags().GetString(o.flag); v != "" {
			*o.dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
