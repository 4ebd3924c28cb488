package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/churnboard/internal/app"
	"github.com/abhisek/churnboard/internal/screens/dashboard"
)

// runApp loads configuration and artifacts, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	pipeline, err := loadPipeline(cfg, log)
	if err != nil {
		log.WithError(err).Error("startup failed")
		return err
	}

	return app.Run(app.Options{
		Pipeline: pipeline,
		Defaults: dashboard.Defaults{
			TenureMonths:   cfg.Form.TenureMonths,
			MonthlyCharges: cfg.Form.MonthlyCharges,
			TotalCharges:   cfg.Form.TotalCharges,
		},
	})
}
