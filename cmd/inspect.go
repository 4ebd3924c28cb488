package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/churnboard/internal/churn"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Describe the loaded model, scaler and feature columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		log, closeLog, err := newLogger(cfg, false)
		if err != nil {
			return err
		}
		defer closeLog()

		pipeline, err := loadPipeline(cfg, log)
		if err != nil {
			return err
		}

		paths := cfg.ArtifactPaths()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "model:   %s\nscaler:  %s\ncolumns: %s\n\n", paths.Model, paths.Scaler, paths.Columns)
		return writeInfo(out, pipeline.Info())
	},
}

func writeInfo(w io.Writer, info churn.ModelInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Classifier\t%s\n", info.ClassifierKind)
	fmt.Fprintf(tw, "Scaler\t%s\n", info.ScalerKind)
	fmt.Fprintf(tw, "Features\t%d\n", info.NumFeatures)
	if len(info.Columns) != info.NumFeatures {
		fmt.Fprintf(tw, "Warning\tschema has %d columns; predictions will fail\n", len(info.Columns))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "#\tColumn\tSource")
	for i, c := range info.Columns {
		source := "form"
		if !c.Mapped {
			source = "unmapped (encoded as 0)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, c.Name, source)
	}
	return tw.Flush()
}
