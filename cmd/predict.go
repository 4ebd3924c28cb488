package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/churnboard/internal/churn"
	"github.com/abhisek/churnboard/internal/config"
	"github.com/abhisek/churnboard/internal/ui/components"
)

// profileFlags binds each profile field to its predict flag.
var profileFlags = []struct {
	field string
	flag  string
	usage string
}{
	{churn.FieldGender, "gender", "Male or Female"},
	{churn.FieldSeniorCitizen, "senior", "Senior citizen: Yes or No"},
	{churn.FieldPartner, "partner", "Has partner: Yes or No"},
	{churn.FieldDependents, "dependents", "Has dependents: Yes or No"},
	{churn.FieldContract, "contract", "Month-to-month, One year or Two year"},
	{churn.FieldPaperlessBilling, "paperless", "Paperless billing: Yes or No"},
	{churn.FieldPaymentMethod, "payment", "Electronic check, Mailed check, Bank transfer (automatic) or Credit card (automatic)"},
	{churn.FieldTenure, "tenure", "Tenure in months, 0-72 (default from config)"},
	{churn.FieldMonthlyCharges, "monthly-charges", "Monthly charges, 0-200 (default from config)"},
	{churn.FieldTotalCharges, "total-charges", "Total charges, 0-10000 (default from config)"},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score one customer profile",
	Example: `  churnboard predict --gender Female --senior No --partner No --dependents No \
    --contract "Month-to-month" --paperless Yes --payment "Electronic check" \
    --tenure 1 --monthly-charges 95 --total-charges 95`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown output format %q (want text or json)", format)
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		log, closeLog, err := newLogger(cfg, false)
		if err != nil {
			return err
		}
		defer closeLog()

		profile, err := churn.ParseProfile(profileAnswers(cmd, cfg.Form))
		if err != nil {
			return flagError(err)
		}

		pipeline, err := loadPipeline(cfg, log)
		if err != nil {
			return err
		}
		res, err := pipeline.Predict(profile)
		if err != nil {
			return fmt.Errorf("prediction failed: %w", err)
		}
		return writePrediction(cmd.OutOrStdout(), res, format)
	},
}

func init() {
	for _, pf := range profileFlags {
		predictCmd.Flags().String(pf.flag, "", pf.usage)
	}
	predictCmd.Flags().StringP("output", "o", "text", "Output format: text or json")
}

// profileAnswers collects flag values keyed for churn.ParseProfile. Unset
// numeric flags fall back to the configured form defaults.
func profileAnswers(cmd *cobra.Command, defaults config.FormDefaults) map[string]string {
	answers := map[string]string{
		churn.FieldTenure:         strconv.Itoa(defaults.TenureMonths),
		churn.FieldMonthlyCharges: strconv.FormatFloat(defaults.MonthlyCharges, 'f', -1, 64),
		churn.FieldTotalCharges:   strconv.FormatFloat(defaults.TotalCharges, 'f', -1, 64),
	}
	for _, pf := range profileFlags {
		if v, _ := cmd.Flags().GetString(pf.flag); v != "" {
			answers[pf.field] = v
		}
	}
	return answers
}

// flagError rewrites an input error in terms of the flag that caused it.
func flagError(err error) error {
	var inErr *churn.InputError
	if !errors.As(err, &inErr) {
		return err
	}
	for _, pf := range profileFlags {
		if pf.field == inErr.Field {
			return fmt.Errorf("--%s: %w", pf.flag, inErr.Err)
		}
	}
	return err
}

type predictionOutput struct {
	Label                       int     `json:"label"`
	Prediction                  string  `json:"prediction"`
	Risk                        string  `json:"risk"`
	ChurnProbabilityPercent     float64 `json:"churn_probability_percent"`
	DisplayedProbabilityPercent float64 `json:"displayed_probability_percent"`
}

func writePrediction(w io.Writer, res churn.PredictionResult, format string) error {
	displayed := components.DisplayedProbability(res)
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(predictionOutput{
			Label:                       int(res.Label),
			Prediction:                  res.Label.String(),
			Risk:                        components.RiskLabel(res),
			ChurnProbabilityPercent:     res.ChurnProbabilityPercent,
			DisplayedProbabilityPercent: displayed,
		})
	}

	_, err := fmt.Fprintf(w, "%s\nProbability: %s%%\nChurn probability: %s%% (%s band)\n",
		components.RiskLabel(res),
		components.FormatPercent(displayed),
		components.FormatPercent(res.ChurnProbabilityPercent),
		bandName(components.BandFor(res.ChurnProbabilityPercent)),
	)
	return err
}

func bandName(b components.Band) string {
	switch b {
	case components.BandMedium:
		return "yellow"
	case components.BandHigh:
		return "red"
	}
	return "green"
}
