package churn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/churnboard/internal/artifact"
)

// trainedColumns is the column order of the shipped model.
var trainedColumns = []string{
	ColTenure,
	ColMonthlyCharges,
	ColTotalCharges,
	ColGenderMale,
	ColSeniorCitizenYes,
	ColPartnerYes,
	ColDependentsYes,
	ColContractOneYear,
	ColContractTwoYear,
	ColPaperlessBillingYes,
	ColPaymentCreditCard,
	ColPaymentElectronicCheck,
	ColPaymentMailedCheck,
}

func mustSchema(t *testing.T, cols ...string) artifact.Schema {
	t.Helper()
	if len(cols) == 0 {
		cols = trainedColumns
	}
	s, err := artifact.NewSchema(cols)
	require.NoError(t, err)
	return s
}

func mustEncoder(t *testing.T, cols ...string) *Encoder {
	t.Helper()
	e, err := NewEncoder(mustSchema(t, cols...))
	require.NoError(t, err)
	return e
}

// highRiskProfile is a short-tenure month-to-month customer paying by
// electronic check.
func highRiskProfile() RawProfile {
	return RawProfile{
		Gender:           GenderMale,
		SeniorCitizen:    No,
		Partner:          No,
		Dependents:       No,
		Contract:         MonthToMonth,
		PaperlessBilling: Yes,
		PaymentMethod:    ElectronicCheck,
		TenureMonths:     1,
		MonthlyCharges:   95.0,
		TotalCharges:     95.0,
	}
}

// lowRiskProfile is a long-tenure two-year customer on automatic bank
// transfer.
func lowRiskProfile() RawProfile {
	return RawProfile{
		Gender:           GenderFemale,
		SeniorCitizen:    No,
		Partner:          Yes,
		Dependents:       Yes,
		Contract:         TwoYear,
		PaperlessBilling: No,
		PaymentMethod:    BankTransferAuto,
		TenureMonths:     60,
		MonthlyCharges:   50.0,
		TotalCharges:     3000.0,
	}
}

func identityScaler(t *testing.T) artifact.Scaler {
	t.Helper()
	s, err := artifact.NewStandardScaler(ContinuousColumns, []float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(t, err)
	return s
}
