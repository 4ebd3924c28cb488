package churn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allProfiles() []RawProfile {
	var out []RawProfile
	base := lowRiskProfile()
	for _, g := range GenderOptions {
		for _, s := range YesNoOptions {
			for _, c := range ContractOptions {
				for _, pm := range PaymentMethodOptions {
					for _, pb := range YesNoOptions {
						p := base
						p.Gender = g
						p.SeniorCitizen = s
						p.Partner = s
						p.Dependents = pb
						p.Contract = c
						p.PaperlessBilling = pb
						p.PaymentMethod = pm
						out = append(out, p)
					}
				}
			}
		}
	}
	return out
}

func TestEncodeColumnsMatchSchema(t *testing.T) {
	e := mustEncoder(t)
	for _, p := range allProfiles() {
		rec, err := e.Encode(p)
		require.NoError(t, err)
		assert.Equal(t, trainedColumns, rec.Columns())
		assert.Equal(t, len(trainedColumns), rec.Len())
		assert.False(t, rec.Scaled())
	}
}

func TestEncodeFollowsSchemaOrder(t *testing.T) {
	reversed := make([]string, len(trainedColumns))
	for i, c := range trainedColumns {
		reversed[len(trainedColumns)-1-i] = c
	}
	e := mustEncoder(t, reversed...)

	rec, err := e.Encode(highRiskProfile())
	require.NoError(t, err)
	assert.Equal(t, reversed, rec.Columns())

	values := rec.Values()
	assert.Equal(t, 0.0, values[0], "mailed check indicator")
	assert.Equal(t, 1.0, values[1], "electronic check indicator")
	assert.Equal(t, 95.0, values[len(values)-2], "monthly charges")
	assert.Equal(t, 1.0, values[len(values)-1], "tenure")
}

func TestEncodeValues(t *testing.T) {
	e := mustEncoder(t)
	rec, err := e.Encode(highRiskProfile())
	require.NoError(t, err)

	want := []float64{1, 95, 95, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0}
	assert.Equal(t, want, rec.Values())

	rec, err = e.Encode(lowRiskProfile())
	require.NoError(t, err)
	want = []float64{60, 50, 3000, 0, 0, 1, 1, 0, 1, 0, 0, 0, 0}
	assert.Equal(t, want, rec.Values())
}

func TestEncodeReferenceCategoriesAreAllZero(t *testing.T) {
	e := mustEncoder(t)
	p := lowRiskProfile()
	p.Gender = GenderFemale
	p.SeniorCitizen = No
	p.Partner = No
	p.Dependents = No
	p.Contract = MonthToMonth
	p.PaperlessBilling = No
	p.PaymentMethod = BankTransferAuto

	rec, err := e.Encode(p)
	require.NoError(t, err)

	for _, col := range trainedColumns[3:] {
		v, ok := rec.Value(col)
		require.True(t, ok)
		assert.Equal(t, 0.0, v, col)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	e := mustEncoder(t)
	for _, p := range allProfiles() {
		a, err := e.Encode(p)
		require.NoError(t, err)
		b, err := e.Encode(p)
		require.NoError(t, err)
		assert.Equal(t, a.Values(), b.Values())
	}
}

func TestEncodeDefaultsUnmappedColumnsToZero(t *testing.T) {
	cols := append([]string{"PhoneService_Yes"}, trainedColumns...)
	cols = append(cols, "InternetService_Fiber optic")
	e := mustEncoder(t, cols...)

	assert.Equal(t, []string{"PhoneService_Yes", "InternetService_Fiber optic"}, e.Unmapped())

	rec, err := e.Encode(highRiskProfile())
	require.NoError(t, err)
	assert.Equal(t, cols, rec.Columns())

	v, ok := rec.Value("PhoneService_Yes")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
	v, ok = rec.Value("InternetService_Fiber optic")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
	v, ok = rec.Value(ColTenure)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestEncodeDropsColumnsMissingFromSchema(t *testing.T) {
	e := mustEncoder(t, ColTenure, ColMonthlyCharges, ColTotalCharges, ColGenderMale)

	rec, err := e.Encode(highRiskProfile())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 95, 95, 1}, rec.Values())

	_, ok := rec.Value(ColPaymentElectronicCheck)
	assert.False(t, ok)
	assert.Empty(t, e.Unmapped())
}

func TestEncodeInvalidProfileProducesNoRecord(t *testing.T) {
	e := mustEncoder(t)
	p := highRiskProfile()
	p.Contract = ContractUnset

	rec, err := e.Encode(p)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, rec)
}

func TestKnownColumnsMatchTrainedColumns(t *testing.T) {
	assert.ElementsMatch(t, trainedColumns, KnownColumns())
}
