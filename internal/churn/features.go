package churn

// Column names produced by the encoder. They match the names the training
// job generated with drop-first dummy encoding.
const (
	ColTenure                 = "tenure"
	ColMonthlyCharges         = "MonthlyCharges"
	ColTotalCharges           = "TotalCharges"
	ColGenderMale             = "gender_Male"
	ColSeniorCitizenYes       = "SeniorCitizen_Yes"
	ColPartnerYes             = "Partner_Yes"
	ColDependentsYes          = "Dependents_Yes"
	ColContractOneYear        = "Contract_One year"
	ColContractTwoYear        = "Contract_Two year"
	ColPaperlessBillingYes    = "PaperlessBilling_Yes"
	ColPaymentCreditCard      = "PaymentMethod_Credit card (automatic)"
	ColPaymentElectronicCheck = "PaymentMethod_Electronic check"
	ColPaymentMailedCheck     = "PaymentMethod_Mailed check"
)

// ContinuousColumns are the columns the scaler was fitted on, in its order.
var ContinuousColumns = []string{ColTenure, ColMonthlyCharges, ColTotalCharges}

// Features is the fixed-shape encoding of a RawProfile before it is laid out
// in schema order. Indicator fields are 0 or 1.
type Features struct {
	Tenure         float64
	MonthlyCharges float64
	TotalCharges   float64

	GenderMale             float64
	SeniorCitizenYes       float64
	PartnerYes             float64
	DependentsYes          float64
	ContractOneYear        float64
	ContractTwoYear        float64
	PaperlessBillingYes    float64
	PaymentCreditCard      float64
	PaymentElectronicCheck float64
	PaymentMailedCheck     float64
}

// featureColumns binds each known column name to its Features field.
var featureColumns = []struct {
	name string
	get  func(*Features) float64
}{
	{ColTenure, func(f *Features) float64 { return f.Tenure }},
	{ColMonthlyCharges, func(f *Features) float64 { return f.MonthlyCharges }},
	{ColTotalCharges, func(f *Features) float64 { return f.TotalCharges }},
	{ColGenderMale, func(f *Features) float64 { return f.GenderMale }},
	{ColSeniorCitizenYes, func(f *Features) float64 { return f.SeniorCitizenYes }},
	{ColPartnerYes, func(f *Features) float64 { return f.PartnerYes }},
	{ColDependentsYes, func(f *Features) float64 { return f.DependentsYes }},
	{ColContractOneYear, func(f *Features) float64 { return f.ContractOneYear }},
	{ColContractTwoYear, func(f *Features) float64 { return f.ContractTwoYear }},
	{ColPaperlessBillingYes, func(f *Features) float64 { return f.PaperlessBillingYes }},
	{ColPaymentCreditCard, func(f *Features) float64 { return f.PaymentCreditCard }},
	{ColPaymentElectronicCheck, func(f *Features) float64 { return f.PaymentElectronicCheck }},
	{ColPaymentMailedCheck, func(f *Features) float64 { return f.PaymentMailedCheck }},
}

// KnownColumns returns every column the encoder can derive, in a stable order.
func KnownColumns() []string {
	out := make([]string, len(featureColumns))
	for i, fc := range featureColumns {
		out[i] = fc.name
	}
	return out
}

// FeaturesFrom derives the feature struct from a validated profile.
func FeaturesFrom(p RawProfile) Features {
	contract := ContractIndicators(p.Contract)
	payment := PaymentIndicators(p.PaymentMethod)
	return Features{
		Tenure:         float64(p.TenureMonths),
		MonthlyCharges: p.MonthlyCharges,
		TotalCharges:   p.TotalCharges,

		GenderMale:             GenderIndicator(p.Gender),
		SeniorCitizenYes:       YesIndicator(p.SeniorCitizen),
		PartnerYes:             YesIndicator(p.Partner),
		DependentsYes:          YesIndicator(p.Dependents),
		ContractOneYear:        contract.OneYear,
		ContractTwoYear:        contract.TwoYear,
		PaperlessBillingYes:    YesIndicator(p.PaperlessBilling),
		PaymentCreditCard:      payment.CreditCard,
		PaymentElectronicCheck: payment.ElectronicCheck,
		PaymentMailedCheck:     payment.MailedCheck,
	}
}
