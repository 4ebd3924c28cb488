package churn

// Dummy indicators with the first category dropped: the reference value of
// each field is encoded as every related indicator being 0.
//
//	gender          reference Female
//	yes/no fields   reference No
//	contract        reference Month-to-month
//	payment method  reference Bank transfer (automatic)

// GenderIndicator returns the gender_Male indicator.
func GenderIndicator(g Gender) float64 {
	if g == GenderMale {
		return 1
	}
	return 0
}

// YesIndicator returns the <Field>_Yes indicator.
func YesIndicator(a YesNo) float64 {
	if a == Yes {
		return 1
	}
	return 0
}

// ContractSet holds the two contract indicators.
type ContractSet struct {
	OneYear float64
	TwoYear float64
}

// ContractIndicators maps a contract to its indicator set.
func ContractIndicators(c Contract) ContractSet {
	switch c {
	case OneYear:
		return ContractSet{OneYear: 1}
	case TwoYear:
		return ContractSet{TwoYear: 1}
	}
	return ContractSet{}
}

// PaymentSet holds the three payment method indicators.
type PaymentSet struct {
	CreditCard      float64
	ElectronicCheck float64
	MailedCheck     float64
}

// PaymentIndicators maps a payment method to its indicator set.
func PaymentIndicators(p PaymentMethod) PaymentSet {
	switch p {
	case CreditCardAuto:
		return PaymentSet{CreditCard: 1}
	case ElectronicCheck:
		return PaymentSet{ElectronicCheck: 1}
	case MailedCheck:
		return PaymentSet{MailedCheck: 1}
	}
	return PaymentSet{}
}
