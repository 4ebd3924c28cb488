package churn

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input bounds for the numeric answers.
const (
	MinTenureMonths   = 0
	MaxTenureMonths   = 72
	MinMonthlyCharges = 0.0
	MaxMonthlyCharges = 200.0
	MinTotalCharges   = 0.0
	MaxTotalCharges   = 10000.0
)

// Field names used by ParseProfile and in InputError.Field.
const (
	FieldGender           = "gender"
	FieldSeniorCitizen    = "senior_citizen"
	FieldPartner          = "partner"
	FieldDependents       = "dependents"
	FieldContract         = "contract"
	FieldPaperlessBilling = "paperless_billing"
	FieldPaymentMethod    = "payment_method"
	FieldTenure           = "tenure"
	FieldMonthlyCharges   = "monthly_charges"
	FieldTotalCharges     = "total_charges"
)

var errUnanswered = errors.New("no answer given")

// Gender is the customer's recorded gender. The zero value is unanswered.
type Gender int

const (
	GenderUnset Gender = iota
	GenderMale
	GenderFemale
)

// GenderOptions lists the answerable values in display order.
var GenderOptions = []Gender{GenderMale, GenderFemale}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return ""
}

// YesNo is a binary answer. The zero value is unanswered.
type YesNo int

const (
	YesNoUnset YesNo = iota
	Yes
	No
)

// YesNoOptions lists the answerable values in display order.
var YesNoOptions = []YesNo{Yes, No}

func (a YesNo) String() string {
	switch a {
	case Yes:
		return "Yes"
	case No:
		return "No"
	}
	return ""
}

// YesNoFromBool converts a boolean answer.
func YesNoFromBool(b bool) YesNo {
	if b {
		return Yes
	}
	return No
}

// Contract is the customer's contract term. The zero value is unanswered.
type Contract int

const (
	ContractUnset Contract = iota
	MonthToMonth
	OneYear
	TwoYear
)

// ContractOptions lists the answerable values in display order.
var ContractOptions = []Contract{MonthToMonth, OneYear, TwoYear}

func (c Contract) String() string {
	switch c {
	case MonthToMonth:
		return "Month-to-month"
	case OneYear:
		return "One year"
	case TwoYear:
		return "Two year"
	}
	return ""
}

func (c Contract) ident() string {
	switch c {
	case MonthToMonth:
		return "MonthToMonth"
	case OneYear:
		return "OneYear"
	case TwoYear:
		return "TwoYear"
	}
	return ""
}

// PaymentMethod is how the customer pays. The zero value is unanswered.
type PaymentMethod int

const (
	PaymentUnset PaymentMethod = iota
	ElectronicCheck
	MailedCheck
	BankTransferAuto
	CreditCardAuto
)

// PaymentMethodOptions lists the answerable values in display order.
var PaymentMethodOptions = []PaymentMethod{ElectronicCheck, MailedCheck, BankTransferAuto, CreditCardAuto}

func (p PaymentMethod) String() string {
	switch p {
	case ElectronicCheck:
		return "Electronic check"
	case MailedCheck:
		return "Mailed check"
	case BankTransferAuto:
		return "Bank transfer (automatic)"
	case CreditCardAuto:
		return "Credit card (automatic)"
	}
	return ""
}

func (p PaymentMethod) ident() string {
	switch p {
	case ElectronicCheck:
		return "ElectronicCheck"
	case MailedCheck:
		return "MailedCheck"
	case BankTransferAuto:
		return "BankTransferAuto"
	case CreditCardAuto:
		return "CreditCardAuto"
	}
	return ""
}

// RawProfile holds one customer's answers as captured by the form.
type RawProfile struct {
	Gender           Gender
	SeniorCitizen    YesNo
	Partner          YesNo
	Dependents       YesNo
	Contract         Contract
	PaperlessBilling YesNo
	PaymentMethod    PaymentMethod
	TenureMonths     int
	MonthlyCharges   float64
	TotalCharges     float64
}

// Validate reports the first unanswered or out-of-range field as an
// *InputError.
func (p RawProfile) Validate() error {
	switch p.Gender {
	case GenderMale, GenderFemale:
	case GenderUnset:
		return &InputError{Field: FieldGender, Err: errUnanswered}
	default:
		return &InputError{Field: FieldGender, Err: fmt.Errorf("unknown value %d", p.Gender)}
	}

	for _, yn := range []struct {
		field string
		v     YesNo
	}{
		{FieldSeniorCitizen, p.SeniorCitizen},
		{FieldPartner, p.Partner},
		{FieldDependents, p.Dependents},
		{FieldPaperlessBilling, p.PaperlessBilling},
	} {
		switch yn.v {
		case Yes, No:
		case YesNoUnset:
			return &InputError{Field: yn.field, Err: errUnanswered}
		default:
			return &InputError{Field: yn.field, Err: fmt.Errorf("unknown value %d", yn.v)}
		}
	}

	switch p.Contract {
	case MonthToMonth, OneYear, TwoYear:
	case ContractUnset:
		return &InputError{Field: FieldContract, Err: errUnanswered}
	default:
		return &InputError{Field: FieldContract, Err: fmt.Errorf("unknown value %d", p.Contract)}
	}

	switch p.PaymentMethod {
	case ElectronicCheck, MailedCheck, BankTransferAuto, CreditCardAuto:
	case PaymentUnset:
		return &InputError{Field: FieldPaymentMethod, Err: errUnanswered}
	default:
		return &InputError{Field: FieldPaymentMethod, Err: fmt.Errorf("unknown value %d", p.PaymentMethod)}
	}

	if p.TenureMonths < MinTenureMonths || p.TenureMonths > MaxTenureMonths {
		return &InputError{Field: FieldTenure, Err: fmt.Errorf("%d outside [%d, %d]", p.TenureMonths, MinTenureMonths, MaxTenureMonths)}
	}
	if err := checkRange(p.MonthlyCharges, MinMonthlyCharges, MaxMonthlyCharges); err != nil {
		return &InputError{Field: FieldMonthlyCharges, Err: err}
	}
	if err := checkRange(p.TotalCharges, MinTotalCharges, MaxTotalCharges); err != nil {
		return &InputError{Field: FieldTotalCharges, Err: err}
	}
	return nil
}

func checkRange(v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%v is not a finite number", v)
	}
	if v < lo || v > hi {
		return fmt.Errorf("%v outside [%v, %v]", v, lo, hi)
	}
	return nil
}

// ParseProfile builds a RawProfile from textual answers keyed by the Field*
// constants. Categorical answers accept the display label ("One year") or
// the identifier ("OneYear"), case-insensitively. Every field is required.
func ParseProfile(answers map[string]string) (RawProfile, error) {
	var (
		p   RawProfile
		err error
	)

	get := func(field string) (string, error) {
		v := strings.TrimSpace(answers[field])
		if v == "" {
			return "", &InputError{Field: field, Err: errUnanswered}
		}
		return v, nil
	}

	v, err := get(FieldGender)
	if err != nil {
		return RawProfile{}, err
	}
	if p.Gender, err = ParseGender(v); err != nil {
		return RawProfile{}, &InputError{Field: FieldGender, Err: err}
	}

	for _, yn := range []struct {
		field string
		dst   *YesNo
	}{
		{FieldSeniorCitizen, &p.SeniorCitizen},
		{FieldPartner, &p.Partner},
		{FieldDependents, &p.Dependents},
		{FieldPaperlessBilling, &p.PaperlessBilling},
	} {
		v, err := get(yn.field)
		if err != nil {
			return RawProfile{}, err
		}
		if *yn.dst, err = ParseYesNo(v); err != nil {
			return RawProfile{}, &InputError{Field: yn.field, Err: err}
		}
	}

	if v, err = get(FieldContract); err != nil {
		return RawProfile{}, err
	}
	if p.Contract, err = ParseContract(v); err != nil {
		return RawProfile{}, &InputError{Field: FieldContract, Err: err}
	}

	if v, err = get(FieldPaymentMethod); err != nil {
		return RawProfile{}, err
	}
	if p.PaymentMethod, err = ParsePaymentMethod(v); err != nil {
		return RawProfile{}, &InputError{Field: FieldPaymentMethod, Err: err}
	}

	if v, err = get(FieldTenure); err != nil {
		return RawProfile{}, err
	}
	if p.TenureMonths, err = strconv.Atoi(v); err != nil {
		return RawProfile{}, &InputError{Field: FieldTenure, Err: fmt.Errorf("%q is not a whole number of months", v)}
	}

	for _, num := range []struct {
		field string
		dst   *float64
	}{
		{FieldMonthlyCharges, &p.MonthlyCharges},
		{FieldTotalCharges, &p.TotalCharges},
	} {
		v, err := get(num.field)
		if err != nil {
			return RawProfile{}, err
		}
		if *num.dst, err = strconv.ParseFloat(v, 64); err != nil {
			return RawProfile{}, &InputError{Field: num.field, Err: fmt.Errorf("%q is not a number", v)}
		}
	}

	if err := p.Validate(); err != nil {
		return RawProfile{}, err
	}
	return p, nil
}

// normalize folds case and drops separators so "Month-to-month",
// "month_to_month" and "MonthToMonth" compare equal.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseGender parses "Male" or "Female".
func ParseGender(s string) (Gender, error) {
	n := normalize(s)
	for _, g := range GenderOptions {
		if n == normalize(g.String()) {
			return g, nil
		}
	}
	return GenderUnset, fmt.Errorf("unknown gender %q", s)
}

// ParseYesNo parses yes/no answers, also accepting y/n, true/false and 1/0.
func ParseYesNo(s string) (YesNo, error) {
	switch normalize(s) {
	case "yes", "y", "true", "1":
		return Yes, nil
	case "no", "n", "false", "0":
		return No, nil
	}
	return YesNoUnset, fmt.Errorf("expected yes or no, got %q", s)
}

// ParseContract parses a contract label or identifier.
func ParseContract(s string) (Contract, error) {
	n := normalize(s)
	for _, c := range ContractOptions {
		if n == normalize(c.String()) || n == normalize(c.ident()) {
			return c, nil
		}
	}
	return ContractUnset, fmt.Errorf("unknown contract %q", s)
}

// ParsePaymentMethod parses a payment method label or identifier.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	n := normalize(s)
	for _, p := range PaymentMethodOptions {
		if n == normalize(p.String()) || n == normalize(p.ident()) {
			return p, nil
		}
	}
	return PaymentUnset, fmt.Errorf("unknown payment method %q", s)
}
