package dashboard

import (
	"errors"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/churnboard/internal/churn"
	"github.com/abhisek/churnboard/internal/router"
	"github.com/abhisek/churnboard/internal/screen"
	"github.com/abhisek/churnboard/internal/screens/modelinfo"
	"github.com/abhisek/churnboard/internal/ui/components"
	"github.com/abhisek/churnboard/internal/ui/layout"
)

// Predictor scores one customer profile.
type Predictor interface {
	Predict(churn.RawProfile) (churn.PredictionResult, error)
}

// Defaults are the initial values of the numeric fields.
type Defaults struct {
	TenureMonths   int
	MonthlyCharges float64
	TotalCharges   float64
}

// field identifies a focusable form element, in focus order.
type field int

const (
	fieldGender field = iota
	fieldSenior
	fieldPartner
	fieldDependents
	fieldContract
	fieldPaperless
	fieldPayment
	fieldTenure
	fieldMonthly
	fieldTotal
	fieldPredict

	numFields
)

const (
	numChoices = int(fieldTenure)
	numNumbers = int(fieldPredict - fieldTenure)
)

func (f field) isChoice() bool { return f < fieldTenure }
func (f field) isNumber() bool { return f >= fieldTenure && f < fieldPredict }

// profileFields maps each input element to its churn.ParseProfile key.
var profileFields = [fieldPredict]string{
	fieldGender:     churn.FieldGender,
	fieldSenior:     churn.FieldSeniorCitizen,
	fieldPartner:    churn.FieldPartner,
	fieldDependents: churn.FieldDependents,
	fieldContract:   churn.FieldContract,
	fieldPaperless:  churn.FieldPaperlessBilling,
	fieldPayment:    churn.FieldPaymentMethod,
	fieldTenure:     churn.FieldTenure,
	fieldMonthly:    churn.FieldMonthlyCharges,
	fieldTotal:      churn.FieldTotalCharges,
}

// DashboardScreen is the single-page churn form with its result area.
type DashboardScreen struct {
	predictor Predictor
	info      churn.ModelInfo

	choices [numChoices]components.Choice
	numbers [numNumbers]components.NumberInput
	button  components.Button
	focus   field

	pending bool
	result  *churn.PredictionResult
	failed  bool
	detail  string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard. info is shown on the model screen.
func New(p Predictor, info churn.ModelInfo, d Defaults) *DashboardScreen {
	s := &DashboardScreen{
		predictor: p,
		info:      info,
	}

	s.choices[fieldGender] = components.NewChoice("Gender", labels(churn.GenderOptions), 0, components.ChoiceRadio)
	s.choices[fieldSenior] = components.NewChoice("Senior Citizen", labels(churn.YesNoOptions), 0, components.ChoiceRadio)
	s.choices[fieldPartner] = components.NewChoice("Has Partner?", labels(churn.YesNoOptions), 0, components.ChoiceRadio)
	s.choices[fieldDependents] = components.NewChoice("Has Dependents?", labels(churn.YesNoOptions), 0, components.ChoiceRadio)
	s.choices[fieldContract] = components.NewChoice("Contract Type", labels(churn.ContractOptions), 0, components.ChoiceSelect)
	s.choices[fieldPaperless] = components.NewChoice("Paperless Billing?", labels(churn.YesNoOptions), 0, components.ChoiceRadio)
	s.choices[fieldPayment] = components.NewChoice("Payment Method", labels(churn.PaymentMethodOptions), 0, components.ChoiceSelect)

	*s.number(fieldTenure) = components.NewNumberInput("Tenure (months)", strconv.Itoa(d.TenureMonths), false, 3)
	s.number(fieldTenure).Hint = "0-72"
	*s.number(fieldMonthly) = components.NewNumberInput("Monthly Charges", formatAmount(d.MonthlyCharges), true, 8)
	s.number(fieldMonthly).Hint = "0-200"
	*s.number(fieldTotal) = components.NewNumberInput("Total Charges", formatAmount(d.TotalCharges), true, 8)
	s.number(fieldTotal).Hint = "0-10000"

	s.button = components.NewButton("Predict Now", s.trigger)
	s.setFocus(fieldGender)
	return s
}

func labels[T interface{ String() string }](opts []T) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.String()
	}
	return out
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// number returns the numeric input for f. f must satisfy isNumber.
func (s *DashboardScreen) number(f field) *components.NumberInput {
	return &s.numbers[f-fieldTenure]
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Title() string {
	return "Churn Prediction"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
	}
	if s.focus.isChoice() {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+P", Description: "Predict"},
	)
	if !s.focus.isNumber() {
		hints = append(hints, layout.KeyHint{Key: "M", Description: "Model info"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionMsg:
		s.handlePrediction(msg)
		return s, nil

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	// Cursor blink and similar messages belong to the focused input.
	if s.focus.isNumber() {
		var cmd tea.Cmd
		n := s.number(s.focus)
		*n, cmd = n.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return s.setFocus((s.focus + 1) % numFields)
	case "shift+tab", "up":
		return s.setFocus((s.focus + numFields - 1) % numFields)
	case "ctrl+p":
		return s.trigger()
	case "enter":
		if s.focus != fieldPredict {
			return s.setFocus(s.focus + 1)
		}
	case "m":
		if !s.focus.isNumber() {
			info := modelinfo.New(s.info)
			return func() tea.Msg { return router.PushScreenMsg{Screen: info} }
		}
	}

	var cmd tea.Cmd
	switch {
	case s.focus.isChoice():
		s.choices[s.focus], cmd = s.choices[s.focus].Update(msg)
	case s.focus.isNumber():
		n := s.number(s.focus)
		*n, cmd = n.Update(msg)
	case s.focus == fieldPredict:
		s.button, cmd = s.button.Update(msg)
	}
	return cmd
}

// setFocus moves focus to f and returns the focused input's command.
func (s *DashboardScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	for i := range s.choices {
		s.choices[i].Focused = field(i) == f
	}
	var cmd tea.Cmd
	for i := range s.numbers {
		if field(i)+fieldTenure == f {
			cmd = s.numbers[i].Focus()
		} else {
			s.numbers[i].Blur()
		}
	}
	s.button.Focused = f == fieldPredict
	return cmd
}

// answers collects the current form values keyed for churn.ParseProfile.
func (s *DashboardScreen) answers() map[string]string {
	out := make(map[string]string, fieldPredict)
	for i := range s.choices {
		out[profileFields[i]] = s.choices[i].Value()
	}
	for i := range s.numbers {
		out[profileFields[field(i)+fieldTenure]] = s.numbers[i].Value()
	}
	return out
}

// trigger starts one prediction. It is a no-op while one is pending.
func (s *DashboardScreen) trigger() tea.Cmd {
	if s.pending {
		return nil
	}
	s.pending = true
	s.button.Disabled = true

	answers := s.answers()
	p := s.predictor
	return func() tea.Msg {
		profile, err := churn.ParseProfile(answers)
		if err != nil {
			return predictionMsg{Err: err}
		}
		res, err := p.Predict(profile)
		return predictionMsg{Result: res, Err: err}
	}
}

func (s *DashboardScreen) handlePrediction(msg predictionMsg) {
	s.pending = false
	s.button.Disabled = false

	if msg.Err != nil {
		s.result = nil
		s.failed = true
		s.detail = s.describe(msg.Err)
		return
	}

	r := msg.Result
	s.result = &r
	s.failed = false
	s.detail = ""
}

// describe names the offending field for input errors and marks it. Other
// failures get no detail beyond the generic notice.
func (s *DashboardScreen) describe(err error) string {
	var inErr *churn.InputError
	if !errors.As(err, &inErr) {
		return ""
	}
	for f := fieldTenure; f < fieldPredict; f++ {
		if profileFields[f] == inErr.Field {
			n := s.number(f)
			n.MarkInvalid()
			return "Check " + n.Label + " (" + n.Hint + ")."
		}
	}
	for f := fieldGender; f < fieldTenure; f++ {
		if profileFields[f] == inErr.Field {
			return "Check " + s.choices[f].Label + "."
		}
	}
	return ""
}
