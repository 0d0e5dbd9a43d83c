// Package goalform drives the three-step goal creation wizard.
package goalform

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalmath"
)

// Step is a state of the wizard
type Step string

const (
	StepHomeDetails Step = "HOME_DETAILS"
	StepSavingsPlan Step = "SAVINGS_PLAN"
	StepReview      Step = "REVIEW"
	StepSubmitted   Step = "SUBMITTED"
	StepCancelled   Step = "CANCELLED"
)

// Fields holds everything the user has entered so far
type Fields struct {
	Title               string
	HomePrice           float64
	DownPaymentPercent  int
	Location            string
	TargetDate          time.Time
	MonthlyContribution float64
	Description         string
}

func emptyFields() Fields {
	return Fields{DownPaymentPercent: domain.DefaultDownPaymentPercent}
}

// FieldViolation describes why one field blocks a transition
type FieldViolation struct {
	Field       string
	Description string
}

// ValidationError is returned when the current step's fields do not pass its gate
type ValidationError struct {
	Step       Step
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Description)
	}
	return fmt.Sprintf("invalid %s: %s", strings.ToLower(string(e.Step)), strings.Join(parts, "; "))
}

// Unwrap lets callers match validation failures with errors.Is(err, domain.ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// Machine is the wizard state. It is not safe for concurrent use; see Drafts.
type Machine struct {
	step   Step
	fields Fields
	now    func() time.Time
	newID  func() uuid.UUID
}

// Option configures a Machine
type Option func(*Machine)

// WithClock sets the time source used for date gates and submission timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// WithIDGenerator sets how submitted goals get their ID
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(m *Machine) {
		m.newID = newID
	}
}

// NewMachine creates a wizard at the home details step with empty fields
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		step:   StepHomeDetails,
		fields: emptyFields(),
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Step returns the current state
func (m *Machine) Step() Step {
	return m.step
}

// Fields returns a copy of the entered values
func (m *Machine) Fields() Fields {
	return m.fields
}

func (m *Machine) editable() error {
	if m.step == StepCancelled {
		return fmt.Errorf("%w: draft was cancelled", domain.ErrFormClosed)
	}
	return nil
}

// Update applies an edit to the entered values. Only the fields that belong
// to the current step may change; earlier steps are edited by going back.
// Gates are checked when moving forward, except the down payment which must
// always stay within domain.DownPaymentPercents.
func (m *Machine) Update(edit func(f *Fields)) error {
	if err := m.editable(); err != nil {
		return err
	}
	next := m.fields
	edit(&next)

	var violations []FieldViolation
	for _, name := range changedFields(m.fields, next) {
		if stepOf[name] != m.step {
			violations = append(violations, FieldViolation{
				Field:       name,
				Description: fmt.Sprintf("is not editable at %s", strings.ToLower(string(m.step))),
			})
		}
	}
	if !domain.IsValidDownPaymentPercent(next.DownPaymentPercent) {
		violations = append(violations, FieldViolation{
			Field:       "down_payment_percent",
			Description: fmt.Sprintf("%d is not one of %v", next.DownPaymentPercent, domain.DownPaymentPercents),
		})
	}
	if len(violations) > 0 {
		return &ValidationError{Step: m.step, Violations: violations}
	}

	m.fields = next
	return nil
}

var stepOf = map[string]Step{
	"title":                StepHomeDetails,
	"home_price":           StepHomeDetails,
	"down_payment_percent": StepHomeDetails,
	"location":             StepHomeDetails,
	"target_date":          StepSavingsPlan,
	"monthly_contribution": StepSavingsPlan,
	"description":          StepReview,
}

func changedFields(before, after Fields) []string {
	var changed []string
	if before.Title != after.Title {
		changed = append(changed, "title")
	}
	if before.HomePrice != after.HomePrice {
		changed = append(changed, "home_price")
	}
	if before.DownPaymentPercent != after.DownPaymentPercent {
		changed = append(changed, "down_payment_percent")
	}
	if before.Location != after.Location {
		changed = append(changed, "location")
	}
	if !before.TargetDate.Equal(after.TargetDate) {
		changed = append(changed, "target_date")
	}
	if before.MonthlyContribution != after.MonthlyContribution {
		changed = append(changed, "monthly_contribution")
	}
	if before.Description != after.Description {
		changed = append(changed, "description")
	}
	return changed
}

// Next advances one step when the current step's fields pass its gate.
// On failure the step is unchanged and a *ValidationError is returned.
func (m *Machine) Next() (Step, error) {
	if err := m.editable(); err != nil {
		return m.step, err
	}

	var violations []FieldViolation
	var next Step
	switch m.step {
	case StepHomeDetails:
		violations = m.homeDetailsViolations()
		next = StepSavingsPlan
	case StepSavingsPlan:
		violations = m.savingsPlanViolations()
		next = StepReview
	case StepReview:
		return m.step, fmt.Errorf("%w: review is the last step, submit instead", domain.ErrInvalidTransition)
	default:
		return m.step, fmt.Errorf("%w: cannot advance from %s", domain.ErrInvalidTransition, m.step)
	}

	if len(violations) > 0 {
		return m.step, &ValidationError{Step: m.step, Violations: violations}
	}
	m.step = next
	return m.step, nil
}

// Back returns to the previous step, keeping every entered value
func (m *Machine) Back() (Step, error) {
	if err := m.editable(); err != nil {
		return m.step, err
	}
	switch m.step {
	case StepSavingsPlan:
		m.step = StepHomeDetails
	case StepReview:
		m.step = StepSavingsPlan
	default:
		return m.step, fmt.Errorf("%w: cannot go back from %s", domain.ErrInvalidTransition, m.step)
	}
	return m.step, nil
}

// Cancel discards all entered values. The machine stays closed until Reset.
func (m *Machine) Cancel() Step {
	m.step = StepCancelled
	m.fields = emptyFields()
	return m.step
}

// Reset starts a fresh draft at the home details step
func (m *Machine) Reset() {
	m.step = StepHomeDetails
	m.fields = emptyFields()
}

// Submit assembles the goal from the reviewed fields, passing through
// StepSubmitted, and resets the machine to an empty home details step.
// It is only allowed from the review step.
func (m *Machine) Submit() (*domain.Goal, error) {
	if err := m.editable(); err != nil {
		return nil, err
	}
	if m.step != StepReview {
		return nil, fmt.Errorf("%w: submit requires the review step, current step is %s", domain.ErrInvalidTransition, m.step)
	}

	f := m.fields
	goal := &domain.Goal{
		ID:                  m.newID(),
		Title:               strings.TrimSpace(f.Title),
		HomePrice:           f.HomePrice,
		DownPaymentPercent:  f.DownPaymentPercent,
		CurrentAmount:       0,
		MonthlyContribution: f.MonthlyContribution,
		TargetDate:          f.TargetDate,
		Status:              domain.GoalStatusActive,
		Location:            strings.TrimSpace(f.Location),
		Description:         f.Description,
		CreatedAt:           m.now(),
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	m.Reset()
	return goal, nil
}

// Preview returns the live derived values for the entered fields.
// Values that cannot be derived yet are left at zero.
func (m *Machine) Preview() Preview {
	f := m.fields
	var p Preview

	target, err := goalmath.ComputeTargetAmount(f.HomePrice, f.DownPaymentPercent)
	if err != nil {
		return p
	}
	p.TargetAmount = target

	months, err := goalmath.ComputeMonthsToGoal(0, target, f.MonthlyContribution)
	if err != nil {
		return p
	}
	p.MonthsToGoal = months
	p.TotalInvestment = f.MonthlyContribution * float64(months)
	p.BiweeklyContribution = f.MonthlyContribution / 2
	p.ProjectedDate = goalmath.ComputeProjectedDate(m.now(), months)
	return p
}

// Preview holds the values shown beside the form while the user types.
// ProjectedDate and the user's TargetDate are independent.
type Preview struct {
	TargetAmount         float64
	MonthsToGoal         int
	TotalInvestment      float64
	BiweeklyContribution float64
	ProjectedDate        time.Time
}

func (m *Machine) homeDetailsViolations() []FieldViolation {
	var v []FieldViolation
	if strings.TrimSpace(m.fields.Title) == "" {
		v = append(v, FieldViolation{Field: "title", Description: "is required"})
	}
	if m.fields.HomePrice <= 0 {
		v = append(v, FieldViolation{Field: "home_price", Description: "must be positive"})
	}
	if strings.TrimSpace(m.fields.Location) == "" {
		v = append(v, FieldViolation{Field: "location", Description: "is required"})
	}
	return v
}

func (m *Machine) savingsPlanViolations() []FieldViolation {
	var v []FieldViolation
	if m.fields.TargetDate.IsZero() {
		v = append(v, FieldViolation{Field: "target_date", Description: "is required"})
	} else if day(m.fields.TargetDate).Before(day(m.now())) {
		v = append(v, FieldViolation{Field: "target_date", Description: "must be today or later"})
	}
	if m.fields.MonthlyContribution <= 0 {
		v = append(v, FieldViolation{Field: "monthly_contribution", Description: "must be positive"})
	} else if target, err := goalmath.ComputeTargetAmount(m.fields.HomePrice, m.fields.DownPaymentPercent); err == nil {
		if _, err := goalmath.ComputeMonthsToGoal(0, target, m.fields.MonthlyContribution); err != nil {
			v = append(v, FieldViolation{
				Field:       "monthly_contribution",
				Description: fmt.Sprintf("is too small to reach the target within %d months", goalmath.MaxMonthsToGoal),
			})
		}
	}
	return v
}

// day truncates t to its calendar date, compared in UTC
func day(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
