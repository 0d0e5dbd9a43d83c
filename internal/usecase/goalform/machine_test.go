package goalform

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	fixedID  = uuid.MustParse("6f1c2d9e-4b0a-4c55-9a1e-0d6a4f1b2c3d")
)

func newTestMachine() *Machine {
	return NewMachine(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() uuid.UUID { return fixedID }),
	)
}

func fillHomeDetails(t *testing.T, m *Machine) {
	t.Helper()
	require.NoError(t, m.Update(func(f *Fields) {
		f.Title = "Primary Home in Austin"
		f.HomePrice = 400000
		f.DownPaymentPercent = 20
		f.Location = "Austin, TX"
	}))
}

func fillSavingsPlan(t *testing.T, m *Machine) {
	t.Helper()
	require.NoError(t, m.Update(func(f *Fields) {
		f.TargetDate = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		f.MonthlyContribution = 2500
	}))
}

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestNewMachine_StartsEmptyAtHomeDetails(t *testing.T) {
	m := newTestMachine()

	assert.Equal(t, StepHomeDetails, m.Step())
	assert.Equal(t, Fields{DownPaymentPercent: 20}, m.Fields())
}

func TestNext_HomeDetailsGate(t *testing.T) {
	tests := []struct {
		name       string
		edit       func(f *Fields)
		wantFields []string
	}{
		{
			name:       "empty title is rejected",
			edit:       func(f *Fields) { f.HomePrice = 400000; f.Location = "Austin, TX" },
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace title is rejected",
			edit:       func(f *Fields) { f.Title = "  "; f.HomePrice = 400000; f.Location = "Austin, TX" },
			wantFields: []string{"title"},
		},
		{
			name:       "missing home price and location",
			edit:       func(f *Fields) { f.Title = "Home" },
			wantFields: []string{"home_price", "location"},
		},
		{
			name:       "nothing entered",
			edit:       func(f *Fields) {},
			wantFields: []string{"title", "home_price", "location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			require.NoError(t, m.Update(tt.edit))

			step, err := m.Next()

			assert.Equal(t, StepHomeDetails, step, "state must remain at step 1")
			assert.Equal(t, StepHomeDetails, m.Step())
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tt.wantFields, violationFields(t, err))
		})
	}
}

func TestNext_SavingsPlanGate(t *testing.T) {
	tests := []struct {
		name       string
		edit       func(f *Fields)
		wantFields []string
	}{
		{
			name:       "missing date and contribution",
			edit:       func(f *Fields) {},
			wantFields: []string{"target_date", "monthly_contribution"},
		},
		{
			name: "date in the past",
			edit: func(f *Fields) {
				f.TargetDate = fixedNow.AddDate(0, 0, -1)
				f.MonthlyContribution = 2500
			},
			wantFields: []string{"target_date"},
		},
		{
			name: "zero contribution",
			edit: func(f *Fields) {
				f.TargetDate = fixedNow.AddDate(1, 0, 0)
			},
			wantFields: []string{"monthly_contribution"},
		},
		{
			name: "contribution too small to ever reach the target",
			edit: func(f *Fields) {
				f.TargetDate = fixedNow.AddDate(1, 0, 0)
				f.MonthlyContribution = 1
			},
			wantFields: []string{"monthly_contribution"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			fillHomeDetails(t, m)
			_, err := m.Next()
			require.NoError(t, err)
			require.NoError(t, m.Update(tt.edit))

			step, err := m.Next()

			assert.Equal(t, StepSavingsPlan, step)
			assert.Equal(t, tt.wantFields, violationFields(t, err))
		})
	}
}

func TestNext_TargetDateTodayIsAllowed(t *testing.T) {
	m := newTestMachine()
	fillHomeDetails(t, m)
	_, err := m.Next()
	require.NoError(t, err)

	require.NoError(t, m.Update(func(f *Fields) {
		f.TargetDate = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
		f.MonthlyContribution = 100
	}))

	step, err := m.Next()
	require.NoError(t, err)
	assert.Equal(t, StepReview, step)
}

func TestBack_PreservesEnteredValues(t *testing.T) {
	m := newTestMachine()
	fillHomeDetails(t, m)
	_, err := m.Next()
	require.NoError(t, err)
	fillSavingsPlan(t, m)
	_, err = m.Next()
	require.NoError(t, err)
	before := m.Fields()

	step, err := m.Back()
	require.NoError(t, err)
	assert.Equal(t, StepSavingsPlan, step)

	step, err = m.Back()
	require.NoError(t, err)
	assert.Equal(t, StepHomeDetails, step)
	assert.Equal(t, before, m.Fields())

	_, err = m.Back()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "cannot go back from the first step")
	assert.Equal(t, StepHomeDetails, m.Step())
}

func TestUpdate_OnlyCurrentStepFieldsAreEditable(t *testing.T) {
	m := newTestMachine()
	fillHomeDetails(t, m)
	_, err := m.Next()
	require.NoError(t, err)

	err = m.Update(func(f *Fields) { f.Title = "" })

	assert.Equal(t, []string{"title"}, violationFields(t, err))
	assert.Equal(t, "Primary Home in Austin", m.Fields().Title, "rejected edit must not apply")
}

func TestUpdate_RejectsDownPaymentOutsideTheSet(t *testing.T) {
	m := newTestMachine()

	err := m.Update(func(f *Fields) { f.DownPaymentPercent = 12 })

	assert.Equal(t, []string{"down_payment_percent"}, violationFields(t, err))
	assert.Equal(t, 20, m.Fields().DownPaymentPercent)
}

func TestSubmit_EmitsActiveGoalAndResets(t *testing.T) {
	m := newTestMachine()
	fillHomeDetails(t, m)
	_, err := m.Next()
	require.NoError(t, err)
	fillSavingsPlan(t, m)
	_, err = m.Next()
	require.NoError(t, err)
	require.NoError(t, m.Update(func(f *Fields) { f.Description = "Close to work" }))

	goal, err := m.Submit()

	require.NoError(t, err)
	assert.Equal(t, fixedID, goal.ID)
	assert.Equal(t, "Primary Home in Austin", goal.Title)
	assert.Equal(t, 80000.0, goal.TargetAmount())
	assert.Equal(t, 0.0, goal.CurrentAmount)
	assert.Equal(t, domain.GoalStatusActive, goal.Status)
	assert.Equal(t, 2500.0, goal.MonthlyContribution)
	assert.Equal(t, "Close to work", goal.Description)
	assert.Equal(t, fixedNow, goal.CreatedAt)

	assert.Equal(t, StepHomeDetails, m.Step())
	assert.Equal(t, Fields{DownPaymentPercent: 20}, m.Fields())
}

func TestSubmit_OnlyFromReview(t *testing.T) {
	m := newTestMachine()
	fillHomeDetails(t, m)

	goal, err := m.Submit()

	assert.Nil(t, goal)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, StepHomeDetails, m.Step())
}

func TestCancel_DiscardsAndCloses(t *testing.T) {
	m := newTestMachine()
	fillHomeDetails(t, m)
	_, err := m.Next()
	require.NoError(t, err)

	assert.Equal(t, StepCancelled, m.Cancel())
	assert.Equal(t, Fields{DownPaymentPercent: 20}, m.Fields())

	_, err = m.Next()
	assert.ErrorIs(t, err, domain.ErrFormClosed)
	assert.ErrorIs(t, m.Update(func(f *Fields) { f.Title = "x" }), domain.ErrFormClosed)
	_, err = m.Submit()
	assert.ErrorIs(t, err, domain.ErrFormClosed)

	m.Reset()
	assert.Equal(t, StepHomeDetails, m.Step())
}

func TestPreview_RecomputesOnEveryEdit(t *testing.T) {
	m := newTestMachine()
	assert.Equal(t, Preview{}, m.Preview(), "nothing derivable yet")

	fillHomeDetails(t, m)
	assert.Equal(t, 80000.0, m.Preview().TargetAmount)
	assert.Equal(t, 0, m.Preview().MonthsToGoal)

	require.NoError(t, m.Update(func(f *Fields) { f.DownPaymentPercent = 25 }))
	assert.Equal(t, 100000.0, m.Preview().TargetAmount)

	require.NoError(t, m.Update(func(f *Fields) { f.DownPaymentPercent = 20 }))
	_, err := m.Next()
	require.NoError(t, err)
	fillSavingsPlan(t, m)

	p := m.Preview()
	assert.Equal(t, 32, p.MonthsToGoal)
	assert.Equal(t, 80000.0, p.TotalInvestment)
	assert.Equal(t, 1250.0, p.BiweeklyContribution)
	assert.Equal(t, time.Date(2027, time.September, 15, 10, 0, 0, 0, time.UTC), p.ProjectedDate)
	assert.NotEqual(t, m.Fields().TargetDate, p.ProjectedDate, "user date and projected date stay independent")
}
