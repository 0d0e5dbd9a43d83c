package goalmath

import (
	"math"
	"testing"
	"time"

	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTargetAmount(t *testing.T) {
	tests := []struct {
		name      string
		homePrice float64
		percent   int
		want      float64
		wantErr   bool
	}{
		{name: "20% of 400k", homePrice: 400000, percent: 20, want: 80000},
		{name: "10% of 250k", homePrice: 250000, percent: 10, want: 25000},
		{name: "30% of 500k", homePrice: 500000, percent: 30, want: 150000},
		{name: "zero home price", homePrice: 0, percent: 20, wantErr: true},
		{name: "negative home price", homePrice: -1, percent: 20, wantErr: true},
		{name: "percent outside the set", homePrice: 400000, percent: 22, wantErr: true},
		{name: "NaN home price", homePrice: math.NaN(), percent: 20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTargetAmount(tt.homePrice, tt.percent)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeProgress_LinearAndUnclamped(t *testing.T) {
	target := 80000.0

	got, err := ComputeProgress(target, target)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = ComputeProgress(2*target, target)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got, "overshoot must not be clipped")

	got, err = ComputeProgress(0, target)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = ComputeProgress(45750, target)
	require.NoError(t, err)
	assert.InDelta(t, 57.1875, got, 1e-9)
}

func TestComputeProgress_InvalidTarget(t *testing.T) {
	for _, target := range []float64{0, -100, math.NaN()} {
		_, err := ComputeProgress(100, target)
		assert.ErrorIs(t, err, domain.ErrInvalidTarget, "target %v", target)
	}
}

func TestComputeMonthsToGoal(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		monthly float64
		want    int
	}{
		{name: "partial month rounds up", current: 45750, target: 80000, monthly: 2500, want: 14},
		{name: "new goal", current: 0, target: 80000, monthly: 2500, want: 32},
		{name: "one unit left is one month", current: 79999, target: 80000, monthly: 2500, want: 1},
		{name: "goal met", current: 80000, target: 80000, monthly: 2500, want: 0},
		{name: "goal exceeded is never negative", current: 90000, target: 80000, monthly: 2500, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeMonthsToGoal(tt.current, tt.target, tt.monthly)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeMonthsToGoal_GoalAlreadyMet(t *testing.T) {
	for _, x := range []float64{0.01, 1, 2500, 80000, 1e9} {
		for _, monthly := range []float64{0.5, 1, 2500, 1e7} {
			got, err := ComputeMonthsToGoal(x, x, monthly)
			require.NoError(t, err)
			assert.Equal(t, 0, got, "x=%v monthly=%v", x, monthly)
		}
	}
}

func TestComputeMonthsToGoal_InvalidContribution(t *testing.T) {
	for _, monthly := range []float64{0, -2500} {
		_, err := ComputeMonthsToGoal(0, 80000, monthly)
		assert.ErrorIs(t, err, domain.ErrInvalidContribution)
	}
}

func TestComputeMonthsToGoal_BeyondHorizon(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		monthly float64
	}{
		{name: "gap overflows an int", current: 0, target: 1e300, monthly: 0.01},
		{name: "two hundred billion months", current: 0, target: 2e11, monthly: 1},
		{name: "one month past the horizon", current: 0, target: 1201, monthly: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeMonthsToGoal(tt.current, tt.target, tt.monthly)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, got)
		})
	}

	got, err := ComputeMonthsToGoal(0, 1200, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxMonthsToGoal, got, "the horizon itself is allowed")
}

func TestProject_BeyondHorizon(t *testing.T) {
	_, err := Project(Inputs{
		HomePrice:           1e12,
		DownPaymentPercent:  20,
		MonthlyContribution: 1,
		ReferenceDate:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeProjectedDate(t *testing.T) {
	tests := []struct {
		name   string
		ref    time.Time
		months int
		want   time.Time
	}{
		{
			name:   "November plus three rolls into February",
			ref:    time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "end of month clamps to the shorter month",
			ref:    time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "leap year February",
			ref:    time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
			months: 2,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "zero months is the reference",
			ref:    time.Date(2025, time.January, 20, 9, 30, 0, 0, time.UTC),
			months: 0,
			want:   time.Date(2025, time.January, 20, 9, 30, 0, 0, time.UTC),
		},
		{
			name:   "several years",
			ref:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			months: 32,
			want:   time.Date(2027, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeProjectedDate(tt.ref, tt.months))
		})
	}
}

func TestComputeRemaining(t *testing.T) {
	assert.Equal(t, 34250.0, ComputeRemaining(45750, 80000))
	assert.Equal(t, 0.0, ComputeRemaining(90000, 80000))
}

func TestProject_NewGoal(t *testing.T) {
	ref := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	p, err := Project(Inputs{
		HomePrice:           400000,
		DownPaymentPercent:  20,
		MonthlyContribution: 2500,
		ReferenceDate:       ref,
	})

	require.NoError(t, err)
	assert.Equal(t, 80000.0, p.TargetAmount)
	assert.Equal(t, 80000.0, p.RemainingAmount)
	assert.Equal(t, 0.0, p.PercentComplete)
	assert.Equal(t, 32, p.MonthsToGoal)
	assert.Equal(t, time.Date(2027, time.September, 15, 0, 0, 0, 0, time.UTC), p.ProjectedDate)
	assert.Equal(t, 80000.0, p.TotalInvestment)
	assert.Equal(t, 1250.0, p.BiweeklyContribution)
}

func TestProject_PropagatesErrors(t *testing.T) {
	_, err := Project(Inputs{HomePrice: 0, DownPaymentPercent: 20, MonthlyContribution: 2500})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Project(Inputs{HomePrice: 400000, DownPaymentPercent: 20, MonthlyContribution: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidContribution)
}

func TestProjectGoal_IsDeterministic(t *testing.T) {
	g := &domain.Goal{HomePrice: 400000, DownPaymentPercent: 20, CurrentAmount: 45750, MonthlyContribution: 2500}
	ref := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	first, err := ProjectGoal(g, ref)
	require.NoError(t, err)
	second, err := ProjectGoal(g, ref)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 14, first.MonthsToGoal)
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), first.ProjectedDate)
}
