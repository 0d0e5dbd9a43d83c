// Package goalmath computes down payment targets and savings projections.
// All functions are pure: identical input gives identical output.
package goalmath

import (
	"fmt"
	"math"
	"time"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

// ComputeTargetAmount returns the down payment for a home price and a percentage
// from domain.DownPaymentPercents.
func ComputeTargetAmount(homePrice float64, downPaymentPercent int) (float64, error) {
	if homePrice <= 0 || math.IsNaN(homePrice) || math.IsInf(homePrice, 0) {
		return 0, fmt.Errorf("%w: home price must be positive", domain.ErrInvalidInput)
	}
	if !domain.IsValidDownPaymentPercent(downPaymentPercent) {
		return 0, fmt.Errorf("%w: down payment percent %d is not allowed", domain.ErrInvalidInput, downPaymentPercent)
	}
	return homePrice * float64(downPaymentPercent) / 100, nil
}

// ComputeProgress returns currentAmount as a percentage of targetAmount.
// The result is not clamped: a goal that overshoots reports more than 100.
func ComputeProgress(currentAmount, targetAmount float64) (float64, error) {
	if targetAmount <= 0 || math.IsNaN(targetAmount) {
		return 0, fmt.Errorf("%w: target must be positive, got %v", domain.ErrInvalidTarget, targetAmount)
	}
	return currentAmount / targetAmount * 100, nil
}

// ComputeRemaining returns how much is left to save, never less than zero
func ComputeRemaining(currentAmount, targetAmount float64) float64 {
	return math.Max(0, targetAmount-currentAmount)
}

// MaxMonthsToGoal bounds projections to a century of contributions
const MaxMonthsToGoal = 1200

// ComputeMonthsToGoal returns the number of monthly contributions needed to
// close the gap. A partial month counts as a full one; a met goal needs 0.
func ComputeMonthsToGoal(currentAmount, targetAmount, monthlyContribution float64) (int, error) {
	if monthlyContribution <= 0 || math.IsNaN(monthlyContribution) {
		return 0, fmt.Errorf("%w: monthly contribution must be positive", domain.ErrInvalidContribution)
	}
	if currentAmount >= targetAmount {
		return 0, nil
	}
	months := math.Ceil((targetAmount - currentAmount) / monthlyContribution)
	if math.IsNaN(months) || months > MaxMonthsToGoal {
		return 0, fmt.Errorf("%w: goal needs more than %d months at this contribution", domain.ErrInvalidInput, MaxMonthsToGoal)
	}
	return int(months), nil
}

// ComputeProjectedDate adds monthsToGoal calendar months to referenceDate.
// When the reference day does not exist in the destination month the result
// lands on that month's last day (Jan 31 + 1 month is Feb 28 or 29).
func ComputeProjectedDate(referenceDate time.Time, monthsToGoal int) time.Time {
	y, m, d := referenceDate.Date()
	hh, mm, ss := referenceDate.Clock()
	loc := referenceDate.Location()

	first := time.Date(y, m+time.Month(monthsToGoal), 1, hh, mm, ss, referenceDate.Nanosecond(), loc)
	if last := daysIn(first.Year(), first.Month(), loc); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, referenceDate.Nanosecond(), loc)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Projection bundles every value derived from a goal's inputs
type Projection struct {
	TargetAmount         float64
	RemainingAmount      float64
	PercentComplete      float64
	MonthsToGoal         int
	ProjectedDate        time.Time
	TotalInvestment      float64 // MonthlyContribution * MonthsToGoal
	BiweeklyContribution float64
}

// Inputs are the values a projection is derived from
type Inputs struct {
	HomePrice           float64
	DownPaymentPercent  int
	CurrentAmount       float64
	MonthlyContribution float64
	ReferenceDate       time.Time
}

// Project derives target, progress and timeline from in. It fails with the
// first GoalMath error it meets.
func Project(in Inputs) (Projection, error) {
	target, err := ComputeTargetAmount(in.HomePrice, in.DownPaymentPercent)
	if err != nil {
		return Projection{}, err
	}
	percent, err := ComputeProgress(in.CurrentAmount, target)
	if err != nil {
		return Projection{}, err
	}
	months, err := ComputeMonthsToGoal(in.CurrentAmount, target, in.MonthlyContribution)
	if err != nil {
		return Projection{}, err
	}

	return Projection{
		TargetAmount:         target,
		RemainingAmount:      ComputeRemaining(in.CurrentAmount, target),
		PercentComplete:      percent,
		MonthsToGoal:         months,
		ProjectedDate:        ComputeProjectedDate(in.ReferenceDate, months),
		TotalInvestment:      in.MonthlyContribution * float64(months),
		BiweeklyContribution: in.MonthlyContribution / 2,
	}, nil
}

// ProjectGoal projects an existing goal from referenceDate
func ProjectGoal(g *domain.Goal, referenceDate time.Time) (Projection, error) {
	return Project(Inputs{
		HomePrice:           g.HomePrice,
		DownPaymentPercent:  g.DownPaymentPercent,
		CurrentAmount:       g.CurrentAmount,
		MonthlyContribution: g.MonthlyContribution,
		ReferenceDate:       referenceDate,
	})
}
