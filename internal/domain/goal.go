package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GoalStatus represents whether contributions toward a goal are running
type GoalStatus string

const (
	GoalStatusActive GoalStatus = "active"
	GoalStatusPaused GoalStatus = "paused"
)

// DefaultDownPaymentPercent is the down payment preselected for a new goal
const DefaultDownPaymentPercent = 20

// DownPaymentPercents lists the down payment percentages a goal may use
var DownPaymentPercents = []int{10, 15, 20, 25, 30}

// IsValidDownPaymentPercent reports whether pct is one of DownPaymentPercents
func IsValidDownPaymentPercent(pct int) bool {
	return slices.Contains(DownPaymentPercents, pct)
}

// IsValid reports whether s is a known goal status
func (s GoalStatus) IsValid() bool {
	return s == GoalStatusActive || s == GoalStatusPaused
}

// Goal is a down payment savings target.
// TargetAmount is derived from HomePrice and DownPaymentPercent and is never stored.
type Goal struct {
	ID                  uuid.UUID
	Title               string
	HomePrice           float64
	DownPaymentPercent  int
	CurrentAmount       float64
	MonthlyContribution float64
	TargetDate          time.Time // advisory, entered by the user
	Status              GoalStatus
	Location            string
	Description         string
	CreatedAt           time.Time
}

// TargetAmount returns the down payment needed for the goal
func (g *Goal) TargetAmount() float64 {
	return g.HomePrice * float64(g.DownPaymentPercent) / 100
}

// Validate ensures the goal adheres to domain rules
func (g *Goal) Validate() error {
	if g.ID == uuid.Nil {
		return fmt.Errorf("%w: goal id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("%w: goal title cannot be empty", ErrInvalidInput)
	}
	if g.HomePrice <= 0 {
		return fmt.Errorf("%w: home price must be positive", ErrInvalidInput)
	}
	if !IsValidDownPaymentPercent(g.DownPaymentPercent) {
		return fmt.Errorf("%w: down payment percent %d is not allowed", ErrInvalidInput, g.DownPaymentPercent)
	}
	if g.CurrentAmount < 0 {
		return fmt.Errorf("%w: current amount cannot be negative", ErrInvalidInput)
	}
	if g.MonthlyContribution <= 0 {
		return fmt.Errorf("%w: monthly contribution must be positive", ErrInvalidContribution)
	}
	if !g.Status.IsValid() {
		return fmt.Errorf("%w: unknown goal status %q", ErrInvalidInput, g.Status)
	}
	return nil
}
