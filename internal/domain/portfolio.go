package domain

import (
	"fmt"
	"time"
)

// PortfolioPoint is the state of the holdings at the end of a calendar month
type PortfolioPoint struct {
	Period   time.Time // first day of the month, UTC
	Invested float64   // cumulative contributions through Period
	Value    float64   // mark-to-market value at Period
}

// Label returns the display label of the point's month, e.g. "Jan 2024"
func (p PortfolioPoint) Label() string {
	return p.Period.Format("Jan 2006")
}

// Month truncates t to the first day of its month in UTC
func Month(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// ValidateSeries checks that a performance series is non-empty, strictly
// chronological with one point per month, and that invested never decreases.
func ValidateSeries(series []PortfolioPoint) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: series must have at least one point", ErrInvalidInput)
	}
	for i := 1; i < len(series); i++ {
		prev, cur := series[i-1], series[i]
		if !Month(cur.Period).After(Month(prev.Period)) {
			return fmt.Errorf("%w: period %s does not follow %s", ErrInvalidInput, cur.Label(), prev.Label())
		}
		if cur.Invested < prev.Invested {
			return fmt.Errorf("%w: invested decreases at %s", ErrInvalidInput, cur.Label())
		}
	}
	return nil
}

// Window is a trailing range of a performance series
type Window string

const (
	Window3M  Window = "3M"
	Window6M  Window = "6M"
	Window1Y  Window = "1Y"
	WindowAll Window = "ALL"
)

// Months returns how many trailing points the window selects.
// ALL and unknown windows return 0, meaning the whole series.
func (w Window) Months() int {
	switch w {
	case Window3M:
		return 3
	case Window6M:
		return 6
	case Window1Y:
		return 12
	default:
		return 0
	}
}
