package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LotKind distinguishes scheduled purchases from manual ones
type LotKind string

const (
	LotKindDCA     LotKind = "DCA"
	LotKindOneTime LotKind = "ONE_TIME"
)

// LotStatus is the settlement state of a purchase
type LotStatus string

const (
	LotStatusCompleted LotStatus = "completed"
	LotStatusPending   LotStatus = "pending"
	LotStatusScheduled LotStatus = "scheduled"
	LotStatusFailed    LotStatus = "failed"
)

// IsValid reports whether s is a known status
func (s LotStatus) IsValid() bool {
	switch s {
	case LotStatusCompleted, LotStatusPending, LotStatusScheduled, LotStatusFailed:
		return true
	}
	return false
}

// Lot is a single Bitcoin purchase
type Lot struct {
	ID       uuid.UUID
	Date     time.Time
	Kind     LotKind
	Amount   float64 // fiat spent, fees excluded
	Quantity float64 // BTC acquired
	Price    float64 // fiat per BTC at execution
	Fee      float64
	Status   LotStatus
}

// Validate ensures the lot adheres to domain rules.
// Scheduled and pending lots have no quantity or price yet.
func (l *Lot) Validate() error {
	if l.Amount <= 0 {
		return fmt.Errorf("%w: lot amount must be positive", ErrInvalidInput)
	}
	if l.Fee < 0 {
		return fmt.Errorf("%w: lot fee cannot be negative", ErrInvalidInput)
	}
	if l.Kind != LotKindDCA && l.Kind != LotKindOneTime {
		return fmt.Errorf("%w: unknown lot kind %q", ErrInvalidInput, l.Kind)
	}
	if !l.Status.IsValid() {
		return fmt.Errorf("%w: unknown lot status %q", ErrInvalidInput, l.Status)
	}
	if l.Status == LotStatusCompleted && (l.Quantity <= 0 || l.Price <= 0) {
		return fmt.Errorf("%w: completed lot needs quantity and price", ErrInvalidInput)
	}
	return nil
}
