package domain

import (
	"fmt"
	"time"
)

// PriceSample is one observation of the asset price
type PriceSample struct {
	Price         float64   // currency per unit of asset
	ChangePercent float64   // relative to the previous sample or the baseline
	ObservedAt    time.Time // when the source produced the quote
}

// Validate ensures the sample adheres to domain rules
func (p *PriceSample) Validate() error {
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if p.ObservedAt.IsZero() {
		return fmt.Errorf("%w: observation time is required", ErrInvalidInput)
	}
	return nil
}

// Quote is the raw result of a price feed request
type Quote struct {
	Price      float64
	ObservedAt time.Time
}
