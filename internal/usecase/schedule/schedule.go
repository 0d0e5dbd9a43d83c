package schedule

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInterval is the spacing between two DCA purchases.
const PurchaseInterval = 14 * 24 * time.Hour

// InstallmentsPerMonth is how many bi-weekly purchases a monthly contribution funds.
const InstallmentsPerMonth = 2

// SplitContribution splits a monthly contribution into cent-rounded installments.
// Logic:
//  1. Every installment but the last is monthly / installments, rounded down to the cent
//  2. The last installment takes whatever is left
//
// Safety: the installments always sum to monthly exactly (no cent lost)
func SplitContribution(monthly decimal.Decimal, installments int) ([]decimal.Decimal, error) {
	if monthly.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("monthly contribution must be positive")
	}
	if installments <= 0 {
		return nil, errors.New("installments must be positive")
	}

	share := monthly.Div(decimal.NewFromInt(int64(installments))).RoundDown(2)

	out := make([]decimal.Decimal, installments)
	allocated := decimal.Zero
	for i := 0; i < installments-1; i++ {
		out[i] = share
		allocated = allocated.Add(share)
	}
	out[installments-1] = monthly.Sub(allocated)

	total := decimal.Zero
	for _, amount := range out {
		total = total.Add(amount)
	}
	if !total.Equal(monthly) {
		return nil, errors.New("installments do not sum to the monthly contribution")
	}

	return out, nil
}

// NextPurchases returns the next count purchase dates on or after from, for a
// bi-weekly schedule that includes anchor. The anchor may lie before or after from.
func NextPurchases(from, anchor time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}

	next := anchor
	if next.Before(from) {
		steps := from.Sub(next) / PurchaseInterval
		next = next.Add(steps * PurchaseInterval)
		if next.Before(from) {
			next = next.Add(PurchaseInterval)
		}
	} else {
		for !next.Add(-PurchaseInterval).Before(from) {
			next = next.Add(-PurchaseInterval)
		}
	}

	out := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, next)
		next = next.Add(PurchaseInterval)
	}
	return out
}
