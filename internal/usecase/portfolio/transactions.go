package portfolio

import (
	"context"
	"fmt"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Transactions is the purchase history with its totals
type Transactions struct {
	Lots   []domain.Lot // most recent first
	Totals TransactionTotals
}

// TransactionTotals sums the completed lots of a listing. Open lots are only counted.
type TransactionTotals struct {
	Invested   float64 // fees excluded
	Fees       float64
	AverageFee float64
	Quantity   float64
	Completed  int
	Open       int // pending or scheduled
}

// ComputeTransactionTotals totals lots the way the history header shows them
func ComputeTransactionTotals(lots []domain.Lot) TransactionTotals {
	var t TransactionTotals
	for _, lot := range lots {
		switch lot.Status {
		case domain.LotStatusCompleted:
			t.Invested += lot.Amount
			t.Fees += lot.Fee
			t.Quantity += lot.Quantity
			t.Completed++
		case domain.LotStatusPending, domain.LotStatusScheduled:
			t.Open++
		}
	}
	if t.Completed > 0 {
		t.AverageFee = t.Fees / float64(t.Completed)
	}
	return t
}

// Transactions lists the lots whose status is in statuses, all of them when
// statuses is empty
func (s *PortfolioService) Transactions(ctx context.Context, statuses ...domain.LotStatus) (*Transactions, error) {
	want := make(map[domain.LotStatus]bool, len(statuses))
	for _, st := range statuses {
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown lot status %q", domain.ErrInvalidInput, st)
		}
		want[st] = true
	}

	lots, err := s.Store.Lots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lots: %w", err)
	}

	selected := make([]domain.Lot, 0, len(lots))
	for _, lot := range lots {
		if len(want) == 0 || want[lot.Status] {
			selected = append(selected, lot)
		}
	}

	return &Transactions{
		Lots:   selected,
		Totals: ComputeTransactionTotals(selected),
	}, nil
}
