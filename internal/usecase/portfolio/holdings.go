package portfolio

import "github.com/simaogato/nestegg-backend/internal/domain"

// Holdings summarizes the completed purchases valued at a given price
type Holdings struct {
	Quantity        float64
	CostBasis       float64 // fiat spent on completed lots, fees excluded
	Fees            float64
	AverageBuyPrice float64
	MarketPrice     float64
	MarketValue     float64
	UnrealizedGain  float64
	GainPercentage  float64
	CompletedLots   int
	OpenLots        int // pending or scheduled
}

// ComputeHoldings values the completed lots at price. Failed lots are ignored.
func ComputeHoldings(lots []domain.Lot, price float64) Holdings {
	h := Holdings{MarketPrice: price}
	for _, lot := range lots {
		switch lot.Status {
		case domain.LotStatusCompleted:
			h.Quantity += lot.Quantity
			h.CostBasis += lot.Amount
			h.Fees += lot.Fee
			h.CompletedLots++
		case domain.LotStatusPending, domain.LotStatusScheduled:
			h.OpenLots++
		}
	}

	if h.Quantity > 0 {
		h.AverageBuyPrice = h.CostBasis / h.Quantity
	}
	h.MarketValue = h.Quantity * price
	h.UnrealizedGain = h.MarketValue - h.CostBasis
	if h.CostBasis > 0 {
		h.GainPercentage = h.UnrealizedGain / h.CostBasis * 100
	}
	return h
}
