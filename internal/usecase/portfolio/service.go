// Package portfolio aggregates the performance series and purchase lots.
package portfolio

import (
	"context"
	"fmt"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Performance is a windowed series ready for charting
type Performance struct {
	Window  domain.Window
	Points  []ChartPoint
	Summary Summary
}

// ChartPoint is a series point with its gain
type ChartPoint struct {
	domain.PortfolioPoint
	PointGain
}

// PortfolioService handles portfolio read operations
type PortfolioService struct {
	Store domain.PortfolioStore
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(store domain.PortfolioStore) *PortfolioService {
	return &PortfolioService{Store: store}
}

// Performance returns the points of window with per-point gains and the summary of the window
func (s *PortfolioService) Performance(ctx context.Context, window domain.Window) (*Performance, error) {
	series, err := s.Store.Series(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio series: %w", err)
	}

	sub := FilterWindow(series, window)
	points := make([]ChartPoint, 0, len(sub))
	for _, p := range sub {
		points = append(points, ChartPoint{PortfolioPoint: p, PointGain: ComputePointGain(p)})
	}

	if window.Months() == 0 {
		window = domain.WindowAll
	}
	return &Performance{
		Window:  window,
		Points:  points,
		Summary: ComputeSummary(sub),
	}, nil
}

// Holdings values the recorded lots at price
func (s *PortfolioService) Holdings(ctx context.Context, price float64) (*Holdings, error) {
	lots, err := s.Store.Lots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lots: %w", err)
	}
	h := ComputeHoldings(lots, price)
	return &h, nil
}
