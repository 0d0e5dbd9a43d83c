package portfolio

import (
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Summary is the performance of a series at its last point
type Summary struct {
	HasData        bool
	CurrentValue   float64
	TotalInvested  float64
	TotalGain      float64
	GainPercentage float64
}

// NoData is the summary of an empty series
var NoData = Summary{}

// PointGain is the gain of a single point over what was invested by then
type PointGain struct {
	Gain        float64
	GainPercent float64
}

// FilterWindow returns the trailing points selected by window. Unknown
// windows and windows longer than the series return the whole series.
// The result shares the backing array of series.
func FilterWindow(series []domain.PortfolioPoint, window domain.Window) []domain.PortfolioPoint {
	n := window.Months()
	if n <= 0 || n >= len(series) {
		return series
	}
	return series[len(series)-n:]
}

// ComputeSummary evaluates the last point of subSeries.
// GainPercentage is 0 when nothing was invested.
func ComputeSummary(subSeries []domain.PortfolioPoint) Summary {
	if len(subSeries) == 0 {
		return NoData
	}
	last := subSeries[len(subSeries)-1]
	g := ComputePointGain(last)
	return Summary{
		HasData:        true,
		CurrentValue:   last.Value,
		TotalInvested:  last.Invested,
		TotalGain:      g.Gain,
		GainPercentage: g.GainPercent,
	}
}

// ComputePointGain returns value minus invested for one point
func ComputePointGain(p domain.PortfolioPoint) PointGain {
	gain := p.Value - p.Invested
	if p.Invested == 0 {
		return PointGain{Gain: gain}
	}
	return PointGain{Gain: gain, GainPercent: gain / p.Invested * 100}
}
