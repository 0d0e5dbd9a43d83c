package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Fixed UUIDs for the demo goals so reseeding is idempotent
var (
	DemoPrimaryHomeGoalID = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	DemoInvestmentGoalID  = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DemoGoals returns the goals shown on a fresh dashboard
func DemoGoals() []*domain.Goal {
	return []*domain.Goal{
		{
			ID:                  DemoPrimaryHomeGoalID,
			Title:               "Primary Home Down Payment",
			HomePrice:           400000,
			DownPaymentPercent:  20,
			CurrentAmount:       45750,
			MonthlyContribution: 2500,
			TargetDate:          date(2026, time.June, 1),
			Status:              domain.GoalStatusActive,
			Location:            "Austin, TX",
			CreatedAt:           date(2024, time.January, 1),
		},
		{
			ID:                  DemoInvestmentGoalID,
			Title:               "Investment Property",
			HomePrice:           250000,
			DownPaymentPercent:  20,
			CurrentAmount:       12500,
			MonthlyContribution: 1000,
			TargetDate:          date(2027, time.December, 1),
			Status:              domain.GoalStatusPaused,
			Location:            "Dallas, TX",
			CreatedAt:           date(2024, time.June, 1),
		},
	}
}

// DemoSeries returns twelve months of DCA performance ending at 42,000 invested
func DemoSeries() []domain.PortfolioPoint {
	points := []struct {
		month           time.Month
		invested, value float64
	}{
		{time.January, 5000, 6200},
		{time.February, 10000, 11800},
		{time.March, 17500, 19600},
		{time.April, 20000, 21200},
		{time.May, 22500, 24800},
		{time.June, 25000, 26500},
		{time.July, 27500, 28100},
		{time.August, 30000, 29400},
		{time.September, 32500, 33900},
		{time.October, 35000, 38200},
		{time.November, 38500, 40100},
		{time.December, 42000, 45750},
	}

	series := make([]domain.PortfolioPoint, 0, len(points))
	for _, p := range points {
		series = append(series, domain.PortfolioPoint{
			Period:   date(2024, p.month, 1),
			Invested: p.invested,
			Value:    p.value,
		})
	}
	return series
}

// DemoLots returns the recent purchases plus the next scheduled one
func DemoLots() []domain.Lot {
	completed := func(d time.Time, kind domain.LotKind, amount, qty, price, fee float64) domain.Lot {
		return domain.Lot{Date: d, Kind: kind, Amount: amount, Quantity: qty, Price: price, Fee: fee, Status: domain.LotStatusCompleted}
	}
	return []domain.Lot{
		{Date: date(2025, time.January, 20), Kind: domain.LotKindDCA, Amount: 2500, Status: domain.LotStatusScheduled},
		completed(date(2025, time.January, 15), domain.LotKindDCA, 2500, 0.0372, 67200, 12.50),
		completed(date(2025, time.January, 1), domain.LotKindDCA, 2500, 0.0381, 65600, 12.50),
		completed(date(2024, time.December, 15), domain.LotKindDCA, 2500, 0.0395, 63300, 12.50),
		completed(date(2024, time.December, 1), domain.LotKindOneTime, 5000, 0.0789, 63400, 25.00),
		completed(date(2024, time.November, 15), domain.LotKindDCA, 2500, 0.0412, 60700, 12.50),
		completed(date(2024, time.November, 1), domain.LotKindDCA, 2500, 0.0425, 58800, 12.50),
	}
}

// DemoSeeder fills empty stores with the demo fixtures
type DemoSeeder struct {
	goals     domain.GoalStore
	portfolio domain.PortfolioStore
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(goals domain.GoalStore, portfolio domain.PortfolioStore) *DemoSeeder {
	return &DemoSeeder{
		goals:     goals,
		portfolio: portfolio,
	}
}

// Seed creates each demo goal that does not exist yet, and writes the series
// and lots only when the portfolio is empty
func (s *DemoSeeder) Seed(ctx context.Context) error {
	for _, g := range DemoGoals() {
		_, err := s.goals.GetByID(ctx, g.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to look up demo goal: %w", err)
		}

		// Validate before creating
		if err := g.Validate(); err != nil {
			return err
		}
		if err := s.goals.Create(ctx, g); err != nil {
			return fmt.Errorf("failed to create demo goal: %w", err)
		}
	}

	series, err := s.portfolio.Series(ctx)
	if err != nil {
		return fmt.Errorf("failed to read portfolio series: %w", err)
	}
	if len(series) == 0 {
		if err := s.portfolio.ReplaceSeries(ctx, DemoSeries()); err != nil {
			return fmt.Errorf("failed to seed portfolio series: %w", err)
		}
	}

	lots, err := s.portfolio.Lots(ctx)
	if err != nil {
		return fmt.Errorf("failed to read lots: %w", err)
	}
	if len(lots) == 0 {
		for _, lot := range DemoLots() {
			if err := s.portfolio.AddLot(ctx, lot); err != nil {
				return fmt.Errorf("failed to seed lot: %w", err)
			}
		}
	}

	return nil
}
