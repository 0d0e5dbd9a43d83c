package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/usecase/goal"
	"github.com/simaogato/nestegg-backend/internal/usecase/portfolio"
	"github.com/simaogato/nestegg-backend/internal/usecase/price"
	"github.com/simaogato/nestegg-backend/internal/usecase/schedule"
)

// PriceStatus exposes the most recent price sample
type PriceStatus interface {
	Latest() price.Status
}

// NextPurchase is the upcoming DCA buy
type NextPurchase struct {
	Date   time.Time
	Amount decimal.Decimal // one installment of the active monthly contributions
}

// Summary is everything the dashboard header shows
type Summary struct {
	Portfolio           portfolio.Summary
	Price               price.Status
	Goals               goal.Overview
	MonthlyContribution decimal.Decimal // sum over active goals
	NextPurchase        *NextPurchase   // nil when nothing is planned
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	PortfolioStore domain.PortfolioStore
	GoalStore      domain.GoalStore
	Prices         PriceStatus
	now            func() time.Time
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	portfolioStore domain.PortfolioStore,
	goalStore domain.GoalStore,
	prices PriceStatus,
) *DashboardService {
	return &DashboardService{
		PortfolioStore: portfolioStore,
		GoalStore:      goalStore,
		Prices:         prices,
		now:            time.Now,
	}
}

// WithClock replaces the clock used to find the next purchase
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// GetSummary assembles the dashboard
// Logic:
//   - Portfolio: summary of the whole series (the no-data sentinel when empty)
//   - Price: latest sample and its stale flag, never triggers a fetch
//   - Goals: overview across all goals; monthly contribution sums the active ones
//   - NextPurchase: the earliest scheduled lot from now on, otherwise the next
//     bi-weekly date after the latest DCA lot
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	// 1. Portfolio
	series, err := s.PortfolioStore.Series(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio series: %w", err)
	}

	// 2. Goals
	goals, err := s.GoalStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	monthly := decimal.Zero
	for _, g := range goals {
		if g.Status == domain.GoalStatusActive {
			monthly = monthly.Add(decimal.NewFromFloat(g.MonthlyContribution))
		}
	}

	// 3. Next purchase
	lots, err := s.PortfolioStore.Lots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lots: %w", err)
	}
	next, err := nextPurchase(lots, monthly, s.now())
	if err != nil {
		return nil, err
	}

	return &Summary{
		Portfolio:           portfolio.ComputeSummary(series),
		Price:               s.Prices.Latest(),
		Goals:               goal.ComputeOverview(goals),
		MonthlyContribution: monthly,
		NextPurchase:        next,
	}, nil
}

func nextPurchase(lots []domain.Lot, monthly decimal.Decimal, now time.Time) (*NextPurchase, error) {
	if !monthly.IsPositive() {
		return nil, nil
	}
	installments, err := schedule.SplitContribution(monthly, schedule.InstallmentsPerMonth)
	if err != nil {
		return nil, err
	}

	var (
		scheduled time.Time
		anchor    time.Time
	)
	for _, lot := range lots {
		if lot.Kind != domain.LotKindDCA {
			continue
		}
		switch lot.Status {
		case domain.LotStatusScheduled, domain.LotStatusPending:
			if !lot.Date.Before(now) && (scheduled.IsZero() || lot.Date.Before(scheduled)) {
				scheduled = lot.Date
			}
		case domain.LotStatusCompleted:
			if lot.Date.After(anchor) {
				anchor = lot.Date
			}
		}
	}

	date := scheduled
	if date.IsZero() {
		if anchor.IsZero() {
			return nil, nil
		}
		date = schedule.NextPurchases(now, anchor, 1)[0]
	}
	return &NextPurchase{Date: date, Amount: installments[0]}, nil
}
