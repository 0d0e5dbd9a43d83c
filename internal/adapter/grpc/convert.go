package grpc

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/nestegg-backend/internal/adapter/grpc/nesteggv1"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/format"
	"github.com/simaogato/nestegg-backend/internal/usecase/goal"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalform"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalmath"
	"github.com/simaogato/nestegg-backend/internal/usecase/portfolio"
	"github.com/simaogato/nestegg-backend/internal/usecase/price"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// fieldError is a request field that could not be parsed
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.field, e.err)
}

// parseMoney parses a decimal string; empty means zero
func parseMoney(field, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &fieldError{field: field, err: err}
	}
	f, _ := d.Float64()
	return f, nil
}

// parseDate parses a calendar date; empty means the zero time
func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &fieldError{field: field, err: err}
	}
	return t, nil
}

func money(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}

// moneyOrEmpty leaves values the user has not entered blank
func moneyOrEmpty(f float64) string {
	if f == 0 {
		return ""
	}
	return money(f)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func projectionToProto(p goalmath.Projection) *nesteggv1.GoalProjection {
	return &nesteggv1.GoalProjection{
		TargetAmount:         money(p.TargetAmount),
		RemainingAmount:      money(p.RemainingAmount),
		PercentComplete:      p.PercentComplete,
		MonthsToGoal:         int32(p.MonthsToGoal),
		ProjectedDate:        date(p.ProjectedDate),
		TotalInvestment:      money(p.TotalInvestment),
		BiweeklyContribution: money(p.BiweeklyContribution),
	}
}

func goalToProto(p *goal.Progress) *nesteggv1.Goal {
	g := p.Goal
	return &nesteggv1.Goal{
		ID:                  g.ID.String(),
		Title:               g.Title,
		HomePrice:           money(g.HomePrice),
		DownPaymentPercent:  int32(g.DownPaymentPercent),
		CurrentAmount:       money(g.CurrentAmount),
		MonthlyContribution: money(g.MonthlyContribution),
		TargetDate:          date(g.TargetDate),
		Status:              string(g.Status),
		Location:            g.Location,
		Description:         g.Description,
		CreatedAt:           g.CreatedAt.UTC().Format(time.RFC3339),
		Projection:          projectionToProto(p.Projection),
	}
}

func overviewToProto(o goal.Overview) *nesteggv1.GoalsOverview {
	return &nesteggv1.GoalsOverview{
		TotalGoals:      int32(o.TotalGoals),
		ActiveGoals:     int32(o.ActiveGoals),
		TotalTarget:     money(o.TotalTarget),
		TotalSaved:      money(o.TotalSaved),
		PercentComplete: o.PercentComplete,
	}
}

func draftToProto(s goalform.Snapshot) *nesteggv1.GoalDraft {
	f := s.Fields
	return &nesteggv1.GoalDraft{
		Step: string(s.Step),
		Fields: &nesteggv1.GoalFields{
			Title:               f.Title,
			HomePrice:           moneyOrEmpty(f.HomePrice),
			DownPaymentPercent:  int32(f.DownPaymentPercent),
			Location:            f.Location,
			TargetDate:          date(f.TargetDate),
			MonthlyContribution: moneyOrEmpty(f.MonthlyContribution),
			Description:         f.Description,
		},
		Preview: &nesteggv1.GoalDraftPreview{
			TargetAmount:         money(s.Preview.TargetAmount),
			MonthsToGoal:         int32(s.Preview.MonthsToGoal),
			TotalInvestment:      money(s.Preview.TotalInvestment),
			BiweeklyContribution: money(s.Preview.BiweeklyContribution),
			ProjectedDate:        date(s.Preview.ProjectedDate),
		},
	}
}

// draftEdit turns a masked update into an edit of the wizard fields
func draftEdit(in *nesteggv1.GoalFields, mask []string) (func(f *goalform.Fields), error) {
	if in == nil {
		in = &nesteggv1.GoalFields{}
	}
	if len(mask) == 0 {
		return nil, &fieldError{field: "update_mask", err: fmt.Errorf("at least one field is required")}
	}

	var setters []func(f *goalform.Fields)
	for _, path := range mask {
		switch path {
		case "title":
			v := in.Title
			setters = append(setters, func(f *goalform.Fields) { f.Title = v })
		case "home_price":
			v, err := parseMoney(path, in.HomePrice)
			if err != nil {
				return nil, err
			}
			setters = append(setters, func(f *goalform.Fields) { f.HomePrice = v })
		case "down_payment_percent":
			v := int(in.DownPaymentPercent)
			setters = append(setters, func(f *goalform.Fields) { f.DownPaymentPercent = v })
		case "location":
			v := in.Location
			setters = append(setters, func(f *goalform.Fields) { f.Location = v })
		case "target_date":
			v, err := parseDate(path, in.TargetDate)
			if err != nil {
				return nil, err
			}
			setters = append(setters, func(f *goalform.Fields) { f.TargetDate = v })
		case "monthly_contribution":
			v, err := parseMoney(path, in.MonthlyContribution)
			if err != nil {
				return nil, err
			}
			setters = append(setters, func(f *goalform.Fields) { f.MonthlyContribution = v })
		case "description":
			v := in.Description
			setters = append(setters, func(f *goalform.Fields) { f.Description = v })
		default:
			return nil, &fieldError{field: "update_mask", err: fmt.Errorf("unknown field %q", path)}
		}
	}

	return func(f *goalform.Fields) {
		for _, set := range setters {
			set(f)
		}
	}, nil
}

func summaryToProto(s portfolio.Summary) *nesteggv1.PortfolioSummary {
	return &nesteggv1.PortfolioSummary{
		HasData:        s.HasData,
		CurrentValue:   money(s.CurrentValue),
		TotalInvested:  money(s.TotalInvested),
		TotalGain:      money(s.TotalGain),
		GainPercentage: s.GainPercentage,
	}
}

func performanceToProto(p *portfolio.Performance) *nesteggv1.GetPortfolioResponse {
	points := make([]*nesteggv1.PortfolioPoint, 0, len(p.Points))
	for _, pt := range p.Points {
		points = append(points, &nesteggv1.PortfolioPoint{
			Period:      pt.Period.Format(monthLayout),
			Label:       pt.Label(),
			Invested:    money(pt.Invested),
			Value:       money(pt.Value),
			Gain:        money(pt.Gain),
			GainPercent: pt.GainPercent,
		})
	}
	return &nesteggv1.GetPortfolioResponse{
		Window:  string(p.Window),
		Points:  points,
		Summary: summaryToProto(p.Summary),
	}
}

func holdingsToProto(h *portfolio.Holdings) *nesteggv1.GetHoldingsResponse {
	return &nesteggv1.GetHoldingsResponse{
		Quantity:        quantity(h.Quantity),
		CostBasis:       money(h.CostBasis),
		Fees:            money(h.Fees),
		AverageBuyPrice: money(h.AverageBuyPrice),
		MarketPrice:     money(h.MarketPrice),
		MarketValue:     money(h.MarketValue),
		UnrealizedGain:  money(h.UnrealizedGain),
		GainPercentage:  h.GainPercentage,
		CompletedLots:   int32(h.CompletedLots),
		OpenLots:        int32(h.OpenLots),
	}
}

func quantity(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(8)
}

func transactionsToProto(t *portfolio.Transactions) *nesteggv1.ListTransactionsResponse {
	out := make([]*nesteggv1.Transaction, 0, len(t.Lots))
	for _, lot := range t.Lots {
		tx := &nesteggv1.Transaction{
			ID:     lot.ID.String(),
			Date:   date(lot.Date),
			Kind:   string(lot.Kind),
			Amount: money(lot.Amount),
			Fee:    money(lot.Fee),
			Status: string(lot.Status),
		}
		if lot.Status == domain.LotStatusCompleted {
			tx.Quantity = quantity(lot.Quantity)
			tx.Price = money(lot.Price)
		}
		out = append(out, tx)
	}

	totals := t.Totals
	return &nesteggv1.ListTransactionsResponse{
		Transactions: out,
		Totals: &nesteggv1.TransactionTotals{
			Invested:       money(totals.Invested),
			Fees:           money(totals.Fees),
			AverageFee:     money(totals.AverageFee),
			Quantity:       quantity(totals.Quantity),
			QuantityLabel:  format.BTC(totals.Quantity),
			CompletedCount: int32(totals.Completed),
			OpenCount:      int32(totals.Open),
		},
	}
}

func priceToProto(s price.Status) *nesteggv1.PriceResponse {
	resp := &nesteggv1.PriceResponse{
		HasSample: s.HasSample,
		Stale:     s.Stale,
	}
	if s.LastError != nil {
		resp.LastError = s.LastError.Error()
	}
	if s.HasSample {
		resp.Price = money(s.Sample.Price)
		resp.ChangePercent = s.Sample.ChangePercent
		resp.ObservedAt = s.Sample.ObservedAt.UTC().Format(time.RFC3339)
		resp.Display = fmt.Sprintf("%s (%s)", format.Money(s.Sample.Price), format.SignedPercent(s.Sample.ChangePercent))
	}
	return resp
}

func windowFromProto(w string) domain.Window {
	if w == "" {
		return domain.WindowAll
	}
	return domain.Window(w)
}
