package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/nestegg-backend/internal/adapter/grpc/nesteggv1"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/format"
	"github.com/simaogato/nestegg-backend/internal/usecase/dashboard"
	"github.com/simaogato/nestegg-backend/internal/usecase/goal"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalform"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalmath"
	"github.com/simaogato/nestegg-backend/internal/usecase/portfolio"
	"github.com/simaogato/nestegg-backend/internal/usecase/price"
)

// Server implements the NestEggService gRPC server
type Server struct {
	nesteggv1.UnimplementedNestEggServiceServer

	Drafts           *goalform.Drafts
	GoalService      *goal.GoalService
	PortfolioService *portfolio.PortfolioService
	Refresher        *price.Refresher
	DashboardService *dashboard.DashboardService

	now func() time.Time
}

// NewServer creates a new gRPC server instance
func NewServer(
	drafts *goalform.Drafts,
	goalService *goal.GoalService,
	portfolioService *portfolio.PortfolioService,
	refresher *price.Refresher,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		Drafts:           drafts,
		GoalService:      goalService,
		PortfolioService: portfolioService,
		Refresher:        refresher,
		DashboardService: dashboardService,
		now:              time.Now,
	}
}

// userID returns the session user set by AuthInterceptor
func userID(ctx context.Context) (string, error) {
	s, ok := domain.SessionFromContext(ctx)
	if !ok {
		return "", mapError(domain.ErrUnauthenticated)
	}
	return s.UserID, nil
}

func parseGoalID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, mapError(&fieldError{field: "goal_id", err: err})
	}
	return id, nil
}

// GetSession handles the GetSession RPC
func (s *Server) GetSession(ctx context.Context, req *nesteggv1.GetSessionRequest) (*nesteggv1.GetSessionResponse, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	return &nesteggv1.GetSessionResponse{UserID: user, Active: true}, nil
}

// PreviewGoal handles the PreviewGoal RPC. It is stateless and stores nothing.
func (s *Server) PreviewGoal(ctx context.Context, req *nesteggv1.PreviewGoalRequest) (*nesteggv1.PreviewGoalResponse, error) {
	homePrice, err := parseMoney("home_price", req.HomePrice)
	if err != nil {
		return nil, mapError(err)
	}
	current, err := parseMoney("current_amount", req.CurrentAmount)
	if err != nil {
		return nil, mapError(err)
	}
	monthly, err := parseMoney("monthly_contribution", req.MonthlyContribution)
	if err != nil {
		return nil, mapError(err)
	}
	ref, err := parseDate("reference_date", req.ReferenceDate)
	if err != nil {
		return nil, mapError(err)
	}
	if ref.IsZero() {
		ref = s.now()
	}

	proj, err := goalmath.Project(goalmath.Inputs{
		HomePrice:           homePrice,
		DownPaymentPercent:  int(req.DownPaymentPercent),
		CurrentAmount:       current,
		MonthlyContribution: monthly,
		ReferenceDate:       ref,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &nesteggv1.PreviewGoalResponse{Projection: projectionToProto(proj)}, nil
}

// StartGoalDraft handles the StartGoalDraft RPC
func (s *Server) StartGoalDraft(ctx context.Context, req *nesteggv1.StartGoalDraftRequest) (*nesteggv1.GoalDraftResponse, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	return &nesteggv1.GoalDraftResponse{Draft: draftToProto(s.Drafts.Start(user))}, nil
}

// UpdateGoalDraft handles the UpdateGoalDraft RPC
func (s *Server) UpdateGoalDraft(ctx context.Context, req *nesteggv1.UpdateGoalDraftRequest) (*nesteggv1.GoalDraftResponse, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	edit, err := draftEdit(req.Fields, req.UpdateMask)
	if err != nil {
		return nil, mapError(err)
	}

	snap, err := s.Drafts.Update(user, edit)
	if err != nil {
		return nil, mapError(err)
	}
	return &nesteggv1.GoalDraftResponse{Draft: draftToProto(snap)}, nil
}

// NextGoalDraftStep handles the NextGoalDraftStep RPC
func (s *Server) NextGoalDraftStep(ctx context.Context, req *nesteggv1.NextGoalDraftStepRequest) (*nesteggv1.GoalDraftResponse, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.Drafts.Next(user)
	if err != nil {
		return nil, mapError(err)
	}
	return &nesteggv1.GoalDraftResponse{Draft: draftToProto(snap)}, nil
}

// PreviousGoalDraftStep handles the PreviousGoalDraftStep RPC
func (s *Server) PreviousGoalDraftStep(ctx context.Context, req *nesteggv1.PreviousGoalDraftStepRequest) (*nesteggv1.GoalDraftResponse, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.Drafts.Back(user)
	if err != nil {
		return nil, mapError(err)
	}
	return &nesteggv1.GoalDraftResponse{Draft: draftToProto(snap)}, nil
}

// CancelGoalDraft handles the CancelGoalDraft RPC
func (s *Server) CancelGoalDraft(ctx context.Context, req *nesteggv1.CancelGoalDraftRequest) (*nesteggv1.GoalDraftResponse, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	return &nesteggv1.GoalDraftResponse{Draft: draftToProto(s.Drafts.Cancel(user))}, nil
}

// SubmitGoalDraft handles the SubmitGoalDraft RPC
// Logic:
//  1. Submit the reviewed draft, which resets it to an empty first step
//  2. Store the goal; if that fails the draft is restored at review so nothing is lost
func (s *Server) SubmitGoalDraft(ctx context.Context, req *nesteggv1.SubmitGoalDraftRequest) (*nesteggv1.SubmitGoalDraftResponse, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	g, snap, err := s.Drafts.Submit(user)
	if err != nil {
		return nil, mapError(err)
	}

	progress, err := s.GoalService.CreateGoal(ctx, g)
	if err != nil {
		s.Drafts.Restore(user, goalform.FieldsFromGoal(g))
		return nil, mapError(err)
	}

	return &nesteggv1.SubmitGoalDraftResponse{
		Goal:  goalToProto(progress),
		Draft: draftToProto(snap),
	}, nil
}

// ListGoals handles the ListGoals RPC
func (s *Server) ListGoals(ctx context.Context, req *nesteggv1.ListGoalsRequest) (*nesteggv1.ListGoalsResponse, error) {
	goals, overview, err := s.GoalService.ListGoals(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoGoals := make([]*nesteggv1.Goal, 0, len(goals))
	for _, g := range goals {
		protoGoals = append(protoGoals, goalToProto(g))
	}

	return &nesteggv1.ListGoalsResponse{
		Goals:    protoGoals,
		Overview: overviewToProto(overview),
	}, nil
}

// GetGoal handles the GetGoal RPC
func (s *Server) GetGoal(ctx context.Context, req *nesteggv1.GetGoalRequest) (*nesteggv1.GoalResponse, error) {
	id, err := parseGoalID(req.GoalID)
	if err != nil {
		return nil, err
	}
	progress, err := s.GoalService.GetGoal(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &nesteggv1.GoalResponse{Goal: goalToProto(progress)}, nil
}

// SetGoalStatus handles the SetGoalStatus RPC
func (s *Server) SetGoalStatus(ctx context.Context, req *nesteggv1.SetGoalStatusRequest) (*nesteggv1.GoalResponse, error) {
	id, err := parseGoalID(req.GoalID)
	if err != nil {
		return nil, err
	}
	progress, err := s.GoalService.SetStatus(ctx, id, domain.GoalStatus(req.Status))
	if err != nil {
		return nil, mapError(err)
	}
	return &nesteggv1.GoalResponse{Goal: goalToProto(progress)}, nil
}

// RecordContribution handles the RecordContribution RPC
func (s *Server) RecordContribution(ctx context.Context, req *nesteggv1.RecordContributionRequest) (*nesteggv1.GoalResponse, error) {
	id, err := parseGoalID(req.GoalID)
	if err != nil {
		return nil, err
	}
	if req.Amount == "" {
		return nil, status.Error(codes.InvalidArgument, "amount is required")
	}
	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		return nil, mapError(err)
	}

	progress, err := s.GoalService.RecordContribution(ctx, id, amount)
	if err != nil {
		return nil, mapError(err)
	}
	return &nesteggv1.GoalResponse{Goal: goalToProto(progress)}, nil
}

// GetPortfolio handles the GetPortfolio RPC
func (s *Server) GetPortfolio(ctx context.Context, req *nesteggv1.GetPortfolioRequest) (*nesteggv1.GetPortfolioResponse, error) {
	perf, err := s.PortfolioService.Performance(ctx, windowFromProto(req.Window))
	if err != nil {
		return nil, mapError(err)
	}
	return performanceToProto(perf), nil
}

// GetHoldings handles the GetHoldings RPC
func (s *Server) GetHoldings(ctx context.Context, req *nesteggv1.GetHoldingsRequest) (*nesteggv1.GetHoldingsResponse, error) {
	var marketPrice float64
	if req.Price != "" {
		p, err := parseMoney("price", req.Price)
		if err != nil {
			return nil, mapError(err)
		}
		if p <= 0 {
			return nil, status.Error(codes.InvalidArgument, "price must be positive")
		}
		marketPrice = p
	} else {
		latest := s.Refresher.Latest()
		if !latest.HasSample {
			return nil, status.Error(codes.FailedPrecondition, "no price sample yet, pass a price")
		}
		marketPrice = latest.Sample.Price
	}

	h, err := s.PortfolioService.Holdings(ctx, marketPrice)
	if err != nil {
		return nil, mapError(err)
	}
	return holdingsToProto(h), nil
}

// ListTransactions handles the ListTransactions RPC
func (s *Server) ListTransactions(ctx context.Context, req *nesteggv1.ListTransactionsRequest) (*nesteggv1.ListTransactionsResponse, error) {
	statuses := make([]domain.LotStatus, 0, len(req.Statuses))
	for _, st := range req.Statuses {
		statuses = append(statuses, domain.LotStatus(st))
	}

	txs, err := s.PortfolioService.Transactions(ctx, statuses...)
	if err != nil {
		return nil, mapError(err)
	}
	return transactionsToProto(txs), nil
}

// GetPrice handles the GetPrice RPC. It never contacts the price source.
func (s *Server) GetPrice(ctx context.Context, req *nesteggv1.GetPriceRequest) (*nesteggv1.PriceResponse, error) {
	return priceToProto(s.Refresher.Latest()), nil
}

// RefreshPrice handles the RefreshPrice RPC
// Logic: a failed fetch or a refresh already in flight is not an RPC error;
// the caller gets the held sample with its stale flag instead
func (s *Server) RefreshPrice(ctx context.Context, req *nesteggv1.RefreshPriceRequest) (*nesteggv1.PriceResponse, error) {
	_, err := s.Refresher.Refresh(ctx)
	if err != nil && !errors.Is(err, domain.ErrFetch) && !errors.Is(err, domain.ErrRefreshInFlight) {
		return nil, mapError(err)
	}
	return priceToProto(s.Refresher.Latest()), nil
}

// GetDashboard handles the GetDashboard RPC
func (s *Server) GetDashboard(ctx context.Context, req *nesteggv1.GetDashboardRequest) (*nesteggv1.GetDashboardResponse, error) {
	summary, err := s.DashboardService.GetSummary(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &nesteggv1.GetDashboardResponse{
		Portfolio:           summaryToProto(summary.Portfolio),
		Price:               priceToProto(summary.Price),
		Goals:               overviewToProto(summary.Goals),
		MonthlyContribution: summary.MonthlyContribution.StringFixed(2),
		Headline: &nesteggv1.DashboardHeadline{
			PortfolioValue: format.Money(summary.Portfolio.CurrentValue),
			TotalGain:      format.SignedMoney(summary.Portfolio.TotalGain),
			GainPercent:    format.SignedPercent(summary.Portfolio.GainPercentage),
			GoalProgress:   format.Percent(summary.Goals.PercentComplete),
		},
	}
	if summary.NextPurchase != nil {
		resp.NextPurchase = &nesteggv1.NextPurchase{
			Date:   date(summary.NextPurchase.Date),
			Amount: summary.NextPurchase.Amount.StringFixed(2),
		}
	}
	return resp, nil
}
