package nesteggv1

import (
	"context"

	"google.golang.org/grpc"
)

// NestEggServiceClient is the client API for NestEggService
type NestEggServiceClient interface {
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	PreviewGoal(ctx context.Context, in *PreviewGoalRequest, opts ...grpc.CallOption) (*PreviewGoalResponse, error)
	StartGoalDraft(ctx context.Context, in *StartGoalDraftRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error)
	UpdateGoalDraft(ctx context.Context, in *UpdateGoalDraftRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error)
	NextGoalDraftStep(ctx context.Context, in *NextGoalDraftStepRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error)
	PreviousGoalDraftStep(ctx context.Context, in *PreviousGoalDraftStepRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error)
	CancelGoalDraft(ctx context.Context, in *CancelGoalDraftRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error)
	SubmitGoalDraft(ctx context.Context, in *SubmitGoalDraftRequest, opts ...grpc.CallOption) (*SubmitGoalDraftResponse, error)
	ListGoals(ctx context.Context, in *ListGoalsRequest, opts ...grpc.CallOption) (*ListGoalsResponse, error)
	GetGoal(ctx context.Context, in *GetGoalRequest, opts ...grpc.CallOption) (*GoalResponse, error)
	SetGoalStatus(ctx context.Context, in *SetGoalStatusRequest, opts ...grpc.CallOption) (*GoalResponse, error)
	RecordContribution(ctx context.Context, in *RecordContributionRequest, opts ...grpc.CallOption) (*GoalResponse, error)
	GetPortfolio(ctx context.Context, in *GetPortfolioRequest, opts ...grpc.CallOption) (*GetPortfolioResponse, error)
	GetHoldings(ctx context.Context, in *GetHoldingsRequest, opts ...grpc.CallOption) (*GetHoldingsResponse, error)
	ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error)
	GetPrice(ctx context.Context, in *GetPriceRequest, opts ...grpc.CallOption) (*PriceResponse, error)
	RefreshPrice(ctx context.Context, in *RefreshPriceRequest, opts ...grpc.CallOption) (*PriceResponse, error)
	GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*GetDashboardResponse, error)
}

type nestEggServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewNestEggServiceClient creates a client that sends every call with the JSON codec
func NewNestEggServiceClient(cc grpc.ClientConnInterface) NestEggServiceClient {
	return &nestEggServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nestEggServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	return invoke[GetSessionResponse](ctx, c.cc, "GetSession", in, opts)
}

func (c *nestEggServiceClient) PreviewGoal(ctx context.Context, in *PreviewGoalRequest, opts ...grpc.CallOption) (*PreviewGoalResponse, error) {
	return invoke[PreviewGoalResponse](ctx, c.cc, "PreviewGoal", in, opts)
}

func (c *nestEggServiceClient) StartGoalDraft(ctx context.Context, in *StartGoalDraftRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error) {
	return invoke[GoalDraftResponse](ctx, c.cc, "StartGoalDraft", in, opts)
}

func (c *nestEggServiceClient) UpdateGoalDraft(ctx context.Context, in *UpdateGoalDraftRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error) {
	return invoke[GoalDraftResponse](ctx, c.cc, "UpdateGoalDraft", in, opts)
}

func (c *nestEggServiceClient) NextGoalDraftStep(ctx context.Context, in *NextGoalDraftStepRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error) {
	return invoke[GoalDraftResponse](ctx, c.cc, "NextGoalDraftStep", in, opts)
}

func (c *nestEggServiceClient) PreviousGoalDraftStep(ctx context.Context, in *PreviousGoalDraftStepRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error) {
	return invoke[GoalDraftResponse](ctx, c.cc, "PreviousGoalDraftStep", in, opts)
}

func (c *nestEggServiceClient) CancelGoalDraft(ctx context.Context, in *CancelGoalDraftRequest, opts ...grpc.CallOption) (*GoalDraftResponse, error) {
	return invoke[GoalDraftResponse](ctx, c.cc, "CancelGoalDraft", in, opts)
}

func (c *nestEggServiceClient) SubmitGoalDraft(ctx context.Context, in *SubmitGoalDraftRequest, opts ...grpc.CallOption) (*SubmitGoalDraftResponse, error) {
	return invoke[SubmitGoalDraftResponse](ctx, c.cc, "SubmitGoalDraft", in, opts)
}

func (c *nestEggServiceClient) ListGoals(ctx context.Context, in *ListGoalsRequest, opts ...grpc.CallOption) (*ListGoalsResponse, error) {
	return invoke[ListGoalsResponse](ctx, c.cc, "ListGoals", in, opts)
}

func (c *nestEggServiceClient) GetGoal(ctx context.Context, in *GetGoalRequest, opts ...grpc.CallOption) (*GoalResponse, error) {
	return invoke[GoalResponse](ctx, c.cc, "GetGoal", in, opts)
}

func (c *nestEggServiceClient) SetGoalStatus(ctx context.Context, in *SetGoalStatusRequest, opts ...grpc.CallOption) (*GoalResponse, error) {
	return invoke[GoalResponse](ctx, c.cc, "SetGoalStatus", in, opts)
}

func (c *nestEggServiceClient) RecordContribution(ctx context.Context, in *RecordContributionRequest, opts ...grpc.CallOption) (*GoalResponse, error) {
	return invoke[GoalResponse](ctx, c.cc, "RecordContribution", in, opts)
}

func (c *nestEggServiceClient) GetPortfolio(ctx context.Context, in *GetPortfolioRequest, opts ...grpc.CallOption) (*GetPortfolioResponse, error) {
	return invoke[GetPortfolioResponse](ctx, c.cc, "GetPortfolio", in, opts)
}

func (c *nestEggServiceClient) GetHoldings(ctx context.Context, in *GetHoldingsRequest, opts ...grpc.CallOption) (*GetHoldingsResponse, error) {
	return invoke[GetHoldingsResponse](ctx, c.cc, "GetHoldings", in, opts)
}

func (c *nestEggServiceClient) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	return invoke[ListTransactionsResponse](ctx, c.cc, "ListTransactions", in, opts)
}

func (c *nestEggServiceClient) GetPrice(ctx context.Context, in *GetPriceRequest, opts ...grpc.CallOption) (*PriceResponse, error) {
	return invoke[PriceResponse](ctx, c.cc, "GetPrice", in, opts)
}

func (c *nestEggServiceClient) RefreshPrice(ctx context.Context, in *RefreshPriceRequest, opts ...grpc.CallOption) (*PriceResponse, error) {
	return invoke[PriceResponse](ctx, c.cc, "RefreshPrice", in, opts)
}

func (c *nestEggServiceClient) GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*GetDashboardResponse, error) {
	return invoke[GetDashboardResponse](ctx, c.cc, "GetDashboard", in, opts)
}
