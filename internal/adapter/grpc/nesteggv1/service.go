package nesteggv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "nestegg.v1.NestEggService"

// NestEggServiceServer is the server API for NestEggService
type NestEggServiceServer interface {
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	PreviewGoal(context.Context, *PreviewGoalRequest) (*PreviewGoalResponse, error)
	StartGoalDraft(context.Context, *StartGoalDraftRequest) (*GoalDraftResponse, error)
	UpdateGoalDraft(context.Context, *UpdateGoalDraftRequest) (*GoalDraftResponse, error)
	NextGoalDraftStep(context.Context, *NextGoalDraftStepRequest) (*GoalDraftResponse, error)
	PreviousGoalDraftStep(context.Context, *PreviousGoalDraftStepRequest) (*GoalDraftResponse, error)
	CancelGoalDraft(context.Context, *CancelGoalDraftRequest) (*GoalDraftResponse, error)
	SubmitGoalDraft(context.Context, *SubmitGoalDraftRequest) (*SubmitGoalDraftResponse, error)
	ListGoals(context.Context, *ListGoalsRequest) (*ListGoalsResponse, error)
	GetGoal(context.Context, *GetGoalRequest) (*GoalResponse, error)
	SetGoalStatus(context.Context, *SetGoalStatusRequest) (*GoalResponse, error)
	RecordContribution(context.Context, *RecordContributionRequest) (*GoalResponse, error)
	GetPortfolio(context.Context, *GetPortfolioRequest) (*GetPortfolioResponse, error)
	GetHoldings(context.Context, *GetHoldingsRequest) (*GetHoldingsResponse, error)
	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	GetPrice(context.Context, *GetPriceRequest) (*PriceResponse, error)
	RefreshPrice(context.Context, *RefreshPriceRequest) (*PriceResponse, error)
	GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error)
}

// UnimplementedNestEggServiceServer answers every RPC with codes.Unimplemented.
// Embed it to stay forward compatible when methods are added.
type UnimplementedNestEggServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedNestEggServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, unimplemented("GetSession")
}
func (UnimplementedNestEggServiceServer) PreviewGoal(context.Context, *PreviewGoalRequest) (*PreviewGoalResponse, error) {
	return nil, unimplemented("PreviewGoal")
}
func (UnimplementedNestEggServiceServer) StartGoalDraft(context.Context, *StartGoalDraftRequest) (*GoalDraftResponse, error) {
	return nil, unimplemented("StartGoalDraft")
}
func (UnimplementedNestEggServiceServer) UpdateGoalDraft(context.Context, *UpdateGoalDraftRequest) (*GoalDraftResponse, error) {
	return nil, unimplemented("UpdateGoalDraft")
}
func (UnimplementedNestEggServiceServer) NextGoalDraftStep(context.Context, *NextGoalDraftStepRequest) (*GoalDraftResponse, error) {
	return nil, unimplemented("NextGoalDraftStep")
}
func (UnimplementedNestEggServiceServer) PreviousGoalDraftStep(context.Context, *PreviousGoalDraftStepRequest) (*GoalDraftResponse, error) {
	return nil, unimplemented("PreviousGoalDraftStep")
}
func (UnimplementedNestEggServiceServer) CancelGoalDraft(context.Context, *CancelGoalDraftRequest) (*GoalDraftResponse, error) {
	return nil, unimplemented("CancelGoalDraft")
}
func (UnimplementedNestEggServiceServer) SubmitGoalDraft(context.Context, *SubmitGoalDraftRequest) (*SubmitGoalDraftResponse, error) {
	return nil, unimplemented("SubmitGoalDraft")
}
func (UnimplementedNestEggServiceServer) ListGoals(context.Context, *ListGoalsRequest) (*ListGoalsResponse, error) {
	return nil, unimplemented("ListGoals")
}
func (UnimplementedNestEggServiceServer) GetGoal(context.Context, *GetGoalRequest) (*GoalResponse, error) {
	return nil, unimplemented("GetGoal")
}
func (UnimplementedNestEggServiceServer) SetGoalStatus(context.Context, *SetGoalStatusRequest) (*GoalResponse, error) {
	return nil, unimplemented("SetGoalStatus")
}
func (UnimplementedNestEggServiceServer) RecordContribution(context.Context, *RecordContributionRequest) (*GoalResponse, error) {
	return nil, unimplemented("RecordContribution")
}
func (UnimplementedNestEggServiceServer) GetPortfolio(context.Context, *GetPortfolioRequest) (*GetPortfolioResponse, error) {
	return nil, unimplemented("GetPortfolio")
}
func (UnimplementedNestEggServiceServer) GetHoldings(context.Context, *GetHoldingsRequest) (*GetHoldingsResponse, error) {
	return nil, unimplemented("GetHoldings")
}
func (UnimplementedNestEggServiceServer) ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	return nil, unimplemented("ListTransactions")
}
func (UnimplementedNestEggServiceServer) GetPrice(context.Context, *GetPriceRequest) (*PriceResponse, error) {
	return nil, unimplemented("GetPrice")
}
func (UnimplementedNestEggServiceServer) RefreshPrice(context.Context, *RefreshPriceRequest) (*PriceResponse, error) {
	return nil, unimplemented("RefreshPrice")
}
func (UnimplementedNestEggServiceServer) GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error) {
	return nil, unimplemented("GetDashboard")
}

// FullMethod returns the gRPC path of method, e.g. "/nestegg.v1.NestEggService/GetGoal"
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary adapts a typed server method to a grpc.MethodHandler
func unary[Req any, Resp any](method string, call func(NestEggServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(NestEggServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(NestEggServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc is the grpc.ServiceDesc for NestEggService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NestEggServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetSession", NestEggServiceServer.GetSession),
		unary("PreviewGoal", NestEggServiceServer.PreviewGoal),
		unary("StartGoalDraft", NestEggServiceServer.StartGoalDraft),
		unary("UpdateGoalDraft", NestEggServiceServer.UpdateGoalDraft),
		unary("NextGoalDraftStep", NestEggServiceServer.NextGoalDraftStep),
		unary("PreviousGoalDraftStep", NestEggServiceServer.PreviousGoalDraftStep),
		unary("CancelGoalDraft", NestEggServiceServer.CancelGoalDraft),
		unary("SubmitGoalDraft", NestEggServiceServer.SubmitGoalDraft),
		unary("ListGoals", NestEggServiceServer.ListGoals),
		unary("GetGoal", NestEggServiceServer.GetGoal),
		unary("SetGoalStatus", NestEggServiceServer.SetGoalStatus),
		unary("RecordContribution", NestEggServiceServer.RecordContribution),
		unary("GetPortfolio", NestEggServiceServer.GetPortfolio),
		unary("GetHoldings", NestEggServiceServer.GetHoldings),
		unary("ListTransactions", NestEggServiceServer.ListTransactions),
		unary("GetPrice", NestEggServiceServer.GetPrice),
		unary("RefreshPrice", NestEggServiceServer.RefreshPrice),
		unary("GetDashboard", NestEggServiceServer.GetDashboard),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "nestegg/v1/nestegg.proto",
}

// RegisterNestEggServiceServer registers srv on s
func RegisterNestEggServiceServer(s grpc.ServiceRegistrar, srv NestEggServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
