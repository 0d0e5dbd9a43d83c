package nesteggv1

// Money values are decimal strings with two fraction digits ("45750.00").
// Dates are "2006-01-02", instants RFC 3339, months "2006-01".

type GetSessionRequest struct{}

type GetSessionResponse struct {
	UserID string `json:"user_id"`
	Active bool   `json:"active"`
}

type PreviewGoalRequest struct {
	HomePrice           string `json:"home_price"`
	DownPaymentPercent  int32  `json:"down_payment_percent"`
	CurrentAmount       string `json:"current_amount,omitempty"`
	MonthlyContribution string `json:"monthly_contribution"`
	ReferenceDate       string `json:"reference_date,omitempty"` // defaults to today
}

type PreviewGoalResponse struct {
	Projection *GoalProjection `json:"projection"`
}

type GoalProjection struct {
	TargetAmount         string  `json:"target_amount"`
	RemainingAmount      string  `json:"remaining_amount"`
	PercentComplete      float64 `json:"percent_complete"`
	MonthsToGoal         int32   `json:"months_to_goal"`
	ProjectedDate        string  `json:"projected_date"`
	TotalInvestment      string  `json:"total_investment"`
	BiweeklyContribution string  `json:"biweekly_contribution"`
}

// GoalFields mirrors the wizard inputs. Empty strings mean "not entered".
type GoalFields struct {
	Title               string `json:"title"`
	HomePrice           string `json:"home_price"`
	DownPaymentPercent  int32  `json:"down_payment_percent"`
	Location            string `json:"location"`
	TargetDate          string `json:"target_date"`
	MonthlyContribution string `json:"monthly_contribution"`
	Description         string `json:"description"`
}

type GoalDraftPreview struct {
	TargetAmount         string `json:"target_amount"`
	MonthsToGoal         int32  `json:"months_to_goal"`
	TotalInvestment      string `json:"total_investment"`
	BiweeklyContribution string `json:"biweekly_contribution"`
	ProjectedDate        string `json:"projected_date,omitempty"`
}

type GoalDraft struct {
	Step    string            `json:"step"`
	Fields  *GoalFields       `json:"fields"`
	Preview *GoalDraftPreview `json:"preview"`
}

type StartGoalDraftRequest struct{}

// UpdateGoalDraftRequest applies the fields named in UpdateMask, using the
// field names of GoalFields ("home_price", "target_date", ...)
type UpdateGoalDraftRequest struct {
	Fields     *GoalFields `json:"fields"`
	UpdateMask []string    `json:"update_mask"`
}

type NextGoalDraftStepRequest struct{}

type PreviousGoalDraftStepRequest struct{}

type CancelGoalDraftRequest struct{}

type SubmitGoalDraftRequest struct{}

type GoalDraftResponse struct {
	Draft *GoalDraft `json:"draft"`
}

type SubmitGoalDraftResponse struct {
	Goal  *Goal      `json:"goal"`
	Draft *GoalDraft `json:"draft"`
}

type Goal struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	HomePrice           string          `json:"home_price"`
	DownPaymentPercent  int32           `json:"down_payment_percent"`
	CurrentAmount       string          `json:"current_amount"`
	MonthlyContribution string          `json:"monthly_contribution"`
	TargetDate          string          `json:"target_date,omitempty"`
	Status              string          `json:"status"`
	Location            string          `json:"location"`
	Description         string          `json:"description"`
	CreatedAt           string          `json:"created_at"`
	Projection          *GoalProjection `json:"projection"`
}

type GoalsOverview struct {
	TotalGoals      int32   `json:"total_goals"`
	ActiveGoals     int32   `json:"active_goals"`
	TotalTarget     string  `json:"total_target"`
	TotalSaved      string  `json:"total_saved"`
	PercentComplete float64 `json:"percent_complete"`
}

type ListGoalsRequest struct{}

type ListGoalsResponse struct {
	Goals    []*Goal        `json:"goals"`
	Overview *GoalsOverview `json:"overview"`
}

type GetGoalRequest struct {
	GoalID string `json:"goal_id"`
}

type SetGoalStatusRequest struct {
	GoalID string `json:"goal_id"`
	Status string `json:"status"` // "active" or "paused"
}

type RecordContributionRequest struct {
	GoalID string `json:"goal_id"`
	Amount string `json:"amount"`
}

type GoalResponse struct {
	Goal *Goal `json:"goal"`
}

type GetPortfolioRequest struct {
	Window string `json:"window"` // 3M, 6M, 1Y or ALL
}

type PortfolioPoint struct {
	Period      string  `json:"period"`
	Label       string  `json:"label"`
	Invested    string  `json:"invested"`
	Value       string  `json:"value"`
	Gain        string  `json:"gain"`
	GainPercent float64 `json:"gain_percent"`
}

type PortfolioSummary struct {
	HasData        bool    `json:"has_data"`
	CurrentValue   string  `json:"current_value"`
	TotalInvested  string  `json:"total_invested"`
	TotalGain      string  `json:"total_gain"`
	GainPercentage float64 `json:"gain_percentage"`
}

type GetPortfolioResponse struct {
	Window  string            `json:"window"`
	Points  []*PortfolioPoint `json:"points"`
	Summary *PortfolioSummary `json:"summary"`
}

// GetHoldingsRequest values the lots at Price, or at the latest sample when empty
type GetHoldingsRequest struct {
	Price string `json:"price,omitempty"`
}

type GetHoldingsResponse struct {
	Quantity        string  `json:"quantity"`
	CostBasis       string  `json:"cost_basis"`
	Fees            string  `json:"fees"`
	AverageBuyPrice string  `json:"average_buy_price"`
	MarketPrice     string  `json:"market_price"`
	MarketValue     string  `json:"market_value"`
	UnrealizedGain  string  `json:"unrealized_gain"`
	GainPercentage  float64 `json:"gain_percentage"`
	CompletedLots   int32   `json:"completed_lots"`
	OpenLots        int32   `json:"open_lots"`
}

// ListTransactionsRequest filters by lot status ("completed", "pending",
// "scheduled", "failed"); empty lists every lot
type ListTransactionsRequest struct {
	Statuses []string `json:"statuses,omitempty"`
}

type Transaction struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
	Quantity string `json:"quantity,omitempty"`
	Price    string `json:"price,omitempty"`
	Fee      string `json:"fee"`
	Status   string `json:"status"`
}

// TransactionTotals covers the completed transactions of the listing
type TransactionTotals struct {
	Invested       string `json:"invested"`
	Fees           string `json:"fees"`
	AverageFee     string `json:"average_fee"`
	Quantity       string `json:"quantity"`
	QuantityLabel  string `json:"quantity_label"` // "0.2774 BTC"
	CompletedCount int32  `json:"completed_count"`
	OpenCount      int32  `json:"open_count"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction     `json:"transactions"`
	Totals       *TransactionTotals `json:"totals"`
}

type GetPriceRequest struct{}

type RefreshPriceRequest struct{}

type PriceResponse struct {
	HasSample     bool    `json:"has_sample"`
	Price         string  `json:"price,omitempty"`
	ChangePercent float64 `json:"change_percent"`
	ObservedAt    string  `json:"observed_at,omitempty"`
	Stale         bool    `json:"stale"`
	LastError     string  `json:"last_error,omitempty"`
	Display       string  `json:"display,omitempty"` // "$97,421.30 (+2.3%)"
}

type GetDashboardRequest struct{}

type NextPurchase struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type GetDashboardResponse struct {
	Portfolio           *PortfolioSummary  `json:"portfolio"`
	Price               *PriceResponse     `json:"price"`
	Goals               *GoalsOverview     `json:"goals"`
	MonthlyContribution string             `json:"monthly_contribution"`
	NextPurchase        *NextPurchase      `json:"next_purchase,omitempty"`
	Headline            *DashboardHeadline `json:"headline"`
}

// DashboardHeadline carries preformatted display strings
type DashboardHeadline struct {
	PortfolioValue string `json:"portfolio_value"`
	TotalGain      string `json:"total_gain"`
	GainPercent    string `json:"gain_percent"`
	GoalProgress   string `json:"goal_progress"`
}
