package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalmath"
)

// Progress is a goal together with its projection from today
type Progress struct {
	Goal       *domain.Goal
	Projection goalmath.Projection
}

// Overview summarises every goal
type Overview struct {
	ActiveGoals     int
	TotalGoals      int
	TotalTarget     float64
	TotalSaved      float64
	PercentComplete float64 // TotalSaved / TotalTarget, 0 without goals
}

// GoalService handles goal-related operations
type GoalService struct {
	Store domain.GoalStore
	now   func() time.Time
}

// NewGoalService creates a new GoalService instance
func NewGoalService(store domain.GoalStore) *GoalService {
	return &GoalService{Store: store, now: time.Now}
}

// WithClock replaces the clock used as the projection reference date
func (s *GoalService) WithClock(now func() time.Time) *GoalService {
	s.now = now
	return s
}

// CreateGoal stores a goal produced by the creation wizard
func (s *GoalService) CreateGoal(ctx context.Context, g *domain.Goal) (*Progress, error) {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = s.now()
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := s.Store.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return s.progress(g)
}

// GetGoal returns a goal with its progress
func (s *GoalService) GetGoal(ctx context.Context, id uuid.UUID) (*Progress, error) {
	g, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.progress(g)
}

// ListGoals returns every goal with its progress, plus the overview across them
func (s *GoalService) ListGoals(ctx context.Context) ([]*Progress, Overview, error) {
	goals, err := s.Store.List(ctx)
	if err != nil {
		return nil, Overview{}, fmt.Errorf("failed to list goals: %w", err)
	}

	out := make([]*Progress, 0, len(goals))
	for _, g := range goals {
		p, err := s.progress(g)
		if err != nil {
			return nil, Overview{}, err
		}
		out = append(out, p)
	}
	return out, ComputeOverview(goals), nil
}

// SetStatus pauses or resumes a goal
func (s *GoalService) SetStatus(ctx context.Context, id uuid.UUID, status domain.GoalStatus) (*Progress, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown goal status %q", domain.ErrInvalidInput, status)
	}
	if err := s.Store.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.GetGoal(ctx, id)
}

// RecordContribution adds amount to the saved total of a goal
func (s *GoalService) RecordContribution(ctx context.Context, id uuid.UUID, amount float64) (*Progress, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: contribution must be positive", domain.ErrInvalidInput)
	}
	g, err := s.Store.AddContribution(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	return s.progress(g)
}

// ComputeOverview totals goals. Paused goals count toward the totals but not
// toward ActiveGoals.
func ComputeOverview(goals []*domain.Goal) Overview {
	var o Overview
	for _, g := range goals {
		o.TotalGoals++
		if g.Status == domain.GoalStatusActive {
			o.ActiveGoals++
		}
		o.TotalTarget += g.TargetAmount()
		o.TotalSaved += g.CurrentAmount
	}
	if pct, err := goalmath.ComputeProgress(o.TotalSaved, o.TotalTarget); err == nil {
		o.PercentComplete = pct
	}
	return o
}

func (s *GoalService) progress(g *domain.Goal) (*Progress, error) {
	proj, err := goalmath.ProjectGoal(g, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to project goal %s: %w", g.ID, err)
	}
	return &Progress{Goal: g, Projection: proj}, nil
}
