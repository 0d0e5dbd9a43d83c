package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGoalStore is a mock implementation of GoalStore for testing
type MockGoalStore struct {
	mock.Mock
}

func (m *MockGoalStore) Create(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalStore) List(ctx context.Context) ([]*domain.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GoalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockGoalStore) AddContribution(ctx context.Context, id uuid.UUID, amount float64) (*domain.Goal, error) {
	args := m.Called(ctx, id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

var today = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func sampleGoal() *domain.Goal {
	return &domain.Goal{
		ID:                  uuid.New(),
		Title:               "First Home",
		HomePrice:           500000,
		DownPaymentPercent:  20,
		CurrentAmount:       45000,
		MonthlyContribution: 2000,
		Status:              domain.GoalStatusActive,
		CreatedAt:           today.AddDate(0, -6, 0),
	}
}

func TestCreateGoal_Success(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store).WithClock(fixedClock)

	g := sampleGoal()
	g.CurrentAmount = 0
	g.CreatedAt = time.Time{}
	store.On("Create", ctx, g).Return(nil)

	// Execute
	p, err := service.CreateGoal(ctx, g)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, today, g.CreatedAt, "missing creation time is stamped")
	assert.Equal(t, 100000.0, p.Projection.TargetAmount)
	assert.Equal(t, 50, p.Projection.MonthsToGoal)
	assert.Equal(t, time.Date(2029, time.May, 10, 0, 0, 0, 0, time.UTC), p.Projection.ProjectedDate)
	store.AssertExpectations(t)
}

func TestCreateGoal_InvalidGoalIsNotStored(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store).WithClock(fixedClock)

	g := sampleGoal()
	g.Title = "  "

	_, err := service.CreateGoal(ctx, g)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateGoal_StoreConflict(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store)

	g := sampleGoal()
	store.On("Create", ctx, g).Return(domain.ErrAlreadyExists)

	_, err := service.CreateGoal(ctx, g)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestGetGoal_Progress(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store).WithClock(fixedClock)

	g := sampleGoal()
	store.On("GetByID", ctx, g.ID).Return(g, nil)

	p, err := service.GetGoal(ctx, g.ID)

	require.NoError(t, err)
	assert.Same(t, g, p.Goal)
	assert.InDelta(t, 45.0, p.Projection.PercentComplete, 1e-9)
	assert.Equal(t, 55000.0, p.Projection.RemainingAmount)
	assert.Equal(t, 28, p.Projection.MonthsToGoal)
	assert.Equal(t, time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC), p.Projection.ProjectedDate)
}

func TestGetGoal_NotFound(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store)

	id := uuid.New()
	store.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)

	_, err := service.GetGoal(ctx, id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListGoals_Overview(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store).WithClock(fixedClock)

	home := sampleGoal()
	condo := sampleGoal()
	condo.Title = "Condo"
	condo.HomePrice = 300000
	condo.DownPaymentPercent = 10
	condo.CurrentAmount = 15000
	condo.Status = domain.GoalStatusPaused

	store.On("List", ctx).Return([]*domain.Goal{home, condo}, nil)

	goals, overview, err := service.ListGoals(ctx)

	require.NoError(t, err)
	assert.Len(t, goals, 2)
	assert.Equal(t, 1, overview.ActiveGoals)
	assert.Equal(t, 2, overview.TotalGoals)
	assert.Equal(t, 130000.0, overview.TotalTarget)
	assert.Equal(t, 60000.0, overview.TotalSaved)
	assert.InDelta(t, 46.1538, overview.PercentComplete, 1e-4)
}

func TestListGoals_Empty(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store)
	store.On("List", ctx).Return([]*domain.Goal{}, nil)

	goals, overview, err := service.ListGoals(ctx)

	require.NoError(t, err)
	assert.Empty(t, goals)
	assert.Equal(t, Overview{}, overview)
}

func TestListGoals_StoreError(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store)
	store.On("List", ctx).Return(nil, errors.New("connection refused"))

	_, _, err := service.ListGoals(ctx)

	assert.ErrorContains(t, err, "connection refused")
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store).WithClock(fixedClock)

	g := sampleGoal()
	paused := *g
	paused.Status = domain.GoalStatusPaused
	store.On("UpdateStatus", ctx, g.ID, domain.GoalStatusPaused).Return(nil)
	store.On("GetByID", ctx, g.ID).Return(&paused, nil)

	p, err := service.SetStatus(ctx, g.ID, domain.GoalStatusPaused)

	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusPaused, p.Goal.Status)
	store.AssertExpectations(t)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	store := new(MockGoalStore)
	service := NewGoalService(store)

	_, err := service.SetStatus(context.Background(), uuid.New(), domain.GoalStatus("archived"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordContribution(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store).WithClock(fixedClock)

	g := sampleGoal()
	updated := *g
	updated.CurrentAmount = 46000
	store.On("AddContribution", ctx, g.ID, 1000.0).Return(&updated, nil)

	p, err := service.RecordContribution(ctx, g.ID, 1000)

	require.NoError(t, err)
	assert.InDelta(t, 46.0, p.Projection.PercentComplete, 1e-9)
	assert.Equal(t, 27, p.Projection.MonthsToGoal)
}

func TestRecordContribution_NonPositiveAmount(t *testing.T) {
	tests := []float64{0, -50}
	for _, amount := range tests {
		store := new(MockGoalStore)
		service := NewGoalService(store)

		_, err := service.RecordContribution(context.Background(), uuid.New(), amount)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		store.AssertNotCalled(t, "AddContribution", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestRecordContribution_PastTarget(t *testing.T) {
	ctx := context.Background()
	store := new(MockGoalStore)
	service := NewGoalService(store).WithClock(fixedClock)

	g := sampleGoal()
	g.CurrentAmount = 120000
	store.On("AddContribution", ctx, g.ID, 75000.0).Return(g, nil)

	p, err := service.RecordContribution(ctx, g.ID, 75000)

	require.NoError(t, err)
	assert.InDelta(t, 120.0, p.Projection.PercentComplete, 1e-9, "progress is not clamped")
	assert.Equal(t, 0, p.Projection.MonthsToGoal)
	assert.Equal(t, 0.0, p.Projection.RemainingAmount)
	assert.Equal(t, today, p.Projection.ProjectedDate)
}
