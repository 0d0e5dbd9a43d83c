package domain

import (
	"context"

	"github.com/google/uuid"
)

// GoalStore defines the interface for goal persistence operations
type GoalStore interface {
	// Create stores a new goal. Returns ErrAlreadyExists if the ID is taken.
	Create(ctx context.Context, goal *Goal) error

	// GetByID retrieves a goal by its ID. Returns ErrNotFound if missing.
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)

	// List retrieves all goals ordered by creation time
	List(ctx context.Context) ([]*Goal, error)

	// UpdateStatus sets the status of a goal
	UpdateStatus(ctx context.Context, id uuid.UUID, status GoalStatus) error

	// AddContribution increments the current amount of a goal and returns the updated goal
	AddContribution(ctx context.Context, id uuid.UUID, amount float64) (*Goal, error)
}

// PortfolioStore defines the interface for portfolio history reads and writes
type PortfolioStore interface {
	// Series returns the monthly performance series in chronological order
	Series(ctx context.Context) ([]PortfolioPoint, error)

	// ReplaceSeries swaps the whole series after validating it
	ReplaceSeries(ctx context.Context, series []PortfolioPoint) error

	// Lots returns every purchase, most recent first
	Lots(ctx context.Context) ([]Lot, error)

	// AddLot records a purchase
	AddLot(ctx context.Context, lot Lot) error
}

// PriceFeed is an external source of the current asset price
type PriceFeed interface {
	// Fetch performs exactly one request to the source
	Fetch(ctx context.Context) (Quote, error)
}
