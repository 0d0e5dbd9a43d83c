package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// goalRepository implements domain.GoalStore
type goalRepository struct {
	db *DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *DB) domain.GoalStore {
	return &goalRepository{db: db}
}

const goalColumns = `id, title, home_price, down_payment_percent, current_amount,
	monthly_contribution, target_date, status, location, description, created_at`

// Create inserts a new goal
func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var targetDate sql.NullTime
	if !goal.TargetDate.IsZero() {
		targetDate = sql.NullTime{Time: goal.TargetDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.Title,
		numeric(goal.HomePrice),
		goal.DownPaymentPercent,
		numeric(goal.CurrentAmount),
		numeric(goal.MonthlyContribution),
		targetDate,
		string(goal.Status),
		goal.Location,
		goal.Description,
		goal.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("goal %s: %w", goal.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	return nil
}

// GetByID retrieves a goal by its ID
func (r *goalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get goal by ID: %w", err)
	}
	return goal, nil
}

// List retrieves all goals, oldest first
func (r *goalRepository) List(ctx context.Context) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}

// UpdateStatus sets the status of a goal
func (r *goalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GoalStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE goals SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update goal status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddContribution increments current_amount atomically and returns the updated goal
func (r *goalRepository) AddContribution(ctx context.Context, id uuid.UUID, amount float64) (*domain.Goal, error) {
	query := `
		UPDATE goals SET current_amount = current_amount + $1
		WHERE id = $2
		RETURNING ` + goalColumns

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, numeric(amount), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}
	return goal, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var (
		goal                                 domain.Goal
		homePrice, currentAmount, monthlyStr string
		targetDate                           sql.NullTime
		status                               string
	)

	err := row.Scan(
		&goal.ID,
		&goal.Title,
		&homePrice,
		&goal.DownPaymentPercent,
		&currentAmount,
		&monthlyStr,
		&targetDate,
		&status,
		&goal.Location,
		&goal.Description,
		&goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if goal.HomePrice, err = parseNumeric("home_price", homePrice); err != nil {
		return nil, err
	}
	if goal.CurrentAmount, err = parseNumeric("current_amount", currentAmount); err != nil {
		return nil, err
	}
	if goal.MonthlyContribution, err = parseNumeric("monthly_contribution", monthlyStr); err != nil {
		return nil, err
	}
	if targetDate.Valid {
		goal.TargetDate = targetDate.Time
	}
	goal.Status = domain.GoalStatus(status)

	return &goal, nil
}
