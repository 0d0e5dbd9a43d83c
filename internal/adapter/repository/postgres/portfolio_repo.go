package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// portfolioRepository implements domain.PortfolioStore
type portfolioRepository struct {
	db *DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *DB) domain.PortfolioStore {
	return &portfolioRepository{db: db}
}

// Series retrieves the monthly points in chronological order
func (r *portfolioRepository) Series(ctx context.Context) ([]domain.PortfolioPoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT period, invested, value FROM portfolio_points ORDER BY period`)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio points: %w", err)
	}
	defer rows.Close()

	var series []domain.PortfolioPoint
	for rows.Next() {
		var (
			p               domain.PortfolioPoint
			invested, value string
		)
		if err := rows.Scan(&p.Period, &invested, &value); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio point: %w", err)
		}
		if p.Invested, err = parseNumeric("invested", invested); err != nil {
			return nil, err
		}
		if p.Value, err = parseNumeric("value", value); err != nil {
			return nil, err
		}
		p.Period = domain.Month(p.Period)
		series = append(series, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio points: %w", err)
	}

	return series, nil
}

// ReplaceSeries swaps the whole series in one database transaction
func (r *portfolioRepository) ReplaceSeries(ctx context.Context, series []domain.PortfolioPoint) error {
	if err := domain.ValidateSeries(series); err != nil {
		return err
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM portfolio_points`); err != nil {
		return fmt.Errorf("failed to clear portfolio points: %w", err)
	}

	insertQuery := `INSERT INTO portfolio_points (period, invested, value) VALUES ($1, $2, $3)`
	for _, p := range series {
		_, err := dbTx.ExecContext(ctx, insertQuery, domain.Month(p.Period), numeric(p.Invested), numeric(p.Value))
		if err != nil {
			return fmt.Errorf("failed to insert portfolio point %s: %w", p.Label(), err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Lots retrieves every lot, most recent first
func (r *portfolioRepository) Lots(ctx context.Context) ([]domain.Lot, error) {
	query := `
		SELECT id, date, kind, amount, quantity, price, fee, status
		FROM lots
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lots: %w", err)
	}
	defer rows.Close()

	var lots []domain.Lot
	for rows.Next() {
		var (
			lot                               domain.Lot
			kind, status                      string
			amount, quantity, price, feeValue string
		)
		if err := rows.Scan(&lot.ID, &lot.Date, &kind, &amount, &quantity, &price, &feeValue, &status); err != nil {
			return nil, fmt.Errorf("failed to scan lot: %w", err)
		}
		if lot.Amount, err = parseNumeric("amount", amount); err != nil {
			return nil, err
		}
		if lot.Quantity, err = parseNumeric("quantity", quantity); err != nil {
			return nil, err
		}
		if lot.Price, err = parseNumeric("price", price); err != nil {
			return nil, err
		}
		if lot.Fee, err = parseNumeric("fee", feeValue); err != nil {
			return nil, err
		}
		lot.Kind = domain.LotKind(kind)
		lot.Status = domain.LotStatus(status)
		lots = append(lots, lot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lots: %w", err)
	}

	return lots, nil
}

// AddLot inserts a lot, assigning an ID when it has none
func (r *portfolioRepository) AddLot(ctx context.Context, lot domain.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}
	if lot.ID == uuid.Nil {
		lot.ID = uuid.New()
	}

	query := `
		INSERT INTO lots (id, date, kind, amount, quantity, price, fee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		lot.ID,
		lot.Date,
		string(lot.Kind),
		numeric(lot.Amount),
		numeric(lot.Quantity),
		numeric(lot.Price),
		numeric(lot.Fee),
		string(lot.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("lot %s: %w", lot.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert lot: %w", err)
	}

	return nil
}
