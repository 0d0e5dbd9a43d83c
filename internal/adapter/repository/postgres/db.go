package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const uniqueViolation = pq.ErrorCode("23505")

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=nestegg sslmode=disable"
func NewDB(ctx context.Context, connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS goals (
	id                   UUID PRIMARY KEY,
	title                TEXT NOT NULL,
	home_price           NUMERIC(14, 2) NOT NULL CHECK (home_price > 0),
	down_payment_percent INTEGER NOT NULL CHECK (down_payment_percent IN (10, 15, 20, 25, 30)),
	current_amount       NUMERIC(14, 2) NOT NULL DEFAULT 0,
	monthly_contribution NUMERIC(14, 2) NOT NULL CHECK (monthly_contribution > 0),
	target_date          DATE,
	status               TEXT NOT NULL,
	location             TEXT NOT NULL DEFAULT '',
	description          TEXT NOT NULL DEFAULT '',
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS portfolio_points (
	period   DATE PRIMARY KEY,
	invested NUMERIC(14, 2) NOT NULL,
	value    NUMERIC(14, 2) NOT NULL
);

CREATE TABLE IF NOT EXISTS lots (
	id       UUID PRIMARY KEY,
	date     TIMESTAMPTZ NOT NULL,
	kind     TEXT NOT NULL,
	amount   NUMERIC(14, 2) NOT NULL,
	quantity NUMERIC(18, 8) NOT NULL DEFAULT 0,
	price    NUMERIC(14, 2) NOT NULL DEFAULT 0,
	fee      NUMERIC(14, 2) NOT NULL DEFAULT 0,
	status   TEXT NOT NULL
);
`

// EnsureSchema creates the tables the repositories use when they are missing
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// NUMERIC columns travel as strings so no precision is lost on the way in
func numeric(f float64) string {
	return decimal.NewFromFloat(f).String()
}

func parseNumeric(column, s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	f, _ := d.Float64()
	return f, nil
}
