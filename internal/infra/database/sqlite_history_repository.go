package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"contextclock/internal/domain/history"
)

// Custom errors
var ErrNoActivations = fmt.Errorf("no activations recorded")

type SQLiteHistoryRepository struct {
	db *sql.DB
}

func NewSQLiteHistoryRepository(db *sql.DB) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{db: db}
}

// Record inserts a new activation and fills in its ID.
func (r *SQLiteHistoryRepository) Record(ctx context.Context, a *history.Activation) error {
	query := `INSERT INTO activations (block_name, cause, activated_at) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, a.BlockName, string(a.Trigger), a.ActivatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("error recording activation: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading activation id: %w", err)
	}
	return nil
}

// ListRecent returns up to limit activations, most recent first.
func (r *SQLiteHistoryRepository) ListRecent(ctx context.Context, limit int) ([]*history.Activation, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, block_name, cause, activated_at
              FROM activations
              ORDER BY activated_at DESC, id DESC
              LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing activations: %w", err)
	}
	defer rows.Close()

	var out []*history.Activation
	for rows.Next() {
		a, err := scanActivation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activations: %w", err)
	}
	return out, nil
}

// Latest returns the most recent activation, or ErrNoActivations.
func (r *SQLiteHistoryRepository) Latest(ctx context.Context) (*history.Activation, error) {
	query := `SELECT id, block_name, cause, activated_at
              FROM activations
              ORDER BY activated_at DESC, id DESC
              LIMIT 1`

	row := r.db.QueryRowContext(ctx, query)
	a, err := scanActivation(row)
	if err == sql.ErrNoRows {
		return nil, ErrNoActivations
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivation(row rowScanner) (*history.Activation, error) {
	var (
		a     history.Activation
		cause string
		at    string
	)
	if err := row.Scan(&a.ID, &a.BlockName, &cause, &at); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning activation row: %w", err)
	}
	a.Trigger = history.Trigger(cause)
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("error parsing activation timestamp %q: %w", at, err)
	}
	a.ActivatedAt = ts
	return &a, nil
}
