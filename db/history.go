package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/turi333-pixel/Gigstar/entity"
)

// historyLimit caps how many search terms are kept per user.
const historyLimit = 20

func CreateSearchHistoryTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS search_history (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		term VARCHAR(255) NOT NULL,
		searched_at TIMESTAMPTZ NOT NULL
		);`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS search_history_user_idx
		ON search_history (user_id, searched_at DESC);`)
	return err
}

type HistoryRepo struct {
	db *sqlx.DB
}

func NewHistoryRepo(db *sqlx.DB) HistoryRepo {
	return HistoryRepo{
		db: db,
	}
}

// Record moves a repeated term to the top instead of duplicating it, and
// trims anything beyond the per-user cap.
func (r HistoryRepo) Record(ctx context.Context, userID, term string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM search_history
		WHERE user_id = $1 AND term = $2`, userID, term); err != nil {
		return fmt.Errorf("removing previous entry: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO search_history
		(user_id, term, searched_at) VALUES ($1, $2, $3)`, userID, term, at); err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM search_history
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM search_history
			WHERE user_id = $1
			ORDER BY searched_at DESC, id DESC
			LIMIT $2
		)`, userID, historyLimit); err != nil {
		return fmt.Errorf("trimming history: %w", err)
	}

	return nil
}

func (r HistoryRepo) List(ctx context.Context, userID string) ([]entity.SearchEntry, error) {
	rows, err := r.db.QueryxContext(ctx, `SELECT term, searched_at FROM search_history
		WHERE user_id = $1 ORDER BY searched_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying db: %w", err)
	}
	defer rows.Close()

	entries := []entity.SearchEntry{}
	for rows.Next() {
		var e entity.SearchEntry
		if err := rows.Scan(&e.Term, &e.SearchedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
