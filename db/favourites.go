package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/turi333-pixel/Gigstar/entity"
)

func CreateFavouritesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS favourites (
		user_id UUID NOT NULL,
		event_id VARCHAR(64) NOT NULL,
		event JSONB NOT NULL,
		saved_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, event_id)
		);`)
	return err
}

type FavouriteRepo struct {
	db *sqlx.DB
}

func NewFavouriteRepo(db *sqlx.DB) FavouriteRepo {
	return FavouriteRepo{
		db: db,
	}
}

// Add stores the full event snapshot; favouriting the same event twice is a
// no-op.
func (r FavouriteRepo) Add(ctx context.Context, userID string, ev entity.Event, savedAt time.Time) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO favourites
		(user_id, event_id, event, saved_at)
		VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING;`,
		userID, ev.ID, payload, savedAt)
	return err
}

func (r FavouriteRepo) Remove(ctx context.Context, userID, eventID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favourites
		WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		return fmt.Errorf("executing delete query: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func (r FavouriteRepo) List(ctx context.Context, userID string) ([]entity.Favourite, error) {
	rows, err := r.db.QueryxContext(ctx, `SELECT event, saved_at FROM favourites
		WHERE user_id = $1 ORDER BY saved_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying db: %w", err)
	}
	defer rows.Close()

	favourites := []entity.Favourite{}
	for rows.Next() {
		var payload []byte
		var f entity.Favourite
		if err := rows.Scan(&payload, &f.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if err := json.Unmarshal(payload, &f.Event); err != nil {
			return nil, fmt.Errorf("unmarshalling event: %w", err)
		}

		favourites = append(favourites, f)
	}

	return favourites, rows.Err()
}
