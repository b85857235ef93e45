package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func InitialiseDB(ctx context.Context, db *sqlx.DB) error {
	if err := CreateUsersTable(ctx, db); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	if err := CreateFavouritesTable(ctx, db); err != nil {
		return fmt.Errorf("creating favourites table: %w", err)
	}

	if err := CreateSearchHistoryTable(ctx, db); err != nil {
		return fmt.Errorf("creating search history table: %w", err)
	}

	return nil
}
