package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/turi333-pixel/Gigstar/event"
)

func handleRecordSearchHistory(r HistoryRepo) func(ctx context.Context, e *event.SearchPerformed) error {
	return func(ctx context.Context, e *event.SearchPerformed) error {
		// Anonymous and empty searches are not recorded.
		if e.UserID == "" || strings.TrimSpace(e.Term) == "" {
			return nil
		}

		if err := r.Record(ctx, e.UserID, e.Term, e.Header.PublishedAt); err != nil {
			return fmt.Errorf("recording search history: %w", err)
		}

		return nil
	}
}

func handleBumpTrending(r TrendingRepo) func(ctx context.Context, e *event.EventFavourited) error {
	return func(ctx context.Context, e *event.EventFavourited) error {
		// Synthetic events never trend.
		if strings.HasPrefix(e.EventID, "mock-") {
			return nil
		}

		if err := r.Bump(ctx, e.EventID); err != nil {
			return fmt.Errorf("bumping trending score: %w", err)
		}

		return nil
	}
}

func handleDropTrending(r TrendingRepo) func(ctx context.Context, e *event.EventUnfavourited) error {
	return func(ctx context.Context, e *event.EventUnfavourited) error {
		if strings.HasPrefix(e.EventID, "mock-") {
			return nil
		}

		if err := r.Drop(ctx, e.EventID); err != nil {
			return fmt.Errorf("dropping trending score: %w", err)
		}

		return nil
	}
}
