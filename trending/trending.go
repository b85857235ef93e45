// Package trending keeps a favourite-count ranking of events in a Redis
// sorted set. It orders the "hot tonight" listing; losing it costs nothing
// but the ordering.
package trending

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const zsetKey = "trending:events"

type Repo struct {
	rdb *redis.Client
}

func NewRepo(rdb *redis.Client) Repo {
	return Repo{
		rdb: rdb,
	}
}

func (r Repo) Bump(ctx context.Context, eventID string) error {
	if err := r.rdb.ZIncrBy(ctx, zsetKey, 1, eventID).Err(); err != nil {
		return fmt.Errorf("incrementing trending score: %w", err)
	}

	return nil
}

func (r Repo) Drop(ctx context.Context, eventID string) error {
	if err := r.rdb.ZIncrBy(ctx, zsetKey, -1, eventID).Err(); err != nil {
		return fmt.Errorf("decrementing trending score: %w", err)
	}

	// Entries that fall to zero carry no signal.
	if err := r.rdb.ZRemRangeByScore(ctx, zsetKey, "-inf", "0").Err(); err != nil {
		return fmt.Errorf("pruning trending set: %w", err)
	}

	return nil
}

// Top returns up to n event ids, highest score first.
func (r Repo) Top(ctx context.Context, n int) ([]string, error) {
	ids, err := r.rdb.ZRevRange(ctx, zsetKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading trending set: %w", err)
	}

	return ids, nil
}
